package model

import "fmt"

// Device limits of the DM-32.
const (
	MaxContacts = 50000
	MaxChannels = 4000
	MaxZones    = 250
)

// CapacityWarning reports a table larger than the radio accepts. Nothing is
// truncated; the CPS import will refuse or cut the excess.
type CapacityWarning struct {
	Resource string `json:"resource"`
	Count    int    `json:"count"`
	Limit    int    `json:"limit"`
}

func (w CapacityWarning) String() string {
	return fmt.Sprintf("%d %s exceeds the device limit of %d", w.Count, w.Resource, w.Limit)
}

// CheckCapacity returns a warning when count exceeds a positive limit.
func CheckCapacity(resource string, count, limit int) (CapacityWarning, bool) {
	if limit <= 0 || count <= limit {
		return CapacityWarning{}, false
	}
	return CapacityWarning{Resource: resource, Count: count, Limit: limit}, true
}

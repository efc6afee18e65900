package talkgroup

import "github.com/lucasmellon-ops/Baofeng-DM-32/internal/model"

// IDRange is an inclusive talkgroup ID range.
type IDRange struct {
	From uint32 `yaml:"from" json:"from"`
	To   uint32 `yaml:"to" json:"to"`
}

// Contains reports whether id lies within the range.
func (r IDRange) Contains(id uint32) bool {
	return id >= r.From && id <= r.To
}

// CallTypePolicy decides which IDs are private-call destinations. Everything
// else is a group call.
type CallTypePolicy struct {
	PrivateIDs []uint32
	Ranges     []IDRange
}

// DefaultPrivateIDs are the BrandMeister parrot and echo services.
var DefaultPrivateIDs = []uint32{9990, 9998}

// DefaultPolicy returns the policy with the BrandMeister service IDs.
func DefaultPolicy() CallTypePolicy {
	ids := make([]uint32, len(DefaultPrivateIDs))
	copy(ids, DefaultPrivateIDs)
	return CallTypePolicy{PrivateIDs: ids}
}

// Classify returns the call type for id.
func (p CallTypePolicy) Classify(id uint32) model.CallType {
	for _, pid := range p.PrivateIDs {
		if pid == id {
			return model.PrivateCall
		}
	}
	for _, r := range p.Ranges {
		if r.Contains(id) {
			return model.PrivateCall
		}
	}
	return model.GroupCall
}

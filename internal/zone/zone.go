// Package zone merges builder output into one indexed channel table and the
// zones that reference it.
package zone

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/asciiname"
	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/model"
)

// Section is the output of one builder.
type Section struct {
	Category model.Category
	// Zone overrides the category's default zone name. Sections with equal zone
	// names share one zone.
	Zone     string
	Channels []model.Channel
}

// ZoneName returns the effective zone title.
func (s Section) ZoneName() string {
	if s.Zone != "" {
		return s.Zone
	}
	return s.Category.ZoneName()
}

// Options configures Assemble.
type Options struct {
	NameLength  int
	MaxChannels int
	MaxZones    int
}

// DefaultOptions returns the DM-32 limits.
func DefaultOptions() Options {
	return Options{
		NameLength:  asciiname.DefaultMaxLength,
		MaxChannels: model.MaxChannels,
		MaxZones:    model.MaxZones,
	}
}

// Rename records a channel that was suffixed to keep names unique.
type Rename struct {
	Category model.Category `json:"category"`
	From     string         `json:"from"`
	To       string         `json:"to"`
}

// ConstraintError records a channel or zone that could not be placed.
type ConstraintError struct {
	Kind   string `json:"kind"`
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%s %q: %s", e.Kind, e.Name, e.Reason)
}

// Plan is the assembled code-plug.
type Plan struct {
	Channels []model.Channel         `json:"channels"`
	Zones    []model.Zone            `json:"zones"`
	Renamed  []Rename                `json:"renamed,omitempty"`
	Dropped  []*ConstraintError      `json:"dropped,omitempty"`
	Warnings []model.CapacityWarning `json:"warnings,omitempty"`
}

// Assemble orders sections by category precedence, makes channel names unique,
// assigns indexes 1..n and builds one zone per non-empty zone name.
func Assemble(sections []Section, opts Options) (Plan, error) {
	if opts.NameLength <= 0 {
		opts.NameLength = asciiname.DefaultMaxLength
	}
	ordered := make([]Section, len(sections))
	copy(ordered, sections)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Category < ordered[j].Category
	})

	var plan Plan
	names := make(map[string]bool)
	zoneIndex := make(map[string]int)
	for _, sec := range ordered {
		if len(sec.Channels) == 0 {
			continue
		}
		var members []string
		for _, ch := range sec.Channels {
			base := ch.Name
			if !asciiname.Fits(base, opts.NameLength) {
				plan.Dropped = append(plan.Dropped, &ConstraintError{
					Kind: "channel", Name: base, Reason: "name is empty, too long or not ASCII",
				})
				continue
			}
			name, ok := uniqueName(base, names, opts.NameLength)
			if !ok {
				plan.Dropped = append(plan.Dropped, &ConstraintError{
					Kind: "channel", Name: base, Reason: "no unique name available",
				})
				continue
			}
			if name != base {
				plan.Renamed = append(plan.Renamed, Rename{Category: sec.Category, From: base, To: name})
			}
			names[name] = true
			ch.Name = name
			ch.Index = len(plan.Channels) + 1
			plan.Channels = append(plan.Channels, ch)
			members = append(members, name)
		}
		if len(members) == 0 {
			continue
		}

		zoneName := asciiname.Sanitize(sec.ZoneName(), asciiname.ChannelOptions(opts.NameLength))
		if zoneName == "" {
			plan.Dropped = append(plan.Dropped, &ConstraintError{
				Kind: "zone", Name: sec.ZoneName(), Reason: "zone name has no ASCII representation",
			})
			continue
		}
		if i, ok := zoneIndex[zoneName]; ok {
			plan.Zones[i].Members = append(plan.Zones[i].Members, members...)
			continue
		}
		zoneIndex[zoneName] = len(plan.Zones)
		plan.Zones = append(plan.Zones, model.Zone{Name: zoneName, Members: members})
	}

	if w, over := model.CheckCapacity("channels", len(plan.Channels), opts.MaxChannels); over {
		plan.Warnings = append(plan.Warnings, w)
	}
	if w, over := model.CheckCapacity("zones", len(plan.Zones), opts.MaxZones); over {
		plan.Warnings = append(plan.Warnings, w)
	}
	if err := plan.Verify(opts.NameLength); err != nil {
		return Plan{}, err
	}
	return plan, nil
}

// uniqueName appends "#2", "#3", ... to base until the name is unused,
// shortening base so the result fits.
func uniqueName(base string, taken map[string]bool, maxLen int) (string, bool) {
	if !taken[base] {
		return base, true
	}
	for n := 2; n < 10000; n++ {
		suffix := "#" + strconv.Itoa(n)
		room := maxLen - len(suffix)
		if room < 1 {
			return "", false
		}
		candidate := asciiname.Truncate(base, room) + suffix
		if !taken[candidate] {
			return candidate, true
		}
	}
	return "", false
}

// Verify checks the plan invariants: unique bounded channel names, indexes
// 1..n, unique non-empty zones whose members all exist.
func (p Plan) Verify(nameLength int) error {
	var errs []error
	channels := make(map[string]bool, len(p.Channels))
	for i, ch := range p.Channels {
		if ch.Index != i+1 {
			errs = append(errs, fmt.Errorf("channel %q has index %d, want %d", ch.Name, ch.Index, i+1))
		}
		if !asciiname.Fits(ch.Name, nameLength) {
			errs = append(errs, fmt.Errorf("channel name %q out of bounds", ch.Name))
		}
		if channels[ch.Name] {
			errs = append(errs, fmt.Errorf("duplicate channel name %q", ch.Name))
		}
		channels[ch.Name] = true
	}
	zones := make(map[string]bool, len(p.Zones))
	for _, z := range p.Zones {
		if zones[z.Name] {
			errs = append(errs, fmt.Errorf("duplicate zone %q", z.Name))
		}
		zones[z.Name] = true
		if len(z.Members) == 0 {
			errs = append(errs, fmt.Errorf("zone %q is empty", z.Name))
		}
		for _, m := range z.Members {
			if !channels[m] {
				errs = append(errs, fmt.Errorf("zone %q references unknown channel %q", z.Name, m))
			}
		}
	}
	return errors.Join(errs...)
}

package builder

import (
	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/asciiname"
	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/bandplan"
	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/model"
)

// PopularBuilder emits a channel for each well-known talkgroup on the
// talkgroup-zone frequency. Contact names come from the normalized table when
// it carries the ID.
type PopularBuilder struct {
	Enabled      bool
	Entries      []PopularTalkgroup
	Talkgroups   *model.TalkgroupTable
	Digital      Digital
	DefaultPower model.Power
	IncludeID    bool
	Plan         bandplan.Bandplan
}

func (b PopularBuilder) sealed() {}

// Category implements Builder.
func (b PopularBuilder) Category() model.Category { return model.CategoryPopular }

// Build implements Builder.
func (b PopularBuilder) Build() (Output, error) {
	if !b.Enabled {
		return Output{}, nil
	}
	entries := b.Entries
	if entries == nil {
		entries = PopularTalkgroups
	}
	if len(entries) == 0 {
		return Output{}, nil
	}
	d, rej := b.Digital.parse(model.CategoryPopular, "popular", defaultPower(b.DefaultPower), b.Plan)
	if rej != nil {
		return Output{Rejected: []*ConfigError{rej}}, nil
	}
	out := Output{Channels: make([]model.Channel, 0, len(entries))}
	for _, e := range entries {
		contact := asciiname.Sanitize(e.Name, asciiname.ContactOptions(MaxNameLength))
		if tg, ok := b.Talkgroups.Lookup(e.ID); ok {
			contact = tg.Name
		}
		out.Channels = append(out.Channels, digitalChannel(d, e.ID, contact,
			TalkgroupChannelName(e.Name, e.ID, b.IncludeID), model.CategoryPopular))
	}
	return out, nil
}

package builder

import (
	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/bandplan"
	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/model"
)

// DefaultTalkgroupCount is how many talkgroups get a channel when unset.
const DefaultTalkgroupCount = 50

// TalkgroupBuilder emits one digital channel per talkgroup at the front of the
// normalized table, all sharing one frequency plan.
type TalkgroupBuilder struct {
	Talkgroups   *model.TalkgroupTable
	Count        int
	Digital      Digital
	DefaultPower model.Power
	IncludeID    bool
	Plan         bandplan.Bandplan
}

func (b TalkgroupBuilder) sealed() {}

// Category implements Builder.
func (b TalkgroupBuilder) Category() model.Category { return model.CategoryTalkgroup }

// Build implements Builder.
func (b TalkgroupBuilder) Build() (Output, error) {
	n := b.Count
	if n <= 0 {
		n = DefaultTalkgroupCount
	}
	if b.Talkgroups.Len() == 0 {
		return Output{}, nil
	}
	tgs := b.Talkgroups.Head(n)
	d, rej := b.Digital.parse(model.CategoryTalkgroup, "talkgroup_zone", defaultPower(b.DefaultPower), b.Plan)
	if rej != nil {
		return Output{Rejected: []*ConfigError{rej}}, nil
	}
	out := Output{Channels: make([]model.Channel, 0, len(tgs))}
	for _, tg := range tgs {
		out.Channels = append(out.Channels, digitalChannel(d, tg.ID, tg.Name,
			TalkgroupChannelName(tg.Name, tg.ID, b.IncludeID), model.CategoryTalkgroup))
	}
	return out, nil
}

func defaultPower(p model.Power) model.Power {
	if p == "" {
		return model.PowerMiddle
	}
	return p
}

func digitalChannel(d digital, id uint32, contact, name string, c model.Category) model.Channel {
	ch := model.Channel{
		Name:      name,
		RX:        d.rx,
		TX:        d.tx,
		Type:      model.Digital,
		Power:     d.power,
		Bandwidth: model.Narrow,
		ColorCode: d.colorCode,
		TimeSlot:  d.timeSlot,
		Contact:   contact,
		Category:  c,
	}
	if d.timeSlot == 2 {
		ch.ContactTS2 = id
	} else {
		ch.ContactTS1 = id
	}
	return ch
}

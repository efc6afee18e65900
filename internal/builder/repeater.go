package builder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/bandplan"
	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/model"
)

// AnalogRepeater is one user-entered analog repeater, still unparsed.
type AnalogRepeater struct {
	Name  string
	RX    string
	TX    string
	CTCSS string
	Power string
}

// AnalogBuilder emits one FM channel per repeater.
type AnalogBuilder struct {
	Repeaters []AnalogRepeater
	Plan      bandplan.Bandplan
}

func (b AnalogBuilder) sealed() {}

// Category implements Builder.
func (b AnalogBuilder) Category() model.Category { return model.CategoryAnalogRepeater }

// Build implements Builder.
func (b AnalogBuilder) Build() (Output, error) {
	var out Output
	for i, r := range b.Repeaters {
		ch, rej := b.channel(i, r)
		if rej != nil {
			out.Rejected = append(out.Rejected, rej)
			continue
		}
		out.Channels = append(out.Channels, ch)
	}
	return out, nil
}

func (b AnalogBuilder) channel(i int, r AnalogRepeater) (model.Channel, *ConfigError) {
	c := model.CategoryAnalogRepeater
	item := itemLabel(r.Name, i)

	name := channelName(r.Name)
	if name == "" {
		return model.Channel{}, reject(c, item, "name", r.Name, fmt.Errorf("name is empty"))
	}
	rx, err := parseUserFrequency(r.RX, b.Plan)
	if err != nil {
		return model.Channel{}, reject(c, item, "rx", r.RX, err)
	}
	tx := rx
	if strings.TrimSpace(r.TX) != "" {
		if tx, err = parseUserFrequency(r.TX, b.Plan); err != nil {
			return model.Channel{}, reject(c, item, "tx", r.TX, err)
		}
	}
	tone, err := model.ParseTone(r.CTCSS)
	if err != nil {
		return model.Channel{}, reject(c, item, "ctcss", r.CTCSS, err)
	}
	if !bandplan.IsStandardTone(tone) {
		return model.Channel{}, reject(c, item, "ctcss", r.CTCSS, fmt.Errorf("not a standard CTCSS tone"))
	}
	power, err := parsePower(r.Power, model.PowerHigh)
	if err != nil {
		return model.Channel{}, reject(c, item, "power", r.Power, err)
	}
	return model.Channel{
		Name:      name,
		RX:        rx,
		TX:        tx,
		Type:      model.Analog,
		Power:     power,
		Bandwidth: model.Narrow,
		CTCSS:     tone,
		Contact:   NoContact,
		Category:  c,
	}, nil
}

// DMRRepeater is one user-entered DMR repeater or hotspot, still unparsed.
// Slot1 and Slot2 hold talkgroup IDs; empty or "0" leaves the slot unbound.
type DMRRepeater struct {
	Name      string
	RX        string
	TX        string
	ColorCode string
	TimeSlot  string
	Slot1     string
	Slot2     string
	Power     string
}

// DMRBuilder emits one digital channel per repeater, bound to talkgroups from
// the normalized table.
type DMRBuilder struct {
	Repeaters  []DMRRepeater
	Talkgroups *model.TalkgroupTable
	Plan       bandplan.Bandplan
}

func (b DMRBuilder) sealed() {}

// Category implements Builder.
func (b DMRBuilder) Category() model.Category { return model.CategoryDMRRepeater }

// Build implements Builder.
func (b DMRBuilder) Build() (Output, error) {
	var out Output
	for i, r := range b.Repeaters {
		ch, rej := b.channel(i, r)
		if rej != nil {
			out.Rejected = append(out.Rejected, rej)
			continue
		}
		out.Channels = append(out.Channels, ch)
	}
	return out, nil
}

func (b DMRBuilder) channel(i int, r DMRRepeater) (model.Channel, *ConfigError) {
	c := model.CategoryDMRRepeater
	item := itemLabel(r.Name, i)

	name := channelName(r.Name)
	if name == "" {
		return model.Channel{}, reject(c, item, "name", r.Name, fmt.Errorf("name is empty"))
	}

	var slots [2]model.Talkgroup
	for s, raw := range []string{r.Slot1, r.Slot2} {
		tg, err := b.resolve(raw)
		if err != nil {
			return model.Channel{}, reject(c, item, fmt.Sprintf("slot%d", s+1), raw, err)
		}
		slots[s] = tg
	}

	def := uint8(1)
	if slots[0].ID == 0 && slots[1].ID != 0 {
		def = 2
	}
	slot, err := parseTimeSlot(r.TimeSlot, def)
	if err != nil {
		return model.Channel{}, reject(c, item, "time_slot", r.TimeSlot, err)
	}
	d, rej := Digital{RX: r.RX, TX: r.TX, ColorCode: r.ColorCode, TimeSlot: strconv.Itoa(int(slot)), Power: r.Power}.
		parse(c, item, model.PowerHigh, b.Plan)
	if rej != nil {
		return model.Channel{}, rej
	}

	ch := model.Channel{
		Name:       name,
		RX:         d.rx,
		TX:         d.tx,
		Type:       model.Digital,
		Power:      d.power,
		Bandwidth:  model.Narrow,
		ColorCode:  d.colorCode,
		TimeSlot:   d.timeSlot,
		ContactTS1: slots[0].ID,
		ContactTS2: slots[1].ID,
		Contact:    NoContact,
		Category:   c,
	}
	if ch.ActiveContact() != 0 {
		ch.Contact = slots[d.timeSlot-1].Name
	}
	if slots[2-d.timeSlot].ID != 0 {
		for _, tg := range slots {
			if tg.ID != 0 {
				ch.RXContacts = append(ch.RXContacts, tg.Name)
			}
		}
	}
	return ch, nil
}

// resolve looks up a slot binding. Zero means unbound.
func (b DMRBuilder) resolve(raw string) (model.Talkgroup, error) {
	s := strings.TrimSpace(raw)
	if s == "" || s == "0" {
		return model.Talkgroup{}, nil
	}
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return model.Talkgroup{}, fmt.Errorf("talkgroup id is not numeric")
	}
	tg, ok := b.Talkgroups.Lookup(uint32(id))
	if !ok {
		return model.Talkgroup{}, fmt.Errorf("talkgroup %d is not in the talkgroup table", id)
	}
	return tg, nil
}

func itemLabel(name string, i int) string {
	if n := strings.TrimSpace(name); n != "" {
		return n
	}
	return "#" + strconv.Itoa(i+1)
}

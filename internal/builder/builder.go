// Package builder turns category toggles, repeater definitions and the
// normalized talkgroup table into channel records.
package builder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/asciiname"
	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/bandplan"
	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/model"
)

// MaxNameLength is the channel name field width.
const MaxNameLength = asciiname.DefaultMaxLength

// NoContact is the TX contact label for an unbound slot.
const NoContact = "None"

// Output is what one builder produced.
type Output struct {
	Channels []model.Channel
	Rejected []*ConfigError
}

// Builder produces the channels of one category. The set of implementations is
// closed: StaticBuilder, PopularBuilder, AnalogBuilder, DMRBuilder and
// TalkgroupBuilder.
type Builder interface {
	Category() model.Category
	Build() (Output, error)
	sealed()
}

func channelName(s string) string {
	return asciiname.Sanitize(s, asciiname.ChannelOptions(MaxNameLength))
}

// TalkgroupChannelName renders "<abbreviated name> <id>" within the channel
// name width, or only the abbreviated name when includeID is false.
func TalkgroupChannelName(name string, id uint32, includeID bool) string {
	abbr := asciiname.Sanitize(asciiname.Abbreviate(name), asciiname.ChannelOptions(4*MaxNameLength))
	if !includeID {
		return asciiname.Truncate(abbr, MaxNameLength)
	}
	idStr := strconv.FormatUint(uint64(id), 10)
	room := max(1, MaxNameLength-len(idStr)-1)
	base := asciiname.Truncate(abbr, room)
	if base == "" {
		return idStr
	}
	return base + " " + idStr
}

// digital holds the parsed shared settings of a digital channel group.
type digital struct {
	rx, tx    model.Frequency
	colorCode uint8
	timeSlot  uint8
	power     model.Power
}

// Digital is the unparsed frequency plan shared by talkgroup channels.
type Digital struct {
	RX        string
	TX        string
	ColorCode string
	TimeSlot  string
	Power     string
}

func (d Digital) parse(c model.Category, item string, defaultPower model.Power, plan bandplan.Bandplan) (digital, *ConfigError) {
	var out digital
	var err error
	if out.rx, err = parseUserFrequency(d.RX, plan); err != nil {
		return out, reject(c, item, "rx", d.RX, err)
	}
	out.tx = out.rx
	if strings.TrimSpace(d.TX) != "" {
		if out.tx, err = parseUserFrequency(d.TX, plan); err != nil {
			return out, reject(c, item, "tx", d.TX, err)
		}
	}
	if out.colorCode, err = parseColorCode(d.ColorCode); err != nil {
		return out, reject(c, item, "color_code", d.ColorCode, err)
	}
	if out.timeSlot, err = parseTimeSlot(d.TimeSlot, 2); err != nil {
		return out, reject(c, item, "time_slot", d.TimeSlot, err)
	}
	if out.power, err = parsePower(d.Power, defaultPower); err != nil {
		return out, reject(c, item, "power", d.Power, err)
	}
	return out, nil
}

func parseUserFrequency(s string, plan bandplan.Bandplan) (model.Frequency, error) {
	f, err := model.ParseFrequency(s)
	if err != nil {
		return 0, err
	}
	if plan == nil {
		plan = bandplan.DM32
	}
	if !plan.Contains(f) {
		return 0, fmt.Errorf("%s MHz is outside the radio's bands", f)
	}
	return f, nil
}

func parseColorCode(s string) (uint8, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 1, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 15 {
		return 0, fmt.Errorf("color code must be 0-15")
	}
	return uint8(n), nil
}

func parseTimeSlot(s string, def uint8) (uint8, error) {
	s = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "slot")
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}
	switch s {
	case "1":
		return 1, nil
	case "2":
		return 2, nil
	}
	return 0, fmt.Errorf("time slot must be 1 or 2")
}

func parsePower(s string, def model.Power) (model.Power, error) {
	if strings.TrimSpace(s) == "" {
		return def, nil
	}
	return model.ParsePower(s)
}

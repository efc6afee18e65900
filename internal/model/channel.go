package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ChannelType is the channel modulation family.
type ChannelType string

const (
	Analog  ChannelType = "Analog"
	Digital ChannelType = "Digital"
)

// Power is the transmit power level.
type Power string

const (
	PowerHigh   Power = "High"
	PowerMiddle Power = "Middle"
	PowerLow    Power = "Low"
)

// ValidPowers are the power levels the CPS accepts.
var ValidPowers = map[Power]bool{
	PowerHigh:   true,
	PowerMiddle: true,
	PowerLow:    true,
}

// ParsePower accepts the CPS labels case-insensitively plus a few common aliases.
func ParsePower(s string) (Power, error) {
	if p := Power(strings.TrimSpace(s)); ValidPowers[p] {
		return p, nil
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high", "h":
		return PowerHigh, nil
	case "middle", "mid", "medium", "m":
		return PowerMiddle, nil
	case "low", "l":
		return PowerLow, nil
	}
	return "", fmt.Errorf("unknown power level %q (use High, Middle or Low)", s)
}

// Bandwidth is the channel bandwidth label.
type Bandwidth string

const (
	Narrow Bandwidth = "12.5KHz"
	Wide   Bandwidth = "25KHz"
)

// Frequency is a carrier frequency in hertz.
type Frequency int64

// MHz builds a Frequency from a megahertz value, rounded to the nearest hertz.
func MHz(v float64) Frequency {
	return Frequency(math.Round(v * 1e6))
}

// ParseFrequency parses a megahertz string such as "146.520".
func ParseFrequency(s string) (Frequency, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("frequency is empty")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("frequency %q is not numeric", s)
	}
	if v <= 0 {
		return 0, fmt.Errorf("frequency %q must be positive", s)
	}
	return MHz(v), nil
}

// String formats the frequency in MHz with five decimals, e.g. "462.56250".
func (f Frequency) String() string {
	tens := (int64(f) + 5) / 10
	return fmt.Sprintf("%d.%05d", tens/100000, tens%100000)
}

// MarshalText implements encoding.TextMarshaler.
func (f Frequency) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// Tone is a CTCSS tone in tenths of a hertz. Zero means no tone.
type Tone uint16

// NoTone disables tone squelch.
const NoTone Tone = 0

// ParseTone parses "100.0", "None" or an empty string.
func ParseTone(s string) (Tone, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "none", "off":
		return NoTone, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(strings.ToLower(s), "hz"), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("ctcss tone %q is not numeric", s)
	}
	if v <= 0 || v >= 6553.5 {
		return 0, fmt.Errorf("ctcss tone %q out of range", s)
	}
	return Tone(math.Round(v * 10)), nil
}

func (t Tone) String() string {
	if t == NoTone {
		return "None"
	}
	return fmt.Sprintf("%d.%d", t/10, t%10)
}

// MarshalText implements encoding.TextMarshaler.
func (t Tone) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Category identifies the builder a channel came from. The declaration order is
// the assembly precedence.
type Category int

const (
	CategoryTalkgroup Category = iota
	CategoryAnalogRepeater
	CategoryDMRRepeater
	CategoryGMRS
	CategoryMURS
	CategoryAirband
	CategoryMarine
	CategoryHamCalling
	CategoryNOAA
	CategoryPopular
)

var categoryKeys = [...]string{
	CategoryTalkgroup:      "talkgroup",
	CategoryAnalogRepeater: "analog_repeater",
	CategoryDMRRepeater:    "dmr_repeater",
	CategoryGMRS:           "gmrs_frs",
	CategoryMURS:           "murs",
	CategoryAirband:        "airband",
	CategoryMarine:         "marine",
	CategoryHamCalling:     "ham_calling",
	CategoryNOAA:           "noaa",
	CategoryPopular:        "popular",
}

var categoryZones = [...]string{
	CategoryTalkgroup:      "Talkgroups",
	CategoryAnalogRepeater: "Analog Repeaters",
	CategoryDMRRepeater:    "DMR Repeater",
	CategoryGMRS:           "GMRS/FRS",
	CategoryMURS:           "MURS",
	CategoryAirband:        "Air Band",
	CategoryMarine:         "Marine",
	CategoryHamCalling:     "Ham Calls",
	CategoryNOAA:           "NOAA",
	CategoryPopular:        "Popular TGs",
}

// Categories lists every category in precedence order.
func Categories() []Category {
	out := make([]Category, 0, len(categoryKeys))
	for c := range categoryKeys {
		out = append(out, Category(c))
	}
	return out
}

// ParseCategory resolves a configuration key such as "murs".
func ParseCategory(key string) (Category, error) {
	k := strings.ToLower(strings.TrimSpace(key))
	for c, name := range categoryKeys {
		if name == k {
			return Category(c), nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", key)
}

// String returns the configuration key.
func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryKeys) {
		return fmt.Sprintf("category(%d)", int(c))
	}
	return categoryKeys[c]
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// ZoneName is the default zone title for the category.
func (c Category) ZoneName() string {
	if c < 0 || int(c) >= len(categoryZones) {
		return c.String()
	}
	return categoryZones[c]
}

// Channel is one row of the channel table.
type Channel struct {
	Index      int         `json:"index,omitempty"`
	Name       string      `json:"name"`
	RX         Frequency   `json:"rx"`
	TX         Frequency   `json:"tx"`
	Type       ChannelType `json:"type"`
	Power      Power       `json:"power"`
	Bandwidth  Bandwidth   `json:"bandwidth"`
	ColorCode  uint8       `json:"color_code,omitempty"`
	TimeSlot   uint8       `json:"time_slot,omitempty"`
	ContactTS1 uint32      `json:"contact_ts1,omitempty"`
	ContactTS2 uint32      `json:"contact_ts2,omitempty"`
	Contact    string      `json:"contact,omitempty"`
	// RXContacts lists the contacts bound to either slot when the inactive
	// slot carries a binding. It becomes the channel's receive group list.
	RXContacts []string    `json:"rx_contacts,omitempty"`
	CTCSS      Tone        `json:"ctcss,omitempty"`
	Category   Category    `json:"category"`
}

// ActiveContact returns the talkgroup bound to the channel's time slot.
func (c Channel) ActiveContact() uint32 {
	if c.TimeSlot == 2 {
		return c.ContactTS2
	}
	return c.ContactTS1
}

// Zone is a named, ordered group of channel names.
type Zone struct {
	Name    string   `json:"name"`
	Members []string `json:"members"`
}

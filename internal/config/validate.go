package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/asciiname"
	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/codeplug"
	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/model"
)

// Validate checks run-level settings. Per-item values (repeater frequencies,
// category toggles) are left to the stages that consume them.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	t := cfg.Talkgroups
	if t.MaxLength < 0 {
		add("talkgroups.max_length must not be negative")
	}
	if utf8.RuneCountInString(t.Delimiter) > 1 {
		add("talkgroups.delimiter must be a single character")
	}
	if t.Delimiter == "\"" || t.Delimiter == "\n" || t.Delimiter == "\r" {
		add("talkgroups.delimiter %q is not allowed", t.Delimiter)
	}
	for _, r := range t.PrivateRanges {
		if r.From == 0 || r.From > r.To {
			add("talkgroups.private_ranges: invalid range %d-%d", r.From, r.To)
		}
	}
	if t.ContactLimit < 0 {
		add("talkgroups.contact_limit must not be negative")
	}

	if err := codeplug.CheckOutputEncoding(cfg.Output.Encoding); err != nil {
		errs = append(errs, err)
	}
	if strings.ContainsAny(cfg.Output.Prefix, `/\`) {
		add("output.prefix must not contain path separators")
	}

	if !asciiname.IsPrintableASCII(cfg.Radio.DMRID) {
		add("radio.dmr_id must be printable ASCII")
	}
	if cfg.Radio.ChannelLimit < 0 || cfg.Radio.ZoneLimit < 0 {
		add("radio limits must not be negative")
	}

	z := cfg.TalkgroupZone
	if z.Count < 0 {
		add("talkgroup_zone.count must not be negative")
	}
	if _, err := ParseToggle(z.Hotspot, true); err != nil {
		add("talkgroup_zone.hotspot: %v", err)
	}
	if _, err := ParseToggle(z.IncludeIDInName, true); err != nil {
		add("talkgroup_zone.include_id_in_name: %v", err)
	}
	switch strings.ToLower(z.Popular) {
	case "", PopularInZone, PopularSeparate, PopularOff:
	default:
		add("talkgroup_zone.popular must be zone, separate or off")
	}
	if name := strings.TrimSpace(z.Name); name != "" {
		zone := asciiname.Sanitize(name, asciiname.ChannelOptions(asciiname.DefaultMaxLength))
		if zone == "" {
			add("talkgroup_zone.name %q has no ASCII representation", name)
		}
		for _, c := range model.Categories() {
			if c != model.CategoryTalkgroup && strings.EqualFold(zone, c.ZoneName()) {
				add("talkgroup_zone.name %q collides with the %s zone", name, c)
			}
		}
	}

	for key := range cfg.Categories {
		c, err := model.ParseCategory(key)
		if err != nil {
			add("categories: %v", err)
			continue
		}
		switch c {
		case model.CategoryTalkgroup, model.CategoryAnalogRepeater, model.CategoryDMRRepeater, model.CategoryPopular:
			add("categories: %q is not a built-in table", key)
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}

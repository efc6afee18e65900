package config

import (
	"sort"
	"strings"

	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/asciiname"
	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/codeplug"
)

// Normalize fills derived defaults.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}
	if cfg.Talkgroups.MaxLength == 0 {
		cfg.Talkgroups.MaxLength = asciiname.DefaultMaxLength
	}
	if cfg.Talkgroups.Delimiter == "" {
		cfg.Talkgroups.Delimiter = ","
	}
	if cfg.Output.Prefix == "" {
		cfg.Output.Prefix = codeplug.DefaultPrefix
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = "."
	}
	if cfg.Radio.DMRID == "" {
		cfg.Radio.DMRID = codeplug.DefaultDMRID
	}

	z := &cfg.TalkgroupZone
	z.Name = asciiname.Sanitize(z.Name, asciiname.ChannelOptions(asciiname.DefaultMaxLength))
	if z.Name == "" {
		z.Name = DefaultTalkgroupZoneName
	}
	z.Popular = z.PopularMode()

	if cfg.Categories != nil {
		// Keys spelled differently from their canonical form come from the
		// file and override the canonical defaults.
		keys := make([]string, 0, len(cfg.Categories))
		for k := range cfg.Categories {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool {
			ci, cj := canonical(keys[i]) == keys[i], canonical(keys[j]) == keys[j]
			if ci != cj {
				return ci
			}
			return keys[i] < keys[j]
		})
		cats := make(map[string]Scalar, len(keys))
		for _, k := range keys {
			cats[canonical(k)] = cfg.Categories[k]
		}
		cfg.Categories = cats
	}
}

func canonical(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

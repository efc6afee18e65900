package config

import (
	"fmt"
	"strings"
)

// ParseToggle reads a yes/no style value. An empty value yields def.
func ParseToggle(s Scalar, def bool) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(string(s))) {
	case "":
		return def, nil
	case "true", "yes", "y", "on", "1":
		return true, nil
	case "false", "no", "n", "off", "0":
		return false, nil
	}
	return false, fmt.Errorf("toggle %q is not one of yes/no/true/false/on/off/1/0", string(s))
}

// IsHotspot reports whether the talkgroup zone is a hotspot. Validate rejects
// unparseable values first.
func (z TalkgroupZoneConfig) IsHotspot() bool {
	v, _ := ParseToggle(z.Hotspot, true)
	return v
}

// PopularMode resolves the popular talkgroup placement.
func (z TalkgroupZoneConfig) PopularMode() string {
	if z.Popular != "" {
		return strings.ToLower(z.Popular)
	}
	if z.IsHotspot() {
		return PopularInZone
	}
	return PopularSeparate
}

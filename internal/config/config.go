// Package config loads the code-plug definition file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/talkgroup"
)

// ErrInvalid marks a definition that cannot be run at all.
var ErrInvalid = errors.New("invalid code-plug definition")

// Scalar is a raw YAML scalar. Values that may be rejected one item at a time
// (frequencies, tones, toggles) stay unparsed until the stage that uses them.
type Scalar string

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Scalar) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a scalar value", node.Line)
	}
	if node.Tag == "!!null" {
		*s = ""
		return nil
	}
	*s = Scalar(node.Value)
	return nil
}

// MarshalYAML emits the value as a plain scalar.
func (s Scalar) MarshalYAML() (any, error) {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: string(s)}, nil
}

func (s Scalar) String() string { return string(s) }

// Config is the whole code-plug definition.
type Config struct {
	Talkgroups      TalkgroupsConfig    `yaml:"talkgroups"`
	Output          OutputConfig        `yaml:"output"`
	Radio           RadioConfig         `yaml:"radio"`
	TalkgroupZone   TalkgroupZoneConfig `yaml:"talkgroup_zone"`
	Categories      map[string]Scalar   `yaml:"categories"`
	AnalogRepeaters []AnalogRepeater    `yaml:"analog_repeaters,omitempty"`
	DMRRepeaters    []DMRRepeater       `yaml:"dmr_repeaters,omitempty"`
}

// TalkgroupsConfig controls the normalizer and its source file.
type TalkgroupsConfig struct {
	Source        string              `yaml:"source"`
	Encoding      string              `yaml:"encoding"`
	Delimiter     string              `yaml:"delimiter"`
	MaxLength     int                 `yaml:"max_length"`
	PrivateIDs    []uint32            `yaml:"private_ids"`
	PrivateRanges []talkgroup.IDRange `yaml:"private_ranges,omitempty"`
	ContactLimit  int                 `yaml:"contact_limit"`
}

// OutputConfig controls where the tables are written.
type OutputConfig struct {
	Dir      string `yaml:"dir"`
	Prefix   string `yaml:"prefix"`
	Encoding string `yaml:"encoding"`
}

// RadioConfig carries per-radio values and device limits.
type RadioConfig struct {
	DMRID        string `yaml:"dmr_id"`
	ChannelLimit int    `yaml:"channel_limit"`
	ZoneLimit    int    `yaml:"zone_limit"`
}

// Popular talkgroup placement.
const (
	PopularInZone   = "zone"
	PopularSeparate = "separate"
	PopularOff      = "off"
)

// TalkgroupZoneConfig describes the digital simplex (hotspot) or repeater
// frequency carrying the imported and popular talkgroups.
type TalkgroupZoneConfig struct {
	Name            string `yaml:"name"`
	Count           int    `yaml:"count"`
	Hotspot         Scalar `yaml:"hotspot"`
	RX              Scalar `yaml:"rx"`
	TX              Scalar `yaml:"tx"`
	ColorCode       Scalar `yaml:"color_code"`
	TimeSlot        Scalar `yaml:"time_slot"`
	Power           Scalar `yaml:"power"`
	IncludeIDInName Scalar `yaml:"include_id_in_name"`
	// Popular is "zone", "separate" or "off". Empty picks "zone" for a hotspot
	// and "separate" otherwise.
	Popular string `yaml:"popular"`
}

// AnalogRepeater is one analog repeater entry.
type AnalogRepeater struct {
	Name  string `yaml:"name"`
	RX    Scalar `yaml:"rx"`
	TX    Scalar `yaml:"tx"`
	CTCSS Scalar `yaml:"ctcss"`
	Power Scalar `yaml:"power"`
}

// DMRRepeater is one DMR repeater or hotspot entry.
type DMRRepeater struct {
	Name      string `yaml:"name"`
	RX        Scalar `yaml:"rx"`
	TX        Scalar `yaml:"tx"`
	ColorCode Scalar `yaml:"color_code"`
	TimeSlot  Scalar `yaml:"time_slot"`
	Slot1     Scalar `yaml:"slot1"`
	Slot2     Scalar `yaml:"slot2"`
	Power     Scalar `yaml:"power"`
}

// Load reads a definition file over the defaults. Unknown keys are errors.
func Load(path string) (Config, error) {
	path = filepath.Clean(path)
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return Config{}, fmt.Errorf("%w: unsupported config format: %s (only YAML supported)", ErrInvalid, ext)
	}
	// #nosec G304 -- the definition path is chosen by the operator
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: read file: %w", ErrInvalid, err)
	}
	return Parse(data)
}

// Parse decodes a definition over the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("%w: strict config parse error: %w", ErrInvalid, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: config file contains multiple documents or trailing content", ErrInvalid)
	}
	return cfg, nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return buf.Bytes(), nil
}

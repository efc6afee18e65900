package builder

import (
	"fmt"

	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/model"
)

// StaticBuilder emits a built-in table as analog simplex channels. Built-in
// frequencies are trusted and not checked against the band plan.
type StaticBuilder struct {
	Kind    model.Category
	Enabled bool
}

func (b StaticBuilder) sealed() {}

// Category implements Builder.
func (b StaticBuilder) Category() model.Category { return b.Kind }

// Build implements Builder.
func (b StaticBuilder) Build() (Output, error) {
	t, ok := LookupTable(b.Kind)
	if !ok {
		return Output{}, fmt.Errorf("no built-in table for %s", b.Kind)
	}
	if !b.Enabled {
		return Output{}, nil
	}
	out := Output{Channels: make([]model.Channel, 0, len(t.Channels))}
	for _, sc := range t.Channels {
		out.Channels = append(out.Channels, model.Channel{
			Name:      channelName(sc.Name),
			RX:        sc.Freq,
			TX:        sc.Freq,
			Type:      model.Analog,
			Power:     model.PowerHigh,
			Bandwidth: t.Bandwidth,
			CTCSS:     model.NoTone,
			Contact:   NoContact,
			Category:  b.Kind,
		})
	}
	return out, nil
}

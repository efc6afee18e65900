// Package pipeline runs the normalizer, the builders and the zone assembler in
// order and writes the resulting tables.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/builder"
	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/codeplug"
	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/config"
	xlog "github.com/lucasmellon-ops/Baofeng-DM-32/internal/log"
	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/model"
	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/talkgroup"
	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/zone"
)

// ErrNothingToGenerate aborts a run with no talkgroups and nothing enabled.
var ErrNothingToGenerate = errors.New("nothing to generate: no talkgroup rows and no category or repeater enabled")

// TalkgroupStats summarizes the normalizer.
type TalkgroupStats struct {
	Rows       int `json:"rows"`
	Kept       int `json:"kept"`
	Private    int `json:"private"`
	Duplicates int `json:"duplicates"`
	Skipped    int `json:"skipped"`
	Dropped    int `json:"dropped"`
}

// Report is the machine-readable account of one run.
type Report struct {
	RunID      string                       `json:"run_id"`
	Talkgroups TalkgroupStats               `json:"talkgroups"`
	Channels   int                          `json:"channels"`
	Zones      int                          `json:"zones"`
	Skipped    []talkgroup.RowIssue         `json:"skipped,omitempty"`
	Dropped    []*talkgroup.ConstraintError `json:"dropped,omitempty"`
	Rejected   []*builder.ConfigError       `json:"rejected,omitempty"`
	Unplaced   []*zone.ConstraintError      `json:"unplaced,omitempty"`
	Renamed    []zone.Rename                `json:"renamed,omitempty"`
	Warnings   []model.CapacityWarning      `json:"warnings,omitempty"`
	Files      *codeplug.Paths              `json:"files,omitempty"`
}

// Clean reports whether nothing was rejected or dropped.
func (r *Report) Clean() bool {
	return len(r.Dropped) == 0 && len(r.Rejected) == 0 && len(r.Unplaced) == 0
}

// Result holds everything needed to write the tables.
type Result struct {
	Report     *Report
	Talkgroups []model.Talkgroup
	Plan       zone.Plan
}

// NewRunID returns a fresh sortable run identifier.
func NewRunID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), ulid.DefaultEntropy()).String()
}

// NormalizeOptions derives normalizer options from cfg.
func NormalizeOptions(cfg config.Config) talkgroup.Options {
	opts := talkgroup.DefaultOptions()
	if cfg.Talkgroups.MaxLength > 0 {
		opts.MaxLength = cfg.Talkgroups.MaxLength
	}
	if cfg.Talkgroups.PrivateIDs != nil {
		opts.Policy.PrivateIDs = cfg.Talkgroups.PrivateIDs
	}
	opts.Policy.Ranges = cfg.Talkgroups.PrivateRanges
	return opts
}

// Normalize runs the normalizer and the contact capacity check.
func Normalize(ctx context.Context, cfg config.Config, rows []talkgroup.RawRow) (talkgroup.Result, *Report) {
	logger := xlog.WithComponentFromContext(ctx, "talkgroup")

	res := talkgroup.Normalize(rows, NormalizeOptions(cfg))
	report := &Report{
		RunID: xlog.RunIDFromContext(ctx),
		Talkgroups: TalkgroupStats{
			Rows:       len(rows),
			Kept:       len(res.Talkgroups),
			Private:    res.Private(),
			Duplicates: res.Duplicates,
			Skipped:    len(res.Skipped),
			Dropped:    len(res.Dropped),
		},
		Skipped: res.Skipped,
		Dropped: res.Dropped,
	}
	for _, issue := range res.Skipped {
		logger.Debug().
			Str(xlog.FieldEvent, "talkgroups.row_skipped").
			Int(xlog.FieldLine, issue.Line).
			Str(xlog.FieldReason, issue.Reason).
			Msg("skipped malformed row")
	}
	for _, d := range res.Dropped {
		logger.Warn().
			Str(xlog.FieldEvent, "talkgroups.dropped").
			Int(xlog.FieldLine, d.Line).
			Uint32("id", d.ID).
			Str(xlog.FieldReason, d.Reason).
			Msg("dropped talkgroup")
	}
	if w, over := model.CheckCapacity("contacts", len(res.Talkgroups), cfg.Talkgroups.ContactLimit); over {
		report.Warnings = append(report.Warnings, w)
		warnCapacity(logger, w)
	}
	logger.Info().
		Str(xlog.FieldEvent, "talkgroups.normalized").
		Int("rows", len(rows)).
		Int("kept", len(res.Talkgroups)).
		Int("duplicates", res.Duplicates).
		Int("skipped", len(res.Skipped)).
		Int("dropped", len(res.Dropped)).
		Msg("normalized talkgroups")
	return res, report
}

// Run executes the whole pipeline in memory. cfg must have passed
// config.Validate and config.Normalize.
func Run(ctx context.Context, cfg config.Config, rows []talkgroup.RawRow) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logger := xlog.WithComponentFromContext(ctx, "pipeline")

	toggles, rejected := categoryToggles(cfg)
	if len(rows) == 0 && !anyEnabled(toggles) && len(cfg.AnalogRepeaters) == 0 && len(cfg.DMRRepeaters) == 0 {
		return nil, ErrNothingToGenerate
	}

	norm, report := Normalize(ctx, cfg, rows)
	report.Rejected = append(report.Rejected, rejected...)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sections, rejects, err := build(cfg, norm.Table(), toggles)
	if err != nil {
		return nil, err
	}
	report.Rejected = append(report.Rejected, rejects...)
	for _, r := range report.Rejected {
		logger.Warn().
			Str(xlog.FieldEvent, "channels.rejected").
			Str(xlog.FieldCategory, r.Category.String()).
			Str("item", r.Item).
			Str(xlog.FieldReason, r.Reason).
			Msg("rejected configuration item")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	zopts := zone.DefaultOptions()
	zopts.MaxChannels = cfg.Radio.ChannelLimit
	zopts.MaxZones = cfg.Radio.ZoneLimit
	plan, err := zone.Assemble(sections, zopts)
	if err != nil {
		return nil, fmt.Errorf("assemble zones: %w", err)
	}
	report.Channels = len(plan.Channels)
	report.Zones = len(plan.Zones)
	report.Unplaced = plan.Dropped
	report.Renamed = plan.Renamed
	report.Warnings = append(report.Warnings, plan.Warnings...)
	for _, w := range plan.Warnings {
		warnCapacity(logger, w)
	}
	for _, r := range plan.Renamed {
		logger.Info().
			Str(xlog.FieldEvent, "channels.renamed").
			Str("from", r.From).
			Str("to", r.To).
			Msg("renamed colliding channel")
	}
	logger.Info().
		Str(xlog.FieldEvent, "codeplug.assembled").
		Int("channels", report.Channels).
		Int("zones", report.Zones).
		Msg("assembled code-plug")

	return &Result{Report: report, Talkgroups: norm.Talkgroups, Plan: plan}, nil
}

func warnCapacity(logger zerolog.Logger, w model.CapacityWarning) {
	logger.Warn().
		Str(xlog.FieldEvent, "capacity.exceeded").
		Str(xlog.FieldResource, w.Resource).
		Int(xlog.FieldCount, w.Count).
		Int(xlog.FieldLimit, w.Limit).
		Msg(w.String())
}

// categoryToggles parses the static category switches. A value that is not a
// toggle disables its category and is reported.
func categoryToggles(cfg config.Config) (map[model.Category]bool, []*builder.ConfigError) {
	toggles := make(map[model.Category]bool)
	var rejected []*builder.ConfigError
	for _, c := range builder.StaticCategories() {
		raw := cfg.Categories[c.String()]
		on, err := config.ParseToggle(raw, false)
		if err != nil {
			rejected = append(rejected, &builder.ConfigError{
				Category: c, Item: c.String(), Field: "enabled", Value: raw.String(), Reason: err.Error(),
			})
			continue
		}
		toggles[c] = on
	}
	return toggles, rejected
}

func anyEnabled(toggles map[model.Category]bool) bool {
	for _, on := range toggles {
		if on {
			return true
		}
	}
	return false
}

type section struct {
	b    builder.Builder
	zone string
}

func build(cfg config.Config, table *model.TalkgroupTable, toggles map[model.Category]bool) ([]zone.Section, []*builder.ConfigError, error) {
	z := cfg.TalkgroupZone
	power := model.PowerMiddle
	if z.IsHotspot() {
		power = model.PowerLow
	}
	includeID, _ := config.ParseToggle(z.IncludeIDInName, true)
	digital := builder.Digital{
		RX:        z.RX.String(),
		TX:        z.TX.String(),
		ColorCode: z.ColorCode.String(),
		TimeSlot:  z.TimeSlot.String(),
		Power:     z.Power.String(),
	}

	planned := []section{
		{b: builder.TalkgroupBuilder{
			Talkgroups:   table,
			Count:        z.Count,
			Digital:      digital,
			DefaultPower: power,
			IncludeID:    includeID,
		}, zone: z.Name},
		{b: builder.AnalogBuilder{Repeaters: analogRepeaters(cfg.AnalogRepeaters)}},
		{b: builder.DMRBuilder{Repeaters: dmrRepeaters(cfg.DMRRepeaters), Talkgroups: table}},
	}
	for _, c := range builder.StaticCategories() {
		planned = append(planned, section{b: builder.StaticBuilder{Kind: c, Enabled: toggles[c]}})
	}
	// Popular talkgroups joining the talkgroup zone share its whole plan. In
	// their own zone they keep color code 1, slot 2 and Middle power.
	mode := z.PopularMode()
	pb := builder.PopularBuilder{
		Enabled:      mode != config.PopularOff,
		Talkgroups:   table,
		Digital:      builder.Digital{RX: digital.RX, TX: digital.TX, ColorCode: "1", TimeSlot: "2"},
		DefaultPower: model.PowerMiddle,
		IncludeID:    includeID,
	}
	popular := section{b: pb}
	if mode == config.PopularInZone {
		pb.Digital = digital
		pb.DefaultPower = power
		popular = section{b: pb, zone: z.Name}
	}
	planned = append(planned, popular)

	var sections []zone.Section
	var rejected []*builder.ConfigError
	for _, s := range planned {
		out, err := s.b.Build()
		if err != nil {
			return nil, nil, fmt.Errorf("build %s: %w", s.b.Category(), err)
		}
		rejected = append(rejected, out.Rejected...)
		sections = append(sections, zone.Section{Category: s.b.Category(), Zone: s.zone, Channels: out.Channels})
	}
	return sections, rejected, nil
}

func analogRepeaters(in []config.AnalogRepeater) []builder.AnalogRepeater {
	out := make([]builder.AnalogRepeater, len(in))
	for i, r := range in {
		out[i] = builder.AnalogRepeater{
			Name:  r.Name,
			RX:    r.RX.String(),
			TX:    r.TX.String(),
			CTCSS: r.CTCSS.String(),
			Power: r.Power.String(),
		}
	}
	return out
}

func dmrRepeaters(in []config.DMRRepeater) []builder.DMRRepeater {
	out := make([]builder.DMRRepeater, len(in))
	for i, r := range in {
		out[i] = builder.DMRRepeater{
			Name:      r.Name,
			RX:        r.RX.String(),
			TX:        r.TX.String(),
			ColorCode: r.ColorCode.String(),
			TimeSlot:  r.TimeSlot.String(),
			Slot1:     r.Slot1.String(),
			Slot2:     r.Slot2.String(),
			Power:     r.Power.String(),
		}
	}
	return out
}

// Delimiter returns the configured CSV delimiter rune.
func Delimiter(cfg config.Config) rune {
	for _, r := range cfg.Talkgroups.Delimiter {
		return r
	}
	return ','
}

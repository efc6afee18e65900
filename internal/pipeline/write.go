package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/codeplug"
	xlog "github.com/lucasmellon-ops/Baofeng-DM-32/internal/log"
	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/model"
)

// OutputOptions controls WriteOutputs.
type OutputOptions struct {
	Dir      string
	Prefix   string
	Encoding string
	DMRID    string
}

// WriteOutputs writes the contact, channel, zone and receive group list
// tables. Each file is replaced atomically; an encoding violation leaves the
// previous file intact.
func WriteOutputs(ctx context.Context, res *Result, opts OutputOptions) (codeplug.Paths, error) {
	if err := codeplug.CheckOutputEncoding(opts.Encoding); err != nil {
		return codeplug.Paths{}, err
	}
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return codeplug.Paths{}, fmt.Errorf("create output dir: %w", err)
	}
	paths := codeplug.OutputPaths(dir, opts.Prefix)

	files := []struct {
		path   string
		render func(io.Writer) error
	}{
		{paths.Talkgroups, func(w io.Writer) error { return codeplug.WriteTalkgroups(w, res.Talkgroups) }},
		{paths.Channels, func(w io.Writer) error {
			return codeplug.WriteChannels(w, res.Plan.Channels, codeplug.ChannelOptions{DMRID: opts.DMRID})
		}},
		{paths.Zones, func(w io.Writer) error { return codeplug.WriteZones(w, res.Plan.Zones) }},
		{paths.RXGroupLists, func(w io.Writer) error { return codeplug.WriteRXGroupLists(w, res.Plan.Channels) }},
	}
	for _, f := range files {
		if err := WriteFile(ctx, f.path, f.render); err != nil {
			return codeplug.Paths{}, err
		}
	}
	if res.Report != nil {
		res.Report.Files = &paths
	}
	return paths, nil
}

// WriteTalkgroups writes only the contact table.
func WriteTalkgroups(ctx context.Context, path, encoding string, tgs []model.Talkgroup) error {
	if err := codeplug.CheckOutputEncoding(encoding); err != nil {
		return err
	}
	return WriteFile(ctx, path, func(w io.Writer) error { return codeplug.WriteTalkgroups(w, tgs) })
}

// WriteFile writes one table atomically and logs it.
func WriteFile(ctx context.Context, path string, render func(io.Writer) error) error {
	logger := xlog.WithComponentFromContext(ctx, "codeplug")
	if err := codeplug.WriteFile(ctx, path, render); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	logger.Info().
		Str(xlog.FieldEvent, "file.written").
		Str(xlog.FieldPath, path).
		Msg("wrote table")
	return nil
}

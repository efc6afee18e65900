package codeplug

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/renameio/v2"

	xlog "github.com/lucasmellon-ops/Baofeng-DM-32/internal/log"
)

// DefaultPrefix names the output files when no prefix is configured.
const DefaultPrefix = "DM_32"

// Paths are the output files of one run.
type Paths struct {
	Talkgroups   string `json:"talkgroups"`
	Channels     string `json:"channels,omitempty"`
	Zones        string `json:"zones,omitempty"`
	RXGroupLists string `json:"rx_group_lists,omitempty"`
}

// OutputPaths derives the file names from a directory and prefix.
func OutputPaths(dir, prefix string) Paths {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return Paths{
		Talkgroups:   filepath.Join(dir, prefix+"_Talkgroups.csv"),
		Channels:     filepath.Join(dir, prefix+"_Channels.csv"),
		Zones:        filepath.Join(dir, prefix+"_Zones.csv"),
		RXGroupLists: filepath.Join(dir, prefix+"_RXGroupLists.csv"),
	}
}

// CheckOutputEncoding accepts only labels whose output is plain ASCII bytes.
func CheckOutputEncoding(label string) error {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "", "ascii", "us-ascii", "utf-8", "utf8":
		return nil
	}
	return fmt.Errorf("%w: output encoding %q is not ASCII-compatible", ErrEncoding, label)
}

// WriteFile renders into a pending file and atomically replaces path. The
// pending file is removed if render fails.
func WriteFile(ctx context.Context, path string, render func(io.Writer) error) error {
	logger := xlog.FromContext(ctx)

	pendingFile, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644))
	if err != nil {
		return fmt.Errorf("create pending file %s: %w", path, err)
	}
	defer func() {
		if err := pendingFile.Cleanup(); err != nil {
			logger.Debug().Err(err).Str(xlog.FieldPath, path).Msg("cleanup pending file")
		}
	}()

	if err := render(pendingFile); err != nil {
		return err
	}
	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace %s: %w", path, err)
	}
	return nil
}

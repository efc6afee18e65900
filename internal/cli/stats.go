package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/model"
	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/pipeline"
)

func init() {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show talkgroup normalization statistics without writing files",
		Run:   runStats,
	}

	cmd.Flags().StringP("input", "i", "", "Talkgroup export CSV (default talkgroups.source)")

	RootCmd.AddCommand(cmd)
}

func runStats(cmd *cobra.Command, args []string) {
	cfg, err := loadDefinition()
	if err != nil {
		exitErr("load definition", err)
	}
	if in, _ := cmd.Flags().GetString("input"); in != "" {
		cfg.Talkgroups.Source = in
	}
	if cfg.Talkgroups.Source == "" {
		exitErr("stats", fmt.Errorf("no input file (use -i or talkgroups.source)"))
	}
	rows, err := readTalkgroups(cfg)
	if err != nil {
		exitErr("read talkgroups", err)
	}

	ctx, _ := runContext(cmd)
	_, report := pipeline.Normalize(ctx, cfg, rows)

	b, _ := json.MarshalIndent(struct {
		Talkgroups pipeline.TalkgroupStats `json:"talkgroups"`
		Warnings   []model.CapacityWarning `json:"warnings,omitempty"`
	}{report.Talkgroups, report.Warnings}, "", "  ")
	fmt.Println(string(b))
}

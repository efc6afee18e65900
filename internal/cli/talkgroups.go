package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/codeplug"
	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/pipeline"
)

func init() {
	cmd := &cobra.Command{
		Use:   "talkgroups",
		Short: "Normalize a talkgroup export into the contact table",
		Long: "Reads a BrandMeister talkgroup CSV, transliterates names to ASCII, drops duplicate IDs " +
			"(first wins) and writes the DM-32 contact table.",
		PreRun: bindTalkgroupsFlags,
		Run:    runTalkgroups,
	}

	cmd.Flags().StringP("input", "i", "", "Talkgroup export CSV")
	cmd.Flags().StringP("output", "o", "", "Output CSV (default <prefix>_Talkgroups.csv in the output dir)")
	cmd.Flags().Int("max-length", 0, "Maximum contact name length (default 16; channel names stay at 16)")
	cmd.Flags().String("input-encoding", "", "Input encoding label, e.g. utf-8 or windows-1252")
	cmd.Flags().String("delimiter", "", "Input field delimiter (default ,)")
	cmd.Flags().String("output-encoding", "", "Output encoding: ascii or utf-8")
	cmd.Flags().Bool("strict", false, "Exit with status 4 if any record was dropped")

	RootCmd.AddCommand(cmd)
}

func runTalkgroups(cmd *cobra.Command, args []string) {
	cfg, err := loadDefinition()
	if err != nil {
		exitErr("load definition", err)
	}
	if cfg.Talkgroups.Source == "" {
		exitErr("talkgroups", fmt.Errorf("no input file (use -i or talkgroups.source)"))
	}
	rows, err := readTalkgroups(cfg)
	if err != nil {
		exitErr("read talkgroups", err)
	}

	ctx, _ := runContext(cmd)
	res, report := pipeline.Normalize(ctx, cfg, rows)

	out, _ := cmd.Flags().GetString("output")
	if out == "" {
		out = codeplug.OutputPaths(cfg.Output.Dir, cfg.Output.Prefix).Talkgroups
	}
	if err := pipeline.WriteTalkgroups(ctx, out, cfg.Output.Encoding, res.Talkgroups); err != nil {
		exitErr("write talkgroups", err)
	}
	report.Files = &codeplug.Paths{Talkgroups: filepath.Clean(out)}

	b, _ := json.MarshalIndent(report, "", "  ")
	fmt.Println(string(b))

	if viper.GetBool("strict") && !report.Clean() {
		exitErr("talkgroups", errStrict)
	}
}

// Bound at run time: sibling commands share viper keys.
func bindTalkgroupsFlags(cmd *cobra.Command, args []string) {
	_ = viper.BindPFlag("talkgroups.source", cmd.Flags().Lookup("input"))
	_ = viper.BindPFlag("talkgroups.max_length", cmd.Flags().Lookup("max-length"))
	_ = viper.BindPFlag("talkgroups.encoding", cmd.Flags().Lookup("input-encoding"))
	_ = viper.BindPFlag("talkgroups.delimiter", cmd.Flags().Lookup("delimiter"))
	_ = viper.BindPFlag("output.encoding", cmd.Flags().Lookup("output-encoding"))
	_ = viper.BindPFlag("strict", cmd.Flags().Lookup("strict"))
}

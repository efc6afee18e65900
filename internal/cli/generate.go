package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/pipeline"
)

func init() {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the talkgroup, channel and zone tables",
		Long: "Reads the code-plug definition and the talkgroup export, then writes " +
			"<prefix>_Talkgroups.csv, <prefix>_Channels.csv, <prefix>_Zones.csv and " +
			"<prefix>_RXGroupLists.csv. The run report is printed as JSON.",
		PreRun: bindGenerateFlags,
		Run:    runGenerate,
	}

	cmd.Flags().StringP("talkgroups", "t", "", "Talkgroup export CSV (overrides talkgroups.source)")
	cmd.Flags().StringP("prefix", "p", "", "Output file prefix (default DM_32)")
	cmd.Flags().StringP("out-dir", "o", "", "Output directory (default .)")
	cmd.Flags().String("dmr-id", "", "DMR ID or callsign string for the channel table")
	cmd.Flags().Bool("strict", false, "Exit with status 4 if any record was rejected or dropped")

	RootCmd.AddCommand(cmd)
}

func runGenerate(cmd *cobra.Command, args []string) {
	cfg, err := loadDefinition()
	if err != nil {
		exitErr("load definition", err)
	}
	rows, err := readTalkgroups(cfg)
	if err != nil {
		exitErr("read talkgroups", err)
	}

	ctx, _ := runContext(cmd)
	res, err := pipeline.Run(ctx, cfg, rows)
	if err != nil {
		exitErr("generate", err)
	}
	if _, err := pipeline.WriteOutputs(ctx, res, pipeline.OutputOptions{
		Dir:      cfg.Output.Dir,
		Prefix:   cfg.Output.Prefix,
		Encoding: cfg.Output.Encoding,
		DMRID:    cfg.Radio.DMRID,
	}); err != nil {
		exitErr("write outputs", err)
	}

	b, _ := json.MarshalIndent(res.Report, "", "  ")
	fmt.Println(string(b))

	if viper.GetBool("strict") && !res.Report.Clean() {
		exitErr("generate", errStrict)
	}
}

// Bound at run time: sibling commands share viper keys.
func bindGenerateFlags(cmd *cobra.Command, args []string) {
	_ = viper.BindPFlag("talkgroups.source", cmd.Flags().Lookup("talkgroups"))
	_ = viper.BindPFlag("output.prefix", cmd.Flags().Lookup("prefix"))
	_ = viper.BindPFlag("output.dir", cmd.Flags().Lookup("out-dir"))
	_ = viper.BindPFlag("radio.dmr_id", cmd.Flags().Lookup("dmr-id"))
	_ = viper.BindPFlag("strict", cmd.Flags().Lookup("strict"))
}

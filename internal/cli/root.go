// Package cli implements the dm32 CLI commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/codeplug"
	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/config"
	xlog "github.com/lucasmellon-ops/Baofeng-DM-32/internal/log"
	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/pipeline"
	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/talkgroup"
)

// Exit codes.
const (
	exitOK       = 0
	exitFailure  = 1
	exitConfig   = 2
	exitEncoding = 3
	exitStrict   = 4
)

var errStrict = errors.New("strict mode: records were rejected or dropped")

var cfgFile string

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "dm32",
	Short: "Baofeng DM-32 code-plug generator",
	Long: "Builds CPS import tables for the Baofeng DM-32: a normalized talkgroup list, " +
		"channels for talkgroups, repeaters and service bands, and the zones that group them.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		xlog.Configure(xlog.Config{
			Level:  viper.GetString("log.level"),
			Format: viper.GetString("log.format"),
			Output: os.Stderr,
		})
		logger := xlog.WithComponent("cli")
		logger.Debug().
			Str(xlog.FieldEvent, "cli.start").
			Str("command", cmd.CommandPath()).
			Msg("starting command")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Code-plug definition (default: $DM32_CONFIG, else built-in defaults)")
	RootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn or error")
	RootCmd.PersistentFlags().String("log-format", "json", "Log format: json or console")

	_ = viper.BindPFlag("log.level", RootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log.format", RootCmd.PersistentFlags().Lookup("log-format"))
}

func initConfig() {
	viper.SetEnvPrefix("DM32")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()
	_ = viper.BindEnv("config")

	if cfgFile == "" {
		cfgFile = viper.GetString("config")
	}
}

// loadDefinition reads the code-plug definition and applies flag and
// environment overrides, then validates and normalizes it.
func loadDefinition() (config.Config, error) {
	cfg := config.Default()
	if cfgFile != "" {
		var err error
		if cfg, err = config.Load(cfgFile); err != nil {
			return config.Config{}, err
		}
	}
	applyOverrides(&cfg)
	if err := config.Validate(&cfg); err != nil {
		return config.Config{}, err
	}
	config.Normalize(&cfg)
	return cfg, nil
}

func applyOverrides(cfg *config.Config) {
	str := func(key string, dst *string) {
		if viper.IsSet(key) {
			*dst = viper.GetString(key)
		}
	}
	str("talkgroups.source", &cfg.Talkgroups.Source)
	str("talkgroups.encoding", &cfg.Talkgroups.Encoding)
	str("talkgroups.delimiter", &cfg.Talkgroups.Delimiter)
	str("output.dir", &cfg.Output.Dir)
	str("output.prefix", &cfg.Output.Prefix)
	str("output.encoding", &cfg.Output.Encoding)
	str("radio.dmr_id", &cfg.Radio.DMRID)
	if viper.IsSet("talkgroups.max_length") {
		cfg.Talkgroups.MaxLength = viper.GetInt("talkgroups.max_length")
	}
}

// readTalkgroups loads the directory export named by the definition. An
// empty source yields no rows.
func readTalkgroups(cfg config.Config) ([]talkgroup.RawRow, error) {
	if cfg.Talkgroups.Source == "" {
		return nil, nil
	}
	// #nosec G304 -- the source path is chosen by the operator
	f, err := os.Open(cfg.Talkgroups.Source)
	if err != nil {
		return nil, fmt.Errorf("open talkgroup source: %w", err)
	}
	defer f.Close()
	return talkgroup.ReadCSV(f, talkgroup.ReadOptions{
		Encoding:  cfg.Talkgroups.Encoding,
		Delimiter: pipeline.Delimiter(cfg),
	})
}

// runContext attaches the logger and a fresh run ID to the command context.
func runContext(cmd *cobra.Command) (context.Context, string) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	id := pipeline.NewRunID()
	logger := xlog.Base()
	ctx = logger.WithContext(ctx)
	return xlog.ContextWithRunID(ctx, id), id
}

// exitCode maps an error to the process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errStrict):
		return exitStrict
	case errors.Is(err, codeplug.ErrEncoding):
		return exitEncoding
	case errors.Is(err, config.ErrInvalid),
		errors.Is(err, pipeline.ErrNothingToGenerate),
		errors.Is(err, talkgroup.ErrHeader):
		return exitConfig
	}
	return exitFailure
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(exitCode(err))
}

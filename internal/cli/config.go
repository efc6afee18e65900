package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/config"
)

func init() {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the code-plug definition as YAML",
		Long:  "Prints the built-in defaults, or the loaded definition with -c, as a starting point for codeplug.yaml.",
		Run:   runConfig,
	}

	RootCmd.AddCommand(cmd)
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg, err := loadDefinition()
	if err != nil {
		exitErr("load definition", err)
	}
	b, err := config.Marshal(cfg)
	if err != nil {
		exitErr("config", err)
	}
	fmt.Print(string(b))
}

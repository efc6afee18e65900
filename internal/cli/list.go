package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/builder"
	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the built-in channel tables",
		Run:   runList,
	}

	cmd.Flags().String("category", "", "Only this category, e.g. murs, noaa or popular")

	RootCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) {
	key, _ := cmd.Flags().GetString("category")

	var out any
	switch {
	case key == "":
		tables := make([]builder.Table, 0)
		for _, c := range builder.StaticCategories() {
			t, _ := builder.LookupTable(c)
			tables = append(tables, t)
		}
		out = struct {
			Tables  []builder.Table            `json:"tables"`
			Popular []builder.PopularTalkgroup `json:"popular"`
		}{tables, builder.PopularTalkgroups}
	default:
		c, err := model.ParseCategory(key)
		if err != nil {
			exitErr("list", err)
		}
		if c == model.CategoryPopular {
			out = builder.PopularTalkgroups
			break
		}
		t, ok := builder.LookupTable(c)
		if !ok {
			exitErr("list", fmt.Errorf("%s has no built-in table", c))
		}
		out = t
	}

	b, _ := json.MarshalIndent(out, "", "  ")
	fmt.Println(string(b))
}

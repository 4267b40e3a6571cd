package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/limbo/frisfocus/internal/rules"
)

func init() {
	rootCmd.AddCommand(rulesCmd)
	rulesCmd.Flags().Bool("toml", false, "print the table as a TOML document usable as RULES_FILE")
}

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the active FP rule table",
	RunE: func(cmd *cobra.Command, args []string) error {
		asTOML, _ := cmd.Flags().GetBool("toml")
		table, err := loadRules(loadConfig())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if asTOML {
			return rules.Encode(out, table.All())
		}
		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "EVENT TYPE\tFP\tWINDOW\tDESCRIPTION")
		for _, r := range table.All() {
			fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", r.EventType, r.FpAmount, r.Window, r.Description)
		}
		return tw.Flush()
	},
}

package cmd

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/team-telnyx/netbox/netboxctl/api"
)

var CircuitTypeSlug string

var CircuitTypeCmd = &cobra.Command{
	Use:   "type",
	Args:  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Short: "List circuit types",
}

var CircuitTypeListCmd = &cobra.Command{
	Use:          "list",
	Short:        "list circuit types",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		circuitTypes, err := api.GetCircuitTypes(cmd.Context())
		if err != nil {
			return fmt.Errorf("error getting circuit types: %w", err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)

		if ShowUUID {
			t.AppendHeader(table.Row{"NAME", "UUID", "SLUG", "CIRCUITS"})
		} else {
			t.AppendHeader(table.Row{"NAME", "SLUG", "CIRCUITS"})
		}

		t.SetStyle(myTableStyle)

		for _, aType := range circuitTypes {
			if ShowUUID {
				t.AppendRow(table.Row{aType.Name, aType.ID, aType.Slug, aType.CircuitCount})
			} else {
				t.AppendRow(table.Row{aType.Name, aType.Slug, aType.CircuitCount})
			}
		}

		t.Render()

		return nil
	},
}

func init() {
	disableFlagSorting(CircuitTypeCmd)

	disableFlagSorting(CircuitTypeListCmd)
	CircuitTypeListCmd.Flags().BoolVarP(&ShowUUID,
		"uuid", "u", ShowUUID, "Show UUIDs",
	)

	CircuitTypeCmd.AddCommand(CircuitTypeListCmd)
}

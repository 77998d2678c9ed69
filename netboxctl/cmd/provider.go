package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/team-telnyx/netbox/netboxctl/api"
)

var ProviderSlug string
var ProviderID string

var ProviderCmd = &cobra.Command{
	Use:   "provider",
	Args:  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Short: "List providers and their circuits",
}

var ProviderListCmd = &cobra.Command{
	Use:          "list",
	Short:        "list providers",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		providers, err := api.GetProviders(cmd.Context())
		if err != nil {
			return fmt.Errorf("error getting providers: %w", err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)

		if ShowUUID {
			t.AppendHeader(table.Row{"NAME", "UUID", "SLUG", "ASN", "ACCOUNT", "CIRCUITS"})
		} else {
			t.AppendHeader(table.Row{"NAME", "SLUG", "ASN", "ACCOUNT", "CIRCUITS"})
		}

		t.SetStyle(myTableStyle)

		for _, aProvider := range providers {
			asn := ""
			if aProvider.ASN != 0 {
				asn = "AS" + strconv.FormatUint(uint64(aProvider.ASN), 10)
			}

			if ShowUUID {
				t.AppendRow(table.Row{
					aProvider.Name,
					aProvider.ID,
					aProvider.Slug,
					asn,
					aProvider.Account,
					aProvider.CircuitCount,
				})
			} else {
				t.AppendRow(table.Row{
					aProvider.Name,
					aProvider.Slug,
					asn,
					aProvider.Account,
					aProvider.CircuitCount,
				})
			}
		}

		t.Render()

		return nil
	},
}

var ProviderCircuitsCmd = &cobra.Command{
	Use:          "circuits",
	Short:        "list a provider's circuits",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if ProviderSlug == "" {
			return errProviderNotFound
		}

		circuits, err := api.GetCircuits(cmd.Context(), ProviderSlug, "")
		if err != nil {
			return fmt.Errorf("error getting circuits: %w", err)
		}

		renderCircuitTable(circuits)

		return nil
	},
}

func init() {
	disableFlagSorting(ProviderCmd)

	disableFlagSorting(ProviderListCmd)
	ProviderListCmd.Flags().BoolVarP(&ShowUUID,
		"uuid", "u", ShowUUID, "Show UUIDs",
	)

	disableFlagSorting(ProviderCircuitsCmd)
	ProviderCircuitsCmd.Flags().StringVarP(&ProviderSlug,
		"slug", "n", ProviderSlug, "Slug of provider",
	)

	err := ProviderCircuitsCmd.MarkFlagRequired("slug")
	if err != nil {
		panic(err)
	}

	ProviderCmd.AddCommand(ProviderListCmd)
	ProviderCmd.AddCommand(ProviderCircuitsCmd)
}

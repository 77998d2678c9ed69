package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/team-telnyx/netbox/netboxctl/api"
)

var CircuitID string
var CircuitProviderSlug string
var CircuitTypeFilterSlug string

var CircuitCmd = &cobra.Command{
	Use:   "circuit",
	Args:  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Short: "List circuits, show details, swap terminations",
}

func rateString(kbps uint64) string {
	if kbps == 0 {
		return ""
	}

	if Humanize {
		return humanize.SI(float64(kbps)*1000, "bps")
	}

	return strconv.FormatUint(kbps, 10)
}

func renderCircuitTable(circuits []api.Circuit) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)

	if ShowUUID {
		t.AppendHeader(table.Row{"CID", "UUID", "PROVIDER", "TYPE", "COMMIT RATE"})
	} else {
		t.AppendHeader(table.Row{"CID", "PROVIDER", "TYPE", "COMMIT RATE"})
	}

	t.SetStyle(myTableStyle)

	for _, aCircuit := range circuits {
		if ShowUUID {
			t.AppendRow(table.Row{
				aCircuit.CID,
				aCircuit.ID,
				aCircuit.ProviderName,
				aCircuit.TypeName,
				rateString(aCircuit.CommitRate),
			})
		} else {
			t.AppendRow(table.Row{
				aCircuit.CID,
				aCircuit.ProviderName,
				aCircuit.TypeName,
				rateString(aCircuit.CommitRate),
			})
		}
	}

	t.Render()
}

func renderTermination(side string, term *api.Termination) {
	if term == nil {
		fmt.Printf("Termination %s: %s\n", side, color.RedString("NOT DEFINED"))

		return
	}

	fmt.Printf("Termination %s: site %s", side, color.GreenString(term.SiteName))

	if term.PortSpeed != 0 {
		fmt.Printf(", %s", rateString(term.PortSpeed))
	}

	if term.XConnectID != "" {
		fmt.Printf(", xconnect %s", term.XConnectID)
	}

	if term.PPInfo != "" {
		fmt.Printf(", panel %s", term.PPInfo)
	}

	fmt.Printf("\n")
}

var CircuitListCmd = &cobra.Command{
	Use:          "list",
	Short:        "list circuits",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		circuits, err := api.GetCircuits(cmd.Context(), CircuitProviderSlug, CircuitTypeFilterSlug)
		if err != nil {
			return fmt.Errorf("error getting circuits: %w", err)
		}

		renderCircuitTable(circuits)

		return nil
	},
}

var CircuitGetCmd = &cobra.Command{
	Use:          "get",
	Short:        "get circuit details",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if CircuitID == "" {
			return errCircuitNotFound
		}

		aCircuit, err := api.GetCircuit(cmd.Context(), CircuitID)
		if err != nil {
			return fmt.Errorf("error getting circuit: %w", err)
		}

		fmt.Printf("CID: %s\n", aCircuit.CID)
		fmt.Printf("Provider: %s\n", aCircuit.ProviderName)

		if aCircuit.TypeName != "" {
			fmt.Printf("Type: %s\n", aCircuit.TypeName)
		}

		if aCircuit.InstallDate != "" {
			fmt.Printf("Installed: %s\n", aCircuit.InstallDate)
		}

		if aCircuit.CommitRate != 0 {
			fmt.Printf("Commit Rate: %s\n", rateString(aCircuit.CommitRate))
		}

		renderTermination("A", aCircuit.TerminationA)
		renderTermination("Z", aCircuit.TerminationZ)

		return nil
	},
}

var CircuitSwapCmd = &cobra.Command{
	Use:          "swap",
	Short:        "swap a circuit's A and Z side terminations",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if CircuitID == "" {
			return errCircuitNotFound
		}

		aCircuit, err := api.SwapTerminations(cmd.Context(), CircuitID)
		if err != nil {
			return fmt.Errorf("error swapping terminations: %w", err)
		}

		fmt.Printf("Terminations swapped for %s\n", aCircuit.CID)

		renderTermination("A", aCircuit.TerminationA)
		renderTermination("Z", aCircuit.TerminationZ)

		return nil
	},
}

func init() {
	disableFlagSorting(CircuitCmd)

	disableFlagSorting(CircuitListCmd)
	CircuitListCmd.Flags().BoolVarP(&ShowUUID,
		"uuid", "u", ShowUUID, "Show UUIDs",
	)
	CircuitListCmd.Flags().StringVarP(&CircuitProviderSlug,
		"provider", "p", CircuitProviderSlug, "Filter by provider slug",
	)
	CircuitListCmd.Flags().StringVarP(&CircuitTypeFilterSlug,
		"type", "y", CircuitTypeFilterSlug, "Filter by circuit type slug",
	)
	CircuitListCmd.Flags().BoolVarP(&Humanize,
		"human", "H", Humanize, "Print sizes in human readable form",
	)

	disableFlagSorting(CircuitGetCmd)
	CircuitGetCmd.Flags().StringVarP(&CircuitID, "id", "i", CircuitID, "Id of circuit")

	err := CircuitGetCmd.MarkFlagRequired("id")
	if err != nil {
		panic(err)
	}

	CircuitGetCmd.Flags().BoolVarP(&Humanize,
		"human", "H", Humanize, "Print sizes in human readable form",
	)

	disableFlagSorting(CircuitSwapCmd)
	CircuitSwapCmd.Flags().StringVarP(&CircuitID, "id", "i", CircuitID, "Id of circuit")

	err = CircuitSwapCmd.MarkFlagRequired("id")
	if err != nil {
		panic(err)
	}

	CircuitCmd.AddCommand(CircuitListCmd)
	CircuitCmd.AddCommand(CircuitGetCmd)
	CircuitCmd.AddCommand(CircuitSwapCmd)
}

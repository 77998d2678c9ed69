package cmd

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/team-telnyx/netbox/netboxctl/api"
)

var myTableStyle = table.Style{
	Name: "myNewStyle",
	Box: table.BoxStyle{
		MiddleHorizontal: "-", // bug in go-pretty causes panic if this is empty
		PaddingRight:     "  ",
	},
	Format: table.FormatOptions{
		Footer: text.FormatUpper,
		Header: text.FormatUpper,
		Row:    text.FormatDefault,
	},
	Options: table.Options{
		DrawBorder:      false,
		SeparateColumns: false,
		SeparateFooter:  false,
		SeparateHeader:  false,
		SeparateRows:    false,
	},
}

var cfgFile string
var Humanize = true
var ShowUUID = false

var defaultHost = "localhost"
var defaultPort = 8000
var defaultTimeout = 5

var rootCmd = &cobra.Command{
	Use:     "netboxctl",
	Version: mainVersion,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func disableFlagSorting(cmd *cobra.Command) {
	cmd.Flags().SortFlags = false
	cmd.PersistentFlags().SortFlags = false
	cmd.InheritedFlags().SortFlags = false
}

func init() {
	cobra.OnInitialize(initConfig)
	cobra.EnableCommandSorting = false
	disableFlagSorting(rootCmd)

	rootCmd.PersistentFlags().StringVarP(&cfgFile,
		"config", "C", cfgFile, "config file (default $HOME/.netboxctl.yaml)")

	rootCmd.PersistentFlags().StringP("server", "S", defaultHost, "server")
	err := viper.BindPFlag("server", rootCmd.PersistentFlags().Lookup("server"))
	if err != nil {
		panic(err)
	}

	rootCmd.PersistentFlags().Uint16P("port", "P", uint16(defaultPort), "port")
	err = viper.BindPFlag("port", rootCmd.PersistentFlags().Lookup("port"))
	if err != nil {
		panic(err)
	}

	rootCmd.PersistentFlags().Uint64P("timeout", "T", uint64(defaultTimeout), "timeout in seconds")
	err = viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	if err != nil {
		panic(err)
	}

	rootCmd.PersistentFlags().String("token", "", "API token")
	err = viper.BindPFlag("token", rootCmd.PersistentFlags().Lookup("token"))
	if err != nil {
		panic(err)
	}

	rootCmd.AddCommand(CircuitCmd)
	rootCmd.AddCommand(ProviderCmd)
	rootCmd.AddCommand(CircuitTypeCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".netboxctl")
	}

	viper.SetEnvPrefix("NETBOXCTL")
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()

	api.ServerName = viper.GetString("server")
	api.ServerPort = viper.GetUint16("port")
	api.ServerTimeout = viper.GetUint64("timeout")
	api.Token = viper.GetString("token")
}

var mainVersion = "unknown"

// Package cmd implements the etsy-bridge CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	apiclient "github.com/donaldgifford/etsy-bridge/internal/api/client"
	"github.com/donaldgifford/etsy-bridge/internal/config"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "etsy-bridge",
		Short: "HTTP bridge to the Etsy Open API",
		Long: "etsy-bridge holds an Etsy OAuth session and exposes listing creation,\n" +
			"inventory updates and media uploads as plain HTTP endpoints.\n" +
			"Run `etsy-bridge serve` to start the server; the other commands\n" +
			"talk to a running bridge.",
		SilenceUsage: true,
	}
)

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "config.yaml", "server config file; ignored when missing")
	rootCmd.PersistentFlags().
		String("server", "http://localhost:3000", "bridge URL used by client commands")
	rootCmd.PersistentFlags().
		String("output", "table", "output format (table, json)")

	cobra.CheckErr(viper.BindPFlag("server", rootCmd.PersistentFlags().Lookup("server")))
	cobra.CheckErr(viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output")))

	rootCmd.AddCommand(
		serveCmd(),
		authURLCmd(),
		authStatusCmd(),
		publishCmd(),
		quotaCmd(),
		shippingProfilesCmd(),
		openapiCmd(),
		versionCmd(),
	)
}

func initConfig() {
	viper.SetEnvPrefix("ETSY_BRIDGE")
	viper.AutomaticEnv()
}

// loadConfig reads .env, then the YAML config when it exists, falling back
// to the environment alone.
func loadConfig() (*config.Config, error) {
	if err := config.LoadDotEnv(".env"); err != nil {
		return nil, err
	}

	if cfgFile != "" {
		if _, err := os.Stat(cfgFile); err == nil {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return nil, fmt.Errorf("loading config: %w", err)
			}
			return cfg, nil
		}
	}

	cfg, err := config.FromEnv()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func newClient() *apiclient.Client {
	return apiclient.New(viper.GetString("server"))
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}

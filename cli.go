package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/adarshrangare/portfolio/internal/config"
	"github.com/adarshrangare/portfolio/internal/logging"
	"github.com/adarshrangare/portfolio/terminal"
	"github.com/adarshrangare/portfolio/tui"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Adarsh Rangare's portfolio site",
	Long:  `Serves the portfolio page with its interactive terminal, or runs the terminal locally.`,
	// Running without a subcommand serves the site
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(cmd, args)
	},
	SilenceUsage: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		log := logging.New(logging.ParseLevel(cfg.LogLevel))
		return runServe(cmd.Context(), cfg, log)
	},
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive terminal in this console",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return tui.Run(terminal.NewSession(terminal.DefaultTable()), cfg.FocusDelay)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "portfolio", Version)
	},
}

// loadConfig reads the environment and applies flag overrides.
func loadConfig(cmd *cobra.Command) (config.Settings, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port, _ = cmd.Flags().GetString("port")
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
	}
	return cfg, nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.Flags().String("port", "8080", "HTTP port")
	serveCmd.Flags().String("port", "8080", "HTTP port")

	rootCmd.AddCommand(serveCmd, tuiCmd, versionCmd)
}

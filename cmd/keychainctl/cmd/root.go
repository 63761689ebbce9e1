// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ArmCyber contributors

// Package cmd implements the keychainctl command tree: a small cobra-based
// CLI that exercises every public operation of internal/keychain directly
// against the terminal, for demonstration and scripting use rather than as
// a production credential store front end.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ArmCyber/go-keychain/internal/config"
	"github.com/ArmCyber/go-keychain/internal/logger"
)

var (
	flagConfigFile  string
	flagKeychainKey string
	flagLogLevel    string

	appConfig *config.AppConfig
	log       *logger.Logger
)

func init() {
	rootCmd.SilenceUsage = true
	cobra.MousetrapHelpText = ""

	persistent := rootCmd.PersistentFlags()
	persistent.StringVarP(&flagConfigFile, "config", "c", "", "JSON config file path")
	persistent.StringVarP(&flagKeychainKey, "keychain-key", "k", "", "keychain key (UUID.generalKey.pairPublic, base64 dot-joined)")
	persistent.StringVarP(&flagLogLevel, "log-level", "", "", "log level: debug, info, warn, error")
}

var rootCmd = &cobra.Command{
	Use:   "keychainctl",
	Short: "keychainctl drives the go-keychain cryptographic vault from the command line",
	Long: `keychainctl is a thin command-line harness over the go-keychain
library: every subcommand maps directly onto a public Keychain operation
(generate, encrypt, decrypt, issue-token, inspect).

Configuration is loaded from, in increasing priority: environment
variables (KEYCHAIN_KEY, LOG_LEVEL, CONFIG), the flags above, and an
optional JSON file. The file is located via --config/$CONFIG, or, if
neither is set, by searching ./keychainctl.json, ~/keychainctl.json, and
/etc/keychainctl/keychainctl.json.`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		override := flagsToOverride()
		if (override == nil || override.JSONFilePath == "") && flagConfigFile == "" {
			if path := discoverConfigFile(); path != "" {
				if override == nil {
					override = &config.AppConfig{}
				}
				override.JSONFilePath = path
			}
		}

		cfg, err := config.Load(override)
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}
		appConfig = cfg
		log = logger.NewLogger("keychainctl", cfg.LogLevel)
		return nil
	},
}

// flagsToOverride builds a *config.AppConfig containing only the flags the
// caller actually set, so an unset flag never shadows a higher-priority
// environment variable once merged by [config.Load].
func flagsToOverride() *config.AppConfig {
	override := &config.AppConfig{}
	changed := false

	rootCmd.PersistentFlags().Visit(func(f *pflag.Flag) {
		changed = true
		switch f.Name {
		case "keychain-key":
			override.KeychainKey = flagKeychainKey
		case "log-level":
			override.LogLevel = flagLogLevel
		case "config":
			override.JSONFilePath = flagConfigFile
		}
	})

	if !changed {
		return nil
	}
	return override
}

// Execute runs the keychainctl command tree.
func Execute() error {
	return rootCmd.Execute()
}

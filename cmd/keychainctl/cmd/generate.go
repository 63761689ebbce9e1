// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ArmCyber contributors

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ArmCyber/go-keychain/internal/keychain"
)

func init() {
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a fresh keychain and print its key material",
	Long: `generate creates a new keychain with fresh cryptographic material and
prints its KeychainKey (shareable with a writer that should never be able
to decrypt) and MasterKey (the secret that unlocks it).

This is a demonstration command: printing a MasterKey to a terminal is
never appropriate for production secrets.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		kc, err := keychain.Generate(nil)
		if err != nil {
			return fmt.Errorf("generating keychain: %w", err)
		}
		defer kc.Close()

		keychainKey, err := kc.GetKeychainKey()
		if err != nil {
			return fmt.Errorf("reading keychain key: %w", err)
		}

		masterKey, err := kc.GetMasterKey()
		if err != nil {
			return fmt.Errorf("reading master key: %w", err)
		}

		log.Info().Str("uuid", kc.GetUUID()).Msg("generated keychain")
		fmt.Printf("uuid:         %s\n", kc.GetUUID())
		fmt.Printf("keychain-key: %s\n", keychainKey)
		fmt.Printf("master-key:   %s\n", masterKey)
		return nil
	},
}

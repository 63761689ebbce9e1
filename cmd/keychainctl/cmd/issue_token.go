// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ArmCyber contributors

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ArmCyber/go-keychain/internal/keychain"
)

var issueTokenMasterKey string

func init() {
	issueTokenCmd.Flags().StringVar(&issueTokenMasterKey, "master-key", "", "unlock with the base64 pair secret key before issuing")
	_ = issueTokenCmd.MarkFlagRequired("master-key")
	rootCmd.AddCommand(issueTokenCmd)
}

var issueTokenCmd = &cobra.Command{
	Use:   "issue-token",
	Short: "Mint a fresh password and recovery token for the keychain",
	Long: `issue-token adopts and unlocks the keychain identified by
--keychain-key and --master-key, then mints a new high-entropy password
and a GeneralToken that 'decrypt --password --unlock-token' (or
internal/keychain.Keychain.Unlock directly) can later use to recover the
same pair secret.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		if appConfig.KeychainKey == "" {
			return fmt.Errorf("--keychain-key (or KEYCHAIN_KEY) is required")
		}

		kc, err := keychain.Adopt(appConfig.KeychainKey, nil)
		if err != nil {
			return fmt.Errorf("adopting keychain: %w", err)
		}
		defer kc.Close()

		if err := kc.UnlockUsingMasterKey(issueTokenMasterKey); err != nil {
			return fmt.Errorf("unlocking with master key: %w", err)
		}

		password, token, err := kc.GenerateKeychainPasswordAndToken()
		if err != nil {
			return fmt.Errorf("issuing token: %w", err)
		}

		log.Info().Str("uuid", kc.GetUUID()).Msg("issued keychain password and token")
		fmt.Printf("password: %s\n", password)
		fmt.Printf("token:    %s\n", token)
		return nil
	},
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ArmCyber contributors

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ArmCyber/go-keychain/internal/keychain"
)

var (
	decryptMasterKey   string
	decryptPassword    string
	decryptUnlockToken string
)

func init() {
	decryptCmd.Flags().StringVar(&decryptMasterKey, "master-key", "", "unlock directly with the base64 pair secret key")
	decryptCmd.Flags().StringVar(&decryptPassword, "password", "", "unlock with a password previously issued by 'issue-token'")
	decryptCmd.Flags().StringVar(&decryptUnlockToken, "unlock-token", "", "the GeneralToken paired with --password")
	rootCmd.AddCommand(decryptCmd)
}

var decryptCmd = &cobra.Command{
	Use:   "decrypt <token>",
	Short: "Unlock the keychain and decrypt a credential token",
	Args:  cobra.ExactArgs(1),
	Long: `decrypt adopts the keychain identified by --keychain-key, unlocks it
with either --master-key or the --password/--unlock-token pair from a
prior 'issue-token' call, and decrypts token into a string.`,
	RunE: func(_ *cobra.Command, args []string) error {
		if appConfig.KeychainKey == "" {
			return fmt.Errorf("--keychain-key (or KEYCHAIN_KEY) is required")
		}

		kc, err := keychain.Adopt(appConfig.KeychainKey, nil)
		if err != nil {
			return fmt.Errorf("adopting keychain: %w", err)
		}
		defer kc.Close()

		switch {
		case decryptMasterKey != "":
			if err := kc.UnlockUsingMasterKey(decryptMasterKey); err != nil {
				return fmt.Errorf("unlocking with master key: %w", err)
			}
		case decryptPassword != "" && decryptUnlockToken != "":
			if err := kc.Unlock(decryptPassword, decryptUnlockToken); err != nil {
				return fmt.Errorf("unlocking with password: %w", err)
			}
		default:
			return fmt.Errorf("either --master-key or both --password and --unlock-token are required")
		}

		value, err := keychain.DecryptCredential[string](kc, args[0])
		if err != nil {
			return fmt.Errorf("decrypting credential: %w", err)
		}

		log.Info().Str("uuid", kc.GetUUID()).Msg("decrypted credential")
		fmt.Println(value)
		return nil
	},
}

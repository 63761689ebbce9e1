// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ArmCyber contributors

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ArmCyber/go-keychain/internal/keychain"
)

func init() {
	rootCmd.AddCommand(encryptCmd)
}

var encryptCmd = &cobra.Command{
	Use:   "encrypt <value>",
	Short: "Encrypt a value as a credential under the adopted keychain",
	Args:  cobra.ExactArgs(1),
	Long: `encrypt adopts the keychain identified by --keychain-key (or the
KEYCHAIN_KEY environment variable) and seals value under it. No unlock is
required: encrypting a credential is the write path a Locked keychain must
still support.`,
	RunE: func(_ *cobra.Command, args []string) error {
		if appConfig.KeychainKey == "" {
			return fmt.Errorf("--keychain-key (or KEYCHAIN_KEY) is required")
		}

		kc, err := keychain.Adopt(appConfig.KeychainKey, nil)
		if err != nil {
			return fmt.Errorf("adopting keychain: %w", err)
		}
		defer kc.Close()

		token, err := kc.EncryptCredential(args[0])
		if err != nil {
			return fmt.Errorf("encrypting credential: %w", err)
		}

		log.Info().Str("uuid", kc.GetUUID()).Msg("encrypted credential")
		fmt.Println(token)
		return nil
	},
}

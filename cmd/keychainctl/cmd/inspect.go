// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ArmCyber contributors

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ArmCyber/go-keychain/internal/keychain"
)

var inspectMasterKey string

func init() {
	inspectCmd.Flags().StringVar(&inspectMasterKey, "master-key", "", "optionally unlock before inspecting")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print identity and lock-state information for a keychain",
	Long: `inspect adopts the keychain identified by --keychain-key and prints
its UUID and lock state. If --master-key is also supplied, it unlocks
first. GetKeychainKey and GetMasterKey are only exportable from a keychain
that was itself produced by 'generate' in the same process — an adopted
keychain, even once unlocked, can never re-export its own write key or
master key, so both are reported as forbidden here by design.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		if appConfig.KeychainKey == "" {
			return fmt.Errorf("--keychain-key (or KEYCHAIN_KEY) is required")
		}

		kc, err := keychain.Adopt(appConfig.KeychainKey, nil)
		if err != nil {
			return fmt.Errorf("adopting keychain: %w", err)
		}
		defer kc.Close()

		if inspectMasterKey != "" {
			if err := kc.UnlockUsingMasterKey(inspectMasterKey); err != nil {
				return fmt.Errorf("unlocking with master key: %w", err)
			}
		}

		fmt.Printf("uuid:      %s\n", kc.GetUUID())
		fmt.Printf("unlocked:  %t\n", kc.IsUnlocked())

		if _, err := kc.GetKeychainKey(); errors.Is(err, keychain.ErrKeyAccessForbidden) {
			fmt.Println("keychain-key: forbidden (not the originating keychain)")
		}
		if _, err := kc.GetMasterKey(); errors.Is(err, keychain.ErrKeyAccessForbidden) {
			fmt.Println("master-key:   forbidden (not the originating keychain)")
		}

		return nil
	},
}

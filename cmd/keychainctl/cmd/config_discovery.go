// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ArmCyber contributors

package cmd

import (
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// discoverConfigFile looks for a keychainctl.json file in the current
// directory, the user's home directory, and /etc/keychainctl, in that
// order, and returns the first one viper finds. It returns "" if none
// exists — that is not an error, since a JSON config file is optional.
//
// This is discovery only: the file itself is parsed by
// [github.com/ArmCyber/go-keychain/internal/config], not by viper, since
// that package's env/flags/JSON merge already matches AppConfig's shape.
func discoverConfigFile() string {
	v := viper.New()
	v.SetConfigName("keychainctl")
	v.SetConfigType("json")
	v.AddConfigPath(".")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}
	v.AddConfigPath("/etc/keychainctl")

	if err := v.ReadInConfig(); err != nil {
		return ""
	}
	return v.ConfigFileUsed()
}

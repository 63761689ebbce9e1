// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ArmCyber contributors

package main

import (
	"fmt"
	"os"

	"github.com/ArmCyber/go-keychain/cmd/keychainctl/cmd"
)

var (
	buildVersion string
	buildCommit  string
)

func main() {
	printBuildInfo()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "keychainctl: %v\n", err)
		os.Exit(1)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "dev"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}
	fmt.Fprintf(os.Stderr, "keychainctl %s (%s)\n", buildVersion, buildCommit)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ArmCyber contributors

package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// parseJSON opens the JSON file at jsonFilePath, decodes it into an
// [AppConfig], and returns it. JSONFilePath is left empty in the returned
// config so the path is not re-processed during subsequent merge steps.
//
// Returns a wrapped error if the file cannot be opened or its contents
// cannot be decoded as valid JSON.
func parseJSON(jsonFilePath string) (*AppConfig, error) {
	f, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer f.Close()

	var cfg AppConfig
	if err := json.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}
	cfg.JSONFilePath = ""

	return &cfg, nil
}

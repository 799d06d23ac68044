package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Config captures default parse/write behavior for the CLI, so repeated
// runs don't need the same flags every time.
// Lenient: collect cue errors instead of stopping at the first one.
// Meta: accept "key: value" header lines after the WEBVTT signature.
// OverwriteExisting: let derived output paths replace existing files.
type Config struct {
	LoadedFromFile    bool `json:"loadedFromFile"`
	Lenient           bool `json:"lenient"`
	Meta              bool `json:"meta"`
	OverwriteExisting bool `json:"overwriteExisting"`
}

// LoadDefaultOrEmpty returns the zero config or loads from a local
// config.json file.
func LoadDefaultOrEmpty() Config {
	data, err := os.ReadFile("config.json")
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintln(os.Stderr, "Error reading config:", err)
		}
		return Config{}
	}
	var conf Config
	err = json.Unmarshal(data, &conf)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error unmarshalling config:", err)
		return Config{}
	}
	conf.LoadedFromFile = true
	return conf
}

func (c *Config) SaveToBackupFile(jsonData []byte) error {
	err := os.WriteFile("config.backup.json", jsonData, 0644)
	if err != nil {
		return fmt.Errorf("save config backup: %w", err)
	}
	return nil
}

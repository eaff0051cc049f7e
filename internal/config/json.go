package config

import (
	"encoding/json"
	"os"

	"github.com/azim218/RentMyWaifu/internal/flagx"
)

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. It is an intermediate DTO used only for reading JSON
// configuration files; after unmarshalling, its fields are copied into the
// runtime Config struct.
type JsonConfig struct {
	DataDir       string `json:"data_dir"`
	LegacyDigests bool   `json:"legacy_digests"`
	SupportRecent int    `json:"support_recent"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The JSON file path is taken from the -c or -config command-line flags.
// If neither is set, no JSON file is loaded. The DTO is pre-filled with the
// current Config values so keys missing from the file keep their defaults.
// If the file cannot be read or contains invalid JSON, the function panics.
func parseJson(config *Config) {

	// try flags
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{
		DataDir:       config.DataDir,
		LegacyDigests: config.LegacyDigests,
		SupportRecent: config.SupportRecent,
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	config.DataDir = c.DataDir
	config.LegacyDigests = c.LegacyDigests
	config.SupportRecent = c.SupportRecent
}

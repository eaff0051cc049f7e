// Package config handles configuration for the application, including
// defaults, JSON overlay, and command-line flags.
package config

// Config holds runtime settings for RentMyWaifu.
//
// Fields:
//   - DataDir: directory holding the three JSON documents.
//   - LegacyDigests: keep MD5 password digests instead of re-hashing to
//     bcrypt on login. Only for installs sharing users.json with the
//     original client.
//   - SupportRecent: how many support requests the admin panel shows.
type Config struct {
	DataDir       string
	LegacyDigests bool
	SupportRecent int
}

// LoadDefaults populates Config with the defaults matching the original
// application's behavior (documents next to the binary, five recent
// support requests).
func (c *Config) LoadDefaults() {
	c.DataDir = "."
	c.LegacyDigests = false
	c.SupportRecent = 5
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

package config

import (
	"flag"
	"os"

	"github.com/azim218/RentMyWaifu/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   data directory holding the JSON documents
//	-l          keep legacy MD5 password digests (no re-hash on login)
//	-n int      number of recent support requests shown to admins
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other packages (notably the
// test runner's own flags).
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-l", "-n"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.DataDir, "d", config.DataDir, "data directory")
	fs.BoolVar(&config.LegacyDigests, "l", config.LegacyDigests, "keep legacy password digests")
	fs.IntVar(&config.SupportRecent, "n", config.SupportRecent, "recent support requests shown")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}

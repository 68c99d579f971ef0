package config

import (
	"flag"
	"os"
	"time"

	"github.com/akorlov/mapmark/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-s string   base URL of the backend server (default from Config)
//	-i int      renewal interval in minutes (default from Config)
//	-p string   path to the local session state database
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-i", "-p"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "s", cfg.ServerURL, "base URL to access server")
	renewalInterval := fs.Int("i", int(cfg.RenewalInterval.Minutes()), "token renewal interval (in minutes)")
	fs.StringVar(&cfg.StatePath, "p", cfg.StatePath, "path to local session state database")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RenewalInterval = time.Duration(*renewalInterval) * time.Minute
}

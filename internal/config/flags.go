package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmarques/skilltrack/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-f string   path of the JSON data file (default from Config)
//	-t int      HTTP timeout in seconds (default from Config)
//	-n int      headline limit (default from Config)
//
// The function filters os.Args to only the flags it knows about, using
// flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-f", "-t", "-n"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DataFilePath, "f", cfg.DataFilePath, "path of the JSON data file")
	httpTimeout := fs.Int("t", int(cfg.HTTPTimeout.Seconds()), "HTTP timeout for feed requests (in seconds)")
	fs.IntVar(&cfg.HeadlineLimit, "n", cfg.HeadlineLimit, "number of headlines to fetch")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.HTTPTimeout = time.Duration(*httpTimeout) * time.Second
}

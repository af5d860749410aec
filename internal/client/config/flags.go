package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/stackguard/internal/flagx"
)

var configFlags = []string{"-d", "-l", "-lang", "-w"}

// parseFlags populates Config fields from command-line flags.
//
//	-d string   database file path
//	-l string   log level
//	-lang string message language
//	-w int      submit delay in milliseconds
//
// Only the flags above are read from os.Args (see flagx.FilterArgs), so the
// command tree can use the remaining arguments.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], configFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "database file path")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.Lang, "lang", cfg.Lang, "message language (en, de)")
	delay := fs.Int("w", int(cfg.SubmitDelay.Milliseconds()), "submit delay (in milliseconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.SubmitDelay = time.Duration(*delay) * time.Millisecond
}

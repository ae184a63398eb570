package config

import (
	"flag"
	"os"

	"github.com/mvkeep/mediavault/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-b string   store backend: file | sqlite | redis | memory
//	-s string   store path (file or sqlite database)
//	-r string   redis address (host:port)
//
// The function filters os.Args to only the flags it knows about, using
// flagx.FilterArgs, to avoid interference with the JSON-path flags.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-b", "-s", "-r"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.StoreBackend, "b", cfg.StoreBackend, "store backend (file|sqlite|redis|memory)")
	fs.StringVar(&cfg.StorePath, "s", cfg.StorePath, "path to the store file or database")
	fs.StringVar(&cfg.RedisAddr, "r", cfg.RedisAddr, "redis address (host:port)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}

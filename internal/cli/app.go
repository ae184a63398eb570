// Package cli is the interactive view layer of the media vault. It owns all
// terminal I/O and calls into the session manager and vault through their
// public operations; everything it prints is a transient user-facing message.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/mvkeep/mediavault/internal/config"
	"github.com/mvkeep/mediavault/internal/ingest"
	"github.com/mvkeep/mediavault/internal/logging"
	"github.com/mvkeep/mediavault/internal/session"
	"github.com/mvkeep/mediavault/internal/vault"
)

type App struct {
	config   *config.Config
	sessions *session.Manager
	vault    *vault.Vault
	pipeline *ingest.Pipeline
	log      logging.Logger
	reader   *bufio.Reader
}

// NewApp wires the view layer to an already-constructed session manager and
// vault.
func NewApp(cfg *config.Config, sessions *session.Manager, v *vault.Vault, log logging.Logger) *App {
	return &App{
		config:   cfg,
		sessions: sessions,
		vault:    v,
		pipeline: ingest.NewPipeline(cfg.MaxFileSize),
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
	}
}

// Run starts the REPL and blocks until the user exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	printlnFn("Media Vault CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	_, ok := a.sessions.Current()
	return ok
}

func (a *App) getStatus() string {
	if u, ok := a.sessions.Current(); ok {
		return "(" + u.Username + ")"
	}
	return ""
}

package logging

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup points the global zerolog logger at punchcard.log inside dir.
// The TUI owns the terminal, so diagnostics never go to stdout or stderr.
func Setup(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	f, err := os.OpenFile(filepath.Join(dir, "punchcard.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return nil
}

package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New creates a zerolog logger that writes human-readable output to the
// terminal and appends the same events to the log file at path. The returned
// closer flushes and closes the file handle.
func New(level, path string) (*zerolog.Logger, func(), error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}

	console := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	logger := zerolog.New(io.MultiWriter(console, file)).
		Level(lvl).
		With().Timestamp().Logger()

	closer := func() { _ = file.Close() }
	return &logger, closer, nil
}

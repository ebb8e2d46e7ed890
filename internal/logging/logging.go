// Package logging configures the process logger. The terminal belongs to
// the renderer, so logs go to a file or nowhere.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/san-kum/glyphrain/internal/config"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup builds a logger from cfg. The returned closer releases the log
// file, if one was opened.
func Setup(cfg config.LogConfig) (*log.Logger, io.Closer, error) {
	logger := log.New()

	level := log.InfoLevel
	if cfg.Level != "" {
		l, err := log.ParseLevel(cfg.Level)
		if err != nil {
			return nil, nil, errors.Wrap(err, "log level")
		}
		level = l
	}
	logger.SetLevel(level)

	if cfg.Format == "json" {
		logger.SetFormatter(&log.JSONFormatter{})
	} else {
		logger.SetFormatter(&log.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	if cfg.File == "" {
		logger.SetOutput(io.Discard)
		return logger, nopCloser{}, nil
	}

	if dir := filepath.Dir(cfg.File); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, nil, errors.Wrapf(err, "create log dir %s", dir)
		}
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "open log file %s", cfg.File)
	}
	logger.SetOutput(f)
	return logger, f, nil
}

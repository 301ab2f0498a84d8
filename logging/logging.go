package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultDir is the log directory relative to the working directory
	DefaultDir = "logs"

	// FileName is the active log file inside the log directory
	FileName = "vi-snake.log"

	// MaxSize triggers rotation of the active log on startup
	MaxSize = 10 * 1024 * 1024
)

// Setup builds the session logger
// stdout belongs to the game screen, so output goes to dir/FileName when debug is set
// and is discarded otherwise. The returned closer is nil when nothing was opened
func Setup(dir string, debug bool) (*logrus.Logger, io.Closer, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})

	if !debug {
		logger.SetOutput(io.Discard)
		logger.SetLevel(logrus.PanicLevel)
		log.SetOutput(io.Discard)
		return logger, nil, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, errors.Wrap(err, "create log dir")
	}

	path := filepath.Join(dir, FileName)
	if err := rotate(path); err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open log file")
	}

	logger.SetOutput(f)
	logger.SetLevel(logrus.DebugLevel)
	// Stray stdlib log calls must not land on the game screen either
	log.SetOutput(f)
	return logger, f, nil
}

// rotate renames path with a timestamp suffix once it exceeds MaxSize
func rotate(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrap(err, "stat log file")
	}
	if info.Size() <= MaxSize {
		return nil
	}

	ext := filepath.Ext(path)
	base := path[:len(path)-len(ext)]
	rotated := fmt.Sprintf("%s-%s%s", base, time.Now().Format("20060102-150405"), ext)
	if err := os.Rename(path, rotated); err != nil {
		return errors.Wrap(err, "rotate log file")
	}
	return nil
}

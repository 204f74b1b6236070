package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
)

func NewLogger() *slog.Logger {
	var handler slog.Handler = slog.NewJSONHandler(os.Stderr, nil)
	if Development() {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level: slog.LevelDebug,
		})
	}
	return slog.New(handler)
}

func LogFile() (string, bool) {
	return os.LookupEnv(envPrefix + "LOG_FILE")
}

// AttachLogFile makes log write its entries to a size-rotated file as
// well when MINES_LOG_FILE is set. It reports whether a file was attached.
func AttachLogFile(log *logrus.Logger) (bool, error) {
	path, ok := LogFile()
	if !ok || path == "" {
		return false, nil
	}

	level := logrus.InfoLevel
	if Development() {
		level = logrus.DebugLevel
		log.SetLevel(logrus.DebugLevel)
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     7, // days
		Level:      level,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return false, fmt.Errorf("unable to create log file hook: %w", err)
	}
	log.AddHook(hook)
	return true, nil
}

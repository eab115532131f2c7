package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
)

const serviceName = "media-portal"

var logger = log.New()

func init() {
	logger.Out = resolveOutput(os.Getenv("ENV"), os.Getenv("LOG_TO_FILE") == "true")
	logger.Formatter = &log.JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
	}
	logger.SetLevel(resolveLevel(os.Getenv("LOG_LEVEL")))
}

// resolveOutput keeps stdout unless file logging is forced; a failed file open falls back to stdout.
func resolveOutput(env string, logToFile bool) io.Writer {
	if !logToFile {
		return os.Stdout
	}
	cwd, err := os.Getwd()
	if err != nil {
		log.Warnf("Failed get current working directory: %v, falling back to stdout", err)
		return os.Stdout
	}
	logsDir := filepath.Join(cwd, "logs")
	if mkErr := os.MkdirAll(logsDir, 0o755); mkErr != nil {
		log.Warnf("Failed to create logs directory %s: %v, falling back to stdout", logsDir, mkErr)
		return os.Stdout
	}
	filePath := filepath.Join(logsDir, fmt.Sprintf("%s%s.log", time.Now().Format("2006-01-02"), env))
	f, openErr := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if openErr != nil {
		log.Warnf("Failed to open log file %s: %v, falling back to stdout", filePath, openErr)
		return os.Stdout
	}
	return f
}

func resolveLevel(raw string) log.Level {
	if raw == "" {
		return log.DebugLevel
	}
	level, err := log.ParseLevel(raw)
	if err != nil {
		return log.DebugLevel
	}
	return level
}

// SetOutput redirects log output, mainly for tests.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// GetLogger returns an entry annotated with the caller's function, file and line.
func GetLogger() *log.Entry {
	function, file, line, _ := runtime.Caller(1)

	name := "unknown"
	if functionObject := runtime.FuncForPC(function); functionObject != nil {
		name = functionObject.Name()
	}
	return logger.WithFields(log.Fields{
		"service":  serviceName,
		"function": name,
		"file":     file,
		"line":     line,
	})
}

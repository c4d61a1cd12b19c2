package ui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// VerboseEnvVar enables verbose output when set to 1 or true
const VerboseEnvVar = "UVM_VERBOSE"

// LogFileName is the rolling debug log inside the log directory
const LogFileName = "uvm.log"

var (
	logMu       sync.Mutex
	logger      = newDiscardLogger()
	verboseMode bool
	logFile     io.Closer
)

func newDiscardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.DebugLevel)
	return l
}

// InitLogging sends the debug log to a rolling file in dir. The file keeps
// ten backups of at most ten megabytes each.
func InitLogging(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	rolling := &lumberjack.Logger{
		Filename:   filepath.Join(dir, LogFileName),
		MaxSize:    10,
		MaxBackups: 10,
	}

	logMu.Lock()
	defer logMu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
	}
	logFile = rolling

	l := logrus.New()
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})
	l.SetOutput(rolling)
	logger = l
	return nil
}

// CloseLogging flushes and closes the log file
func CloseLogging() {
	logMu.Lock()
	defer logMu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	logger = newDiscardLogger()
}

// Logger returns the shared logrus logger
func Logger() *logrus.Logger {
	logMu.Lock()
	defer logMu.Unlock()
	return logger
}

// SetVerbose toggles mirroring of debug messages to stderr
func SetVerbose(verbose bool) {
	logMu.Lock()
	defer logMu.Unlock()
	verboseMode = verbose
}

// IsVerbose reports whether verbose mode is on
func IsVerbose() bool {
	logMu.Lock()
	defer logMu.Unlock()
	return verboseMode
}

// CheckVerboseEnv turns verbose mode on when UVM_VERBOSE asks for it
func CheckVerboseEnv() {
	switch strings.ToLower(os.Getenv(VerboseEnvVar)) {
	case "1", "true":
		SetVerbose(true)
	}
}

// Debug records a message in the log file, and on stderr in verbose mode
func Debug(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	Logger().Debug(message)
	if IsVerbose() {
		_, _ = debugColor.Fprintf(errOut, "%s %s\n", debugSymbol, message)
	}
}

// Debugf is an alias of Debug
func Debugf(format string, args ...interface{}) {
	Debug(format, args...)
}

// WithFields returns a log entry carrying structured fields
func WithFields(fields logrus.Fields) *logrus.Entry {
	return Logger().WithFields(fields)
}

func logMessage(kind, message string) {
	Logger().WithField("kind", kind).Info(message)
}

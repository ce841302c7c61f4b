// cmd/coysfeed/logger.go
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// LogLevel represents the severity of a log message
type LogLevel int

const (
	LogDebug LogLevel = iota
	LogInfo
	LogWarning
	LogError
)

var logLevelStrings = map[LogLevel]string{
	LogDebug:   "DEBUG",
	LogInfo:    "INFO",
	LogWarning: "WARN",
	LogError:   "ERROR",
}

// AppLogger handles application logging to stdout and, when
// initialized with a path, a log file as well.
type AppLogger struct {
	logger *log.Logger
	file   *os.File
	level  LogLevel
	mutex  sync.Mutex
}

var (
	loggerMutex    sync.Mutex
	loggerInstance *AppLogger
)

// InitLogger points the global logger at a log file in addition to
// stdout.
func InitLogger(logPath string, level LogLevel) error {
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %v", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %v", err)
	}

	loggerMutex.Lock()
	defer loggerMutex.Unlock()
	loggerInstance = &AppLogger{
		logger: log.New(io.MultiWriter(file, os.Stdout), "", log.LstdFlags),
		file:   file,
		level:  level,
	}
	return nil
}

// Logger returns the global logger, creating a stdout-only one on
// first use so early startup and tests can log without setup.
func Logger() *AppLogger {
	loggerMutex.Lock()
	defer loggerMutex.Unlock()

	if loggerInstance == nil {
		loggerInstance = &AppLogger{
			logger: log.New(os.Stdout, "", log.LstdFlags),
			level:  LogInfo,
		}
	}
	return loggerInstance
}

func (l *AppLogger) log(level LogLevel, format string, args ...interface{}) {
	if level < l.level {
		return
	}

	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.logger.Printf("[%s] %s", logLevelStrings[level], fmt.Sprintf(format, args...))
}

// Debug logs a debug message
func (l *AppLogger) Debug(format string, args ...interface{}) {
	l.log(LogDebug, format, args...)
}

// Info logs an info message
func (l *AppLogger) Info(format string, args ...interface{}) {
	l.log(LogInfo, format, args...)
}

// Warning logs a warning message
func (l *AppLogger) Warning(format string, args ...interface{}) {
	l.log(LogWarning, format, args...)
}

// Error logs an error message
func (l *AppLogger) Error(format string, args ...interface{}) {
	l.log(LogError, format, args...)
}

// Close closes the underlying log file if one is open.
func (l *AppLogger) Close() error {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

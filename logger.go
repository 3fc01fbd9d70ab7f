package shelf

import (
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"
)

// Field represents a structured logging field.
type Field struct {
	Key   string
	Value interface{}
}

// Logger is the interface for logging in shelf.
// Users can provide custom logger implementations.
type Logger interface {
	// Debug logs a debug message with optional fields
	Debug(msg string, fields ...Field)

	// Info logs an info message with optional fields
	Info(msg string, fields ...Field)

	// Warn logs a warning message with optional fields
	Warn(msg string, fields ...Field)

	// Error logs an error message with optional fields
	Error(msg string, fields ...Field)
}

// defaultLogger is the default logger implementation using standard library log.
type defaultLogger struct {
	logger *log.Logger
}

// NewDefaultLogger creates a new default logger that writes to stderr.
func NewDefaultLogger() Logger {
	return &defaultLogger{
		logger: log.New(os.Stderr, "[shelf] ", log.LstdFlags),
	}
}

func (l *defaultLogger) Debug(msg string, fields ...Field) {
	l.logger.Printf("[DEBUG] %s %s", msg, formatFields(fields))
}

func (l *defaultLogger) Info(msg string, fields ...Field) {
	l.logger.Printf("[INFO] %s %s", msg, formatFields(fields))
}

func (l *defaultLogger) Warn(msg string, fields ...Field) {
	l.logger.Printf("[WARN] %s %s", msg, formatFields(fields))
}

func (l *defaultLogger) Error(msg string, fields ...Field) {
	l.logger.Printf("[ERROR] %s %s", msg, formatFields(fields))
}

// noopLogger is a logger that does nothing. Useful for testing.
type noopLogger struct{}

// NewNoopLogger creates a logger that discards all log messages.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

func (l *noopLogger) Debug(msg string, fields ...Field) {}
func (l *noopLogger) Info(msg string, fields ...Field)  {}
func (l *noopLogger) Warn(msg string, fields ...Field)  {}
func (l *noopLogger) Error(msg string, fields ...Field) {}

// zapLogger adapts a zap.Logger to the Logger interface so hosts already on
// zap can route shelf's logs through their own pipeline.
type zapLogger struct {
	logger *zap.Logger
}

// NewZapLogger wraps a zap.Logger as a shelf Logger.
func NewZapLogger(logger *zap.Logger) Logger {
	return &zapLogger{logger: logger}
}

func (l *zapLogger) Debug(msg string, fields ...Field) {
	l.logger.Debug(msg, zapFields(fields)...)
}

func (l *zapLogger) Info(msg string, fields ...Field) {
	l.logger.Info(msg, zapFields(fields)...)
}

func (l *zapLogger) Warn(msg string, fields ...Field) {
	l.logger.Warn(msg, zapFields(fields)...)
}

func (l *zapLogger) Error(msg string, fields ...Field) {
	l.logger.Error(msg, zapFields(fields)...)
}

func zapFields(fields []Field) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		out = append(out, zap.Any(f.Key, f.Value))
	}
	return out
}

// formatFields formats fields for logging.
func formatFields(fields []Field) string {
	if len(fields) == 0 {
		return ""
	}

	result := "{"
	for i, field := range fields {
		if i > 0 {
			result += ", "
		}
		result += fmt.Sprintf("%s: %v", field.Key, field.Value)
	}
	result += "}"

	return result
}

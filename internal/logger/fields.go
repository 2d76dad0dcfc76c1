package logger

import (
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	// FieldStorage is the structured log field key for the container kind (array or list).
	FieldStorage = "storage"
	// FieldAlgorithm is the structured log field key for the sort algorithm.
	FieldAlgorithm = "algorithm"
	// FieldElapsed is the structured log field key for operation durations in microseconds.
	FieldElapsed = "elapsed_us"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields safely attaches the provided fields to the logger.
// If the logger is nil or no fields are supplied, the input logger is returned
// unchanged, defaulting to a no-op logger when nil.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// CommonFields returns the storage and algorithm fields. Empty values are
// left out.
func CommonFields(storage, algorithm string) []zap.Field {
	return StringFields(
		StringField{Key: FieldStorage, Value: storage},
		StringField{Key: FieldAlgorithm, Value: algorithm},
	)
}

// WithCommonFields attaches the storage and algorithm fields to the logger.
func WithCommonFields(logger *zap.Logger, storage, algorithm string) *zap.Logger {
	return WithFields(logger, CommonFields(storage, algorithm)...)
}

// Elapsed reports the time since start in microseconds.
func Elapsed(start time.Time) zap.Field {
	return zap.Int64(FieldElapsed, time.Since(start).Microseconds())
}

package contracts

// Field is one structured logging key/value pair.
type Field struct {
	Key   string
	Value any
}

// F builds a structured logging field.
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Logger provides leveled, structured logging. The default implementation
// (internal/logger) is backed by zap; callers may supply their own with
// WithLogger.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

package logger

import "context"

// Logger is a leveled printf-style logger. ctx is accepted so call sites
// stay uniform; it is not inspected.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...interface{})
	Info(ctx context.Context, msg string, args ...interface{})
	Warn(ctx context.Context, msg string, args ...interface{})
	Error(ctx context.Context, msg string, args ...interface{})
}

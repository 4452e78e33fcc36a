package logger

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

var levels = map[string]int{
	"debug": 0,
	"info":  1,
	"warn":  2,
	"error": 3,
}

type implLogger struct {
	logger *log.Logger
	out    io.Writer
	level  string
	json   bool
}

// New creates a Logger writing to w. format is "text" or "json"; anything
// else falls back to text.
func New(level, format string, w io.Writer) Logger {
	l := &implLogger{
		out:   w,
		level: strings.ToLower(level),
		json:  strings.EqualFold(format, "json"),
	}
	if !l.json {
		l.logger = log.New(w, "", log.LstdFlags)
	}
	return l
}

// Discard returns a Logger that drops everything.
func Discard() Logger {
	return New("error", "text", io.Discard)
}

// OpenFile opens path for appending, creating parent directories as needed.
// Caller must close the file.
func OpenFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

func (l *implLogger) shouldLog(level string) bool {
	currentLevel, ok := levels[l.level]
	if !ok {
		currentLevel = 1 // default to info
	}

	targetLevel, ok := levels[level]
	if !ok {
		return true
	}

	return targetLevel >= currentLevel
}

func (l *implLogger) write(level, msg string, args []interface{}) {
	if !l.shouldLog(level) {
		return
	}
	text := msg
	if len(args) > 0 {
		text = fmt.Sprintf(msg, args...)
	}

	if !l.json {
		l.logger.Printf("[%s] %s", strings.ToUpper(level), text)
		return
	}

	line, err := json.Marshal(struct {
		Time  string `json:"time"`
		Level string `json:"level"`
		Msg   string `json:"msg"`
	}{
		Time:  time.Now().Format(time.RFC3339),
		Level: level,
		Msg:   text,
	})
	if err != nil {
		return
	}
	l.out.Write(append(line, '\n'))
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.write("debug", msg, args)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.write("info", msg, args)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.write("warn", msg, args)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.write("error", msg, args)
}

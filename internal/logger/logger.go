package logger

import (
	"BlueprintDock/internal/console"
	"BlueprintDock/internal/constants"
	"BlueprintDock/internal/paths"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Helper to resolve message from any type to string
func resolveMsg(msg any) string {
	switch v := msg.(type) {
	case string:
		return v
	case []string:
		return strings.Join(v, "\n")
	case []any:
		var parts []string
		for _, item := range v {
			parts = append(parts, resolveMsg(item))
		}
		return strings.Join(parts, "\n")
	default:
		return fmt.Sprint(v)
	}
}

// Internal helper to format, tag-parse and emit a message, splitting
// multi-line messages into one record per line.
func log(ctx context.Context, level slog.Level, msg any, args ...any) {
	h := slog.Default().Handler()
	if !h.Enabled(ctx, level) {
		return
	}

	msgStr := resolveMsg(msg)
	if len(args) > 0 && strings.Contains(msgStr, "%") {
		msgStr = fmt.Sprintf(msgStr, args...)
		args = nil // Reset args as they are now consumed
	}
	msgStr = console.Parse(msgStr)

	now := time.Now()
	if !strings.Contains(msgStr, "\n") {
		r := slog.NewRecord(now, level, msgStr+console.CodeReset, 0)
		r.Add(args...)
		_ = h.Handle(ctx, r)
		return
	}

	for i, line := range strings.Split(msgStr, "\n") {
		// Append reset to every line to prevent color bleed to next timestamp
		r := slog.NewRecord(now, level, line+console.CodeReset, 0)
		if i == 0 {
			r.Add(args...)
		}
		_ = h.Handle(ctx, r)
	}
}

// Custom log levels matching the legacy maintenance scripts
const (
	LevelTrace  = slog.Level(-8)
	LevelDebug  = slog.LevelDebug
	LevelInfo   = slog.Level(-2)
	LevelNotice = slog.LevelInfo
	LevelWarn   = slog.LevelWarn
	LevelError  = slog.LevelError
	LevelFatal  = slog.Level(12)
)

// LevelVar allows dynamic changing of the log level
var LevelVar = new(slog.LevelVar)
var FileLevelVar = new(slog.LevelVar)

var logFile *os.File

func init() {
	LevelVar.Set(LevelNotice)
	FileLevelVar.Set(LevelInfo)
}

func SetLevel(level slog.Level) {
	LevelVar.Set(level)
	// File level should be at least Info, or lower if Debug is requested
	if level < LevelInfo {
		FileLevelVar.Set(level)
	} else {
		FileLevelVar.Set(LevelInfo)
	}
}

func levelAttr(a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey {
		return a
	}
	level, ok := a.Value.Any().(slog.Level)
	if !ok {
		return a
	}
	switch level {
	case LevelTrace:
		a.Value = slog.StringValue("[TRACE ]  ")
	case LevelDebug:
		a.Value = slog.StringValue("[DEBUG ]  ")
	case LevelInfo:
		a.Value = slog.StringValue("[INFO  ]  ")
	case LevelNotice:
		a.Value = slog.StringValue("[NOTICE]  ")
	case LevelWarn:
		a.Value = slog.StringValue("[WARN  ]  ")
	case LevelError:
		a.Value = slog.StringValue("[ERROR ]  ")
	case LevelFatal:
		a.Value = slog.StringValue("[FATAL ]  ")
	default:
		a.Value = slog.StringValue("[" + level.String() + "]")
	}
	return a
}

// NewLogger builds the default logger: a colored console handler on stderr
// fanned out with a plain-text file handler under the state directory.
func NewLogger() *slog.Logger {
	isTTY := console.IsTTY()

	colorFor := map[slog.Level]string{}
	if isTTY {
		colorFor = map[slog.Level]string{
			LevelTrace:  console.CodeBlue,
			LevelDebug:  console.CodeBlue,
			LevelInfo:   console.CodeBlue,
			LevelNotice: console.CodeGreen,
			LevelWarn:   console.CodeYellow,
			LevelError:  console.CodeRed,
			LevelFatal:  console.CodeRedBg + console.CodeWhite,
		}
	}

	replaceAttrConsole := func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.LevelKey {
			level, ok := a.Value.Any().(slog.Level)
			a = levelAttr(a)
			if ok {
				if c, found := colorFor[level]; found {
					a.Value = slog.StringValue(c + strings.TrimRight(a.Value.String(), " ") + console.CodeReset + "  ")
				}
			}
		}
		return a
	}

	consoleHandler := tint.NewHandler(os.Stderr, &tint.Options{
		Level:       LevelVar,
		TimeFormat:  "2006-01-02 15:04:05",
		NoColor:     !isTTY,
		ReplaceAttr: replaceAttrConsole,
	})

	handlers := []slog.Handler{consoleHandler}

	logFilePath := filepath.Join(paths.GetStateDir(), constants.LogFileName)
	_ = os.MkdirAll(filepath.Dir(logFilePath), 0755)
	wFile, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err == nil {
		logFile = wFile
		replaceAttrFile := func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.MessageKey {
				a.Value = slog.StringValue(console.Strip(a.Value.String()))
			}
			return levelAttr(a)
		}
		handlers = append(handlers, tint.NewHandler(wFile, &tint.Options{
			Level:       FileLevelVar,
			TimeFormat:  "2006-01-02 15:04:05",
			NoColor:     true, // Important
			ReplaceAttr: replaceAttrFile,
		}))
	}

	return slog.New(&FanoutHandler{handlers: handlers})
}

// Cleanup flushes and closes the log file, if one was opened.
func Cleanup() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

// FanoutHandler broadcasts records to multiple handlers
type FanoutHandler struct {
	handlers []slog.Handler
}

func (h *FanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *FanoutHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, r.Level) {
			if err := handler.Handle(ctx, r); err != nil {
				errs = append(errs, err)
			}
		}
	}
	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}

func (h *FanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithAttrs(attrs)
	}
	return &FanoutHandler{handlers: newHandlers}
}

func (h *FanoutHandler) WithGroup(name string) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithGroup(name)
	}
	return &FanoutHandler{handlers: newHandlers}
}

// Global helpers for custom levels that don't satisfy standard slog methods
func Trace(ctx context.Context, msg any, args ...any) {
	log(ctx, LevelTrace, msg, args...)
}

func Debug(ctx context.Context, msg any, args ...any) {
	log(ctx, LevelDebug, msg, args...)
}

func Info(ctx context.Context, msg any, args ...any) {
	log(ctx, LevelInfo, msg, args...)
}

func Notice(ctx context.Context, msg any, args ...any) {
	log(ctx, LevelNotice, msg, args...)
}

func Warn(ctx context.Context, msg any, args ...any) {
	log(ctx, LevelWarn, msg, args...)
}

func Error(ctx context.Context, msg any, args ...any) {
	log(ctx, LevelError, msg, args...)
}

// Fatal logs a message at FatalLevel and panics with FatalError so the main
// run loop can recover, clean up and exit non-zero.
func Fatal(ctx context.Context, msg any, args ...any) {
	log(ctx, LevelFatal, msg, args...)
	panic(FatalError{})
}

// FatalError is a special error used to panic from Fatal logger calls
// This allows the main run loop to recover and perform cleanup before exiting
type FatalError struct{}

package testutils

import (
	"context"
	"log/slog"
	"strings"
	"sync"
)

// CaptureHandler is a slog.Handler that records every message it receives.
// Install it with slog.SetDefault(slog.New(h)) to assert on diagnostics.
type CaptureHandler struct {
	mu      sync.Mutex
	records []capturedRecord
}

type capturedRecord struct {
	Level   slog.Level
	Message string
}

func NewCaptureHandler() *CaptureHandler {
	return &CaptureHandler{}
}

func (h *CaptureHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return true
}

func (h *CaptureHandler) Handle(ctx context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, capturedRecord{Level: r.Level, Message: r.Message})
	return nil
}

func (h *CaptureHandler) WithAttrs(attrs []slog.Attr) slog.Handler { return h }
func (h *CaptureHandler) WithGroup(name string) slog.Handler       { return h }

// Messages returns all recorded messages, in order.
func (h *CaptureHandler) Messages() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.records))
	for i, r := range h.records {
		out[i] = r.Message
	}
	return out
}

// CountAtLeast returns how many recorded messages are at or above level.
func (h *CaptureHandler) CountAtLeast(level slog.Level) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, r := range h.records {
		if r.Level >= level {
			n++
		}
	}
	return n
}

// Contains reports whether any recorded message contains substr.
func (h *CaptureHandler) Contains(substr string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, r := range h.records {
		if strings.Contains(r.Message, substr) {
			return true
		}
	}
	return false
}

package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
)

type contextKey string

const contextKeyRequestID contextKey = "request_id"

var (
	mu     sync.Mutex
	output io.Writer = os.Stdout
	debug  bool
)

// SetOutput redirects all log lines to w.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// SetDebug turns Debug and Struct output on or off.
func SetDebug(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	debug = enabled
}

func DebugEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return debug
}

// WithRequestID adds request ID to context for logging
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, contextKeyRequestID, requestID)
}

// RequestID returns the request ID stored in ctx, or "".
func RequestID(ctx context.Context) string {
	if id, ok := ctx.Value(contextKeyRequestID).(string); ok {
		return id
	}
	return ""
}

func write(ctx context.Context, label string, format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	if id := RequestID(ctx); id != "" {
		msg = fmt.Sprintf("[req_id=%s] %s", id, msg)
	}
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(output, "%s %s\n", label, msg)
}

var (
	infoLabel  = color.New(color.FgWhite, color.BgGreen).SprintFunc()
	warnLabel  = color.New(color.FgWhite, color.BgYellow).SprintFunc()
	errorLabel = color.New(color.FgRed).SprintFunc()
	debugLabel = color.New(color.FgCyan).SprintFunc()
)

// Info log information
func Info(format string, a ...interface{}) {
	write(context.Background(), infoLabel("[INFO] "), format, a...)
}

// InfoWithContext logs information with the request ID carried by ctx
func InfoWithContext(ctx context.Context, format string, a ...interface{}) {
	write(ctx, infoLabel("[INFO] "), format, a...)
}

// Warn log warning
func Warn(format string, a ...interface{}) {
	write(context.Background(), warnLabel("[WARN] "), format, a...)
}

func WarnWithContext(ctx context.Context, format string, a ...interface{}) {
	write(ctx, warnLabel("[WARN] "), format, a...)
}

// Error log error
func Error(format string, a ...interface{}) {
	write(context.Background(), errorLabel("[Error]"), format, a...)
}

func ErrorWithContext(ctx context.Context, format string, a ...interface{}) {
	write(ctx, errorLabel("[Error]"), format, a...)
}

// Debug logs only when debug output is enabled
func Debug(format string, a ...interface{}) {
	if !DebugEnabled() {
		return
	}
	write(context.Background(), debugLabel("[DEBUG]"), format, a...)
}

// Struct dumps values in debug mode.
func Struct(label string, a ...interface{}) {
	if !DebugEnabled() {
		return
	}
	write(context.Background(), debugLabel("[DEBUG]"), "%s\n%s", label, spew.Sdump(a...))
}

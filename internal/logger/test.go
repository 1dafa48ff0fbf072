package logger

import (
	"fmt"
	"strings"
	"testing"

	"github.com/arloliu/prunecluster/types"
)

// TestLogger writes through testing.TB so log lines show up with the test that
// produced them.
type TestLogger struct {
	t testing.TB
}

var _ types.Logger = (*TestLogger)(nil)

// NewTest creates a logger writing to t.
//
// Parameters:
//   - t: Test or benchmark to log through
//
// Returns:
//   - *TestLogger: Logger using t.Log
//
// Example:
//
//	func TestOverlay(t *testing.T) {
//	    log := logger.NewTest(t)
//	    log.Debug("pass completed", "created", 3)
//	}
func NewTest(t testing.TB) *TestLogger {
	return &TestLogger{t: t}
}

func (l *TestLogger) Debug(msg string, keysAndValues ...any) {
	l.t.Helper()
	l.t.Log(Format("DEBUG", msg, keysAndValues))
}

func (l *TestLogger) Info(msg string, keysAndValues ...any) {
	l.t.Helper()
	l.t.Log(Format("INFO", msg, keysAndValues))
}

func (l *TestLogger) Warn(msg string, keysAndValues ...any) {
	l.t.Helper()
	l.t.Log(Format("WARN", msg, keysAndValues))
}

func (l *TestLogger) Error(msg string, keysAndValues ...any) {
	l.t.Helper()
	l.t.Log(Format("ERROR", msg, keysAndValues))
}

// Fatal logs the message and fails the test immediately.
func (l *TestLogger) Fatal(msg string, keysAndValues ...any) {
	l.t.Helper()
	l.t.Fatal(Format("FATAL", msg, keysAndValues))
}

// Format renders a log line as "LEVEL: msg k=v k=v".
func Format(level, msg string, keysAndValues []any) string {
	var b strings.Builder
	b.WriteString(level)
	b.WriteString(": ")
	b.WriteString(msg)

	for i := 0; i < len(keysAndValues); i += 2 {
		if i+1 < len(keysAndValues) {
			fmt.Fprintf(&b, " %v=%v", keysAndValues[i], keysAndValues[i+1])
		} else {
			fmt.Fprintf(&b, " %v=<missing>", keysAndValues[i])
		}
	}

	return b.String()
}

package testutils

import (
	"testing"

	"github.com/benoitkugler/cssflow/logger"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func AssertEqual(t *testing.T, got, exp interface{}) {
	t.Helper()
	if diff := cmp.Diff(exp, got); diff != "" {
		t.Fatalf("expected\n%v\n got \n%v\n(-exp +got)\n%s", exp, got, diff)
	}
}

// CapturedLogs stores the warnings emitted while it is active.
type CapturedLogs struct {
	logs     *observer.ObservedLogs
	previous *zap.SugaredLogger
}

// CaptureLogs redirects [logger.WarningLogger] until
// [CapturedLogs.Logs] or [CapturedLogs.AssertNoLogs] is called.
func CaptureLogs() *CapturedLogs {
	core, logs := observer.New(zap.DebugLevel)
	out := &CapturedLogs{logs: logs, previous: logger.WarningLogger}
	logger.WarningLogger = zap.New(core).Sugar()
	return out
}

// Logs restores the logger and returns the captured messages.
func (c *CapturedLogs) Logs() []string {
	logger.WarningLogger = c.previous
	var out []string
	for _, entry := range c.logs.All() {
		out = append(out, entry.Message)
	}
	return out
}

func (c *CapturedLogs) AssertNoLogs(t *testing.T) {
	t.Helper()
	if l := c.Logs(); len(l) != 0 {
		t.Fatalf("expected no logs, got (%d): %v", len(l), l)
	}
}

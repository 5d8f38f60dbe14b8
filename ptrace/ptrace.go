// Package ptrace gives the rewrite package a single, package-level
// logger, mirroring the teacher's
// sql.BaseSession.GetLogger() pattern (sql/base_session.go): a lazily
// initialized *logrus.Entry rather than a passed-around context
// value, since nothing in this core is session-scoped.
//
// This core has no execution engine and therefore nothing to trace a
// span across, so there is deliberately no opentracing integration
// here — see DESIGN.md for that call. Debug logging is a development
// aid, never a control-flow mechanism: every function in rewrite
// still behaves identically with logging disabled.
package ptrace

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	mu     sync.Mutex
	logger *logrus.Entry
)

// Logger returns the package-level logger, initializing it from
// logrus's standard logger on first use.
func Logger() *logrus.Entry {
	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return logger
}

// SetLogger overrides the package-level logger, e.g. to set a
// different formatter or level. Nothing in this module calls it.
func SetLogger(l *logrus.Entry) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// NodeTouched logs a Debug-level record of a node a rewrite has just
// acted on.
func NodeTouched(op string, pid int64, kind fmt.Stringer) {
	Logger().WithFields(logrus.Fields{"op": op, "pid": pid, "kind": kind.String()}).Debug("plan node touched")
}

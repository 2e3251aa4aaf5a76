package recordio

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var (
	nopLogger     = zap.NewNop()
	currentLogger atomic.Pointer[zap.Logger]
)

// SetLogger installs l as the destination for the package's debug events:
// format resolution, file open and create, and record counts. Nothing is
// logged above debug level. A nil logger turns logging off, which is also
// the default.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = nopLogger
	}
	currentLogger.Store(l.Named("recordio"))
}

func logger() *zap.Logger {
	if l := currentLogger.Load(); l != nil {
		return l
	}
	return nopLogger
}

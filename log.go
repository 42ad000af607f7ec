package orrery

import (
	"os"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
)

// newLogger builds a logfmt logger over a synchronized stdout writer,
// tagged with a static "component" key, the way the teacher's
// SCLogInit (spacecraft.go) builds a spacecraft-tagged logger. level
// is one of debug/info/notice/warning/critical; unrecognized values
// fall back to info.
func newLogger(component, minLevel string) log.Logger {
	l := log.NewLogfmtLogger(log.NewSyncWriter(os.Stdout))
	l = log.With(l, "component", component, "ts", log.DefaultTimestampUTC)
	return level.NewFilter(l, levelOption(minLevel))
}

// NewLogger is the exported entry point for callers outside this
// package (the cmd/orrery demo) that want a logger built the same way
// the driver builds its own.
func NewLogger(minLevel string) log.Logger {
	return newLogger("orrery", minLevel)
}

func levelOption(name string) level.Option {
	switch name {
	case "debug":
		return level.AllowDebug()
	case "warning":
		return level.AllowWarn()
	case "critical":
		return level.AllowError()
	default:
		return level.AllowInfo()
	}
}

// notice logs at the "notice" severity the teacher's own logger uses
// (mission.go), which go-kit/kit/log/level does not model natively:
// it is carried as a "level"="notice" key/value pair instead of a
// dedicated helper, same as the teacher does directly via .Log(...).
func notice(logger log.Logger, keyvals ...interface{}) {
	logger.Log(append([]interface{}{"level", "notice"}, keyvals...)...)
}

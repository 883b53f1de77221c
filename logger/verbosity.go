package logger

import "go.uber.org/zap/zapcore"

// Verbosity levels, as counted from repeated -v style settings
// (log.verbosity in configuration).
const (
	VerbosityUser  = 0 // warnings and errors only
	VerbosityInfo  = 1 // + table loads and reloads
	VerbosityDebug = 2 // + per-lookup misses and scoring detail
)

// VerbosityToLevel maps a verbosity count to a zap log level
//
// Mapping:
//
//	0 (none)  -> WarnLevel
//	1         -> InfoLevel
//	2+        -> DebugLevel
func VerbosityToLevel(verbosity int) zapcore.Level {
	switch {
	case verbosity <= VerbosityUser:
		return zapcore.WarnLevel
	case verbosity == VerbosityInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// LevelName returns a human-readable name for verbosity level
func LevelName(verbosity int) string {
	switch {
	case verbosity < VerbosityUser:
		return "Unknown"
	case verbosity == VerbosityUser:
		return "User"
	case verbosity == VerbosityInfo:
		return "Info"
	default:
		return "Debug"
	}
}

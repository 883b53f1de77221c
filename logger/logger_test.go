package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name       string
		jsonOutput bool
		wantErr    bool
	}{
		{
			name:       "JSON output mode",
			jsonOutput: true,
			wantErr:    false,
		},
		{
			name:       "Console output mode",
			jsonOutput: false,
			wantErr:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset global logger
			Logger = nil

			err := Initialize(tt.jsonOutput)
			if (err != nil) != tt.wantErr {
				t.Errorf("Initialize() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr {
				if Logger == nil {
					t.Error("Initialize() did not set global Logger")
				}
			}

			Cleanup()
		})
	}
}

func TestInitializeWithVerbosityEnablesDebug(t *testing.T) {
	if err := InitializeWithVerbosity(false, VerbosityDebug); err != nil {
		t.Fatalf("InitializeWithVerbosity() failed: %v", err)
	}
	defer Cleanup()

	if !Logger.Desugar().Core().Enabled(zapcore.DebugLevel) {
		t.Error("expected debug level to be enabled at verbosity 2")
	}
}

func TestVerbosityToLevel(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zapcore.Level
	}{
		{-1, zapcore.WarnLevel},
		{VerbosityUser, zapcore.WarnLevel},
		{VerbosityInfo, zapcore.InfoLevel},
		{VerbosityDebug, zapcore.DebugLevel},
		{7, zapcore.DebugLevel},
	}

	for _, tt := range tests {
		if got := VerbosityToLevel(tt.verbosity); got != tt.want {
			t.Errorf("VerbosityToLevel(%d) = %v, want %v", tt.verbosity, got, tt.want)
		}
	}
}

func TestLevelName(t *testing.T) {
	if got := LevelName(VerbosityInfo); got != "Info" {
		t.Errorf("LevelName(1) = %q, want %q", got, "Info")
	}
	if got := LevelName(-3); got != "Unknown" {
		t.Errorf("LevelName(-3) = %q, want %q", got, "Unknown")
	}
}

func TestHelpersNoPanicBeforeInitialize(t *testing.T) {
	Logger = nil
	defer func() { Logger = zap.NewNop().Sugar() }()

	Debugw("ignored")
	Warnw("ignored")
	Cleanup()
}

func TestHelpersWriteToGlobalLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	Logger = zap.New(core).Sugar()
	defer func() { Logger = zap.NewNop().Sugar() }()

	Debugw("debug entry", FieldCount, 1)
	Warnw("warn entry", FieldPath, "/tmp/x.toml")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Level != zapcore.DebugLevel || entries[1].Level != zapcore.WarnLevel {
		t.Errorf("unexpected levels %v, %v", entries[0].Level, entries[1].Level)
	}
	if got := entries[1].ContextMap()[FieldPath]; got != "/tmp/x.toml" {
		t.Errorf("path field = %v", got)
	}
}

func TestChildLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	child := ChildLogger(zap.New(core).Sugar(), FieldTable, "builtin")

	child.Infow("ready", FieldEntries, 3)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields[FieldTable] != "builtin" {
		t.Errorf("table field = %v, want builtin", fields[FieldTable])
	}
	if fields[FieldEntries] != int64(3) {
		t.Errorf("entries field = %v, want 3", fields[FieldEntries])
	}
}

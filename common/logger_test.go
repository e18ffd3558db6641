package common

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{LogLevel(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.level.String(); got != tt.expected {
				t.Errorf("LogLevel.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestAppLogger_LogFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := newAppLogger(&buf, LevelWarn)

	logger.Debug("debug message")
	logger.Info("info message")
	if buf.Len() > 0 {
		t.Error("Debug/Info messages should be filtered when level is Warn")
	}

	logger.Warn("warn message")
	if !strings.Contains(buf.String(), "[WARN]") {
		t.Error("Warn message should be logged")
	}

	buf.Reset()
	logger.SetLevel(LevelDebug)
	logger.Debug("debug message")
	if !strings.Contains(buf.String(), "[DEBUG]") {
		t.Error("Debug message should be logged after SetLevel(LevelDebug)")
	}
}

func TestAppLogger_LogFormatting(t *testing.T) {
	var buf bytes.Buffer
	logger := newAppLogger(&buf, LevelDebug)

	logger.Info("Connecting to %s", "Germany")

	output := buf.String()
	if !strings.Contains(output, time.Now().Format("2006/01/02")) {
		t.Error("Log should contain date in YYYY/MM/DD format")
	}
	if !strings.Contains(output, "[INFO]") {
		t.Error("Log should contain level indicator")
	}
	if !strings.Contains(output, "logger_test.go:") {
		t.Errorf("Log should name the calling file, got %q", output)
	}
	if !strings.Contains(output, "Connecting to Germany") {
		t.Error("Log should contain formatted message")
	}
}

func TestAppLogger_FileLogging(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	logger := newAppLogger(&buf, LevelInfo)

	if err := logger.EnableFileLogging(dir); err != nil {
		t.Fatalf("EnableFileLogging() error = %v", err)
	}
	logger.Info("to file")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, LogFileName))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "to file") {
		t.Errorf("log file = %q, want it to contain the message", data)
	}
	if !strings.Contains(buf.String(), "to file") {
		t.Error("console output should still receive the message")
	}
}

func TestAppLogger_RotatesWhileWriting(t *testing.T) {
	dir := t.TempDir()
	logger := newAppLogger(&bytes.Buffer{}, LevelInfo)
	logger.maxFileSize = 256
	logger.maxBackups = 2

	if err := logger.EnableFileLogging(dir); err != nil {
		t.Fatal(err)
	}
	defer logger.Close()

	for i := 0; i < 20; i++ {
		logger.Info("%s", strings.Repeat("x", 64))
	}

	matches, _ := filepath.Glob(filepath.Join(dir, LogFileName+".*"))
	if len(matches) == 0 {
		t.Fatal("expected rotated backups")
	}
	if len(matches) > 2 {
		t.Errorf("backups = %d, want at most 2", len(matches))
	}
}

func TestLogRotationOnOpen(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, LogFileName)

	if err := os.WriteFile(logFile, []byte(strings.Repeat("x", 1024*1024)), 0600); err != nil {
		t.Fatal(err)
	}

	logger := newAppLogger(&bytes.Buffer{}, LevelInfo)
	logger.maxFileSize = 512 * 1024
	if err := logger.EnableFileLogging(dir); err != nil {
		t.Fatal(err)
	}
	defer logger.Close()

	info, err := os.Stat(logFile)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() != 0 {
		t.Errorf("log file size = %d, want a fresh file after rotation", info.Size())
	}

	matches, _ := filepath.Glob(filepath.Join(dir, LogFileName+".*.gz"))
	if len(matches) != 1 {
		t.Errorf("gzip backups = %d, want 1", len(matches))
	}
}

func TestEnableFileLogging_RejectsSymlink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target")
	link := filepath.Join(dir, "logs")
	if err := os.Mkdir(target, 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(target, link); err != nil {
		t.Skip("symlinks not supported")
	}

	logger := newAppLogger(&bytes.Buffer{}, LevelInfo)
	if err := logger.EnableFileLogging(link); err == nil {
		t.Error("EnableFileLogging() on a symlinked directory should fail")
	}
}

func TestDefaultLogConfig(t *testing.T) {
	if defaultMaxFileSize != 5*1024*1024 {
		t.Errorf("defaultMaxFileSize = %v, want 5MB", defaultMaxFileSize)
	}
	if defaultMaxBackups != 5 {
		t.Errorf("defaultMaxBackups = %v, want 5", defaultMaxBackups)
	}
}

func TestFileExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exists")
	if err := os.WriteFile(path, nil, 0600); err != nil {
		t.Fatal(err)
	}

	if !FileExists(path) {
		t.Error("FileExists() should return true for existing file")
	}
	if FileExists("/nonexistent/path/to/file") {
		t.Error("FileExists() should return false for non-existing file")
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"United_States", "United States"},
		{"Bosnia_And_Herzegovina", "Bosnia And Herzegovina"},
		{"Germany", "Germany"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := DisplayName(tt.in); got != tt.want {
			t.Errorf("DisplayName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseConnectionState(t *testing.T) {
	tests := []struct {
		in   string
		want ConnectionState
	}{
		{"Connected", StateConnected},
		{" disconnected ", StateDisconnected},
		{"Connecting", StateConnecting},
		{"Reconnecting", StateConnecting},
		{"", StateUnknown},
		{"Paused", StateUnknown},
	}

	for _, tt := range tests {
		if got := ParseConnectionState(tt.in); got != tt.want {
			t.Errorf("ParseConnectionState(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestWrapError(t *testing.T) {
	wrapped := WrapError(ErrProcessFailed, "additional context")

	if wrapped == nil {
		t.Fatal("WrapError should return non-nil error")
	}
	if !strings.Contains(wrapped.Error(), "additional context") {
		t.Error("WrapError should include additional context")
	}
	if !errors.Is(wrapped, ErrProcessFailed) {
		t.Error("WrapError should keep the original error in the chain")
	}
	if WrapError(nil, "context") != nil {
		t.Error("WrapError(nil) should return nil")
	}
}

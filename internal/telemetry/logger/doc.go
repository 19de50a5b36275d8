// Package logger provides structured logging for chainmap-driver.
//
// It wraps log/slog with text or JSON output and a process-wide default that
// the run command replaces once configuration is loaded. context.go carries
// the logger and the driver run ID through a context; L tags every record
// with the run ID.
//
// The chainmap library itself never logs.
package logger

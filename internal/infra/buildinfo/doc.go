// Package buildinfo provides build information for chainmap-driver.
//
// This package exposes build-time information injected via ldflags:
//
//   - Version: Semantic version (e.g., "1.0.0")
//   - Commit: Git commit hash
//   - BuildTime: Build timestamp
//
// GoVersion falls back to the running toolchain when it is not injected.
//
// Usage:
//
//	go build -ldflags "-X github.com/yndnr/chainmap/internal/infra/buildinfo.Version=v1.0.0"
package buildinfo

package buildinfo

import (
	"runtime"
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	info := Get()

	tests := []struct {
		name  string
		value string
	}{
		{"Version", info.Version},
		{"Commit", info.Commit},
		{"BuildTime", info.BuildTime},
		{"GoVersion", info.GoVersion},
		{"Platform", info.Platform},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value == "" {
				t.Errorf("%s field should not be empty", tt.name)
			}
		})
	}
}

func TestGet_GoVersionFallback(t *testing.T) {
	orig := GoVersion
	defer func() { GoVersion = orig }()

	GoVersion = ""
	if got := Get().GoVersion; got != runtime.Version() {
		t.Errorf("GoVersion = %q, want %q", got, runtime.Version())
	}

	GoVersion = "go1.0"
	if got := Get().GoVersion; got != "go1.0" {
		t.Errorf("GoVersion = %q, want %q", got, "go1.0")
	}
}

func TestString(t *testing.T) {
	expected := Version + " (" + Commit + ") built at " + BuildTime
	if s := String(); s != expected {
		t.Errorf("String() = %q, want %q", s, expected)
	}
}

func TestLong(t *testing.T) {
	s := Long("chainmap-driver")

	for _, want := range []string{"chainmap-driver " + Version, "commit:", Commit, runtime.GOOS} {
		if !strings.Contains(s, want) {
			t.Errorf("Long() = %q, missing %q", s, want)
		}
	}
}

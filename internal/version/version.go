// Package version holds build-time version information.
//
// The variables are set during build via ldflags:
//
//	-ldflags "-X github.com/finch-gen/finch-frontend-api/internal/version.version=v1.0.0"
package version

import (
	"fmt"
	"io"
	"strings"
)

//nolint:gochecknoglobals // Set via ldflags during build.
var (
	version   string
	commit    string
	buildTime string
)

// ApplicationName is the name shown in version output.
const ApplicationName = "finch-frontend"

const (
	DefaultVersion   = "dev"
	DefaultCommit    = "unknown"
	DefaultBuildTime = "unknown"
)

// VersionInfo carries version data with defaults applied.
type VersionInfo struct {
	Version   string
	Commit    string
	BuildTime string
}

// GetVersion returns the current version information.
func GetVersion() *VersionInfo {
	return &VersionInfo{
		Version:   withDefault(version, DefaultVersion),
		Commit:    withDefault(commit, DefaultCommit),
		BuildTime: withDefault(buildTime, DefaultBuildTime),
	}
}

func withDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// FormatFull returns the multi-line version output.
func (vi *VersionInfo) FormatFull() string {
	var builder strings.Builder
	builder.WriteString(ApplicationName)
	builder.WriteString("\n")
	builder.WriteString("Version: ")
	builder.WriteString(vi.Version)
	builder.WriteString("\n")
	builder.WriteString("Commit: ")
	builder.WriteString(vi.Commit)
	builder.WriteString("\n")
	builder.WriteString("Built: ")
	builder.WriteString(vi.BuildTime)
	builder.WriteString("\n")
	return builder.String()
}

// Write writes either the bare version or the full output.
func (vi *VersionInfo) Write(w io.Writer, short bool) error {
	if short {
		_, err := fmt.Fprintln(w, vi.Version)
		return err
	}
	_, err := fmt.Fprint(w, vi.FormatFull())
	return err
}

// SetBuildVars sets the build-time variables. Used by tests.
func SetBuildVars(ver, com, bt string) {
	version = ver
	commit = com
	buildTime = bt
}

// ResetBuildVars clears the build-time variables. Used by tests.
func ResetBuildVars() {
	version = ""
	commit = ""
	buildTime = ""
}

// IsDevelopment reports whether this is an unversioned build.
func (vi *VersionInfo) IsDevelopment() bool {
	return vi.Version == DefaultVersion
}

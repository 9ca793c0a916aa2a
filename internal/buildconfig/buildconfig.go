package buildconfig

// Build-time variables injected via ldflags:
//
//	-X github.com/adrienfranto/ia-enquete-policie/internal/buildconfig.version=v1.2.0
var (
	version = "dev"
	commit  = "unknown"
)

// Version returns the build version
func Version() string {
	return version
}

// Commit returns the git commit hash
func Commit() string {
	return commit
}

// VersionInfo returns full version information
func VersionInfo() map[string]string {
	return map[string]string{
		"version": version,
		"commit":  commit,
	}
}

// String formats the version for CLI output.
func String() string {
	return version + " (" + commit + ")"
}

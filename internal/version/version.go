package version

// Version is overridden at build time with -ldflags "-X .../internal/version.Version=1.2.3".
var Version = "dev"

// FullVersion returns the version with the v prefix.
func FullVersion() string {
	if Version == "dev" {
		return Version
	}
	return "v" + Version
}

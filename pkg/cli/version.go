package cli

var version = "dev"

// SetVersionInfo records the build version, normally injected through
// -ldflags in main.
func SetVersionInfo(v string) {
	if v != "" {
		version = v
	}
}

// GetVersion returns the build version.
func GetVersion() string {
	return version
}

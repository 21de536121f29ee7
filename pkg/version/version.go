package version

// Set with -ldflags "-X github.com/kak-tus/fdpowermon/pkg/version.Version=..."
var (
	Version   = "UNKNOWN"
	GitCommit = "UNKNOWN"
)

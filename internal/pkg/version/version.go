// Package version carries build metadata injected at link time:
//
//	go build -ldflags "-X go-netcfg/internal/pkg/version.tag=v1.2.0 ..."
package version

var (
	tag    = "dev"
	commit = "unknown"
	branch = "unknown"
)

// Info describes the build.
type Info struct {
	Tag    string
	Commit string
	Branch string
}

// Get returns the build metadata.
func Get() Info {
	return Info{Tag: tag, Commit: commit, Branch: branch}
}

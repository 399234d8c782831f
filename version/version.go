// Package version holds build version information, injected at build time:
//
//	go build -ldflags "-X github.com/pagetree-ai/pagetree-go/version.GitRelease=v0.3.0 ..."
package version

import (
	"fmt"
	"runtime"
)

var (
	// GitRelease is the release tag, or "dev" for untagged builds.
	GitRelease = "dev"

	// GitCommit is the commit hash the binary was built from.
	GitCommit = "unknown"

	// GitCommitDate is the commit date of GitCommit.
	GitCommitDate = "unknown"
)

// GoInfo describes the Go toolchain and platform of the build.
var GoInfo = fmt.Sprintf("%s %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH)

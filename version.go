// version.go - Build version information
package main

import (
	"fmt"
	"runtime"
)

// Version information, set with -ldflags at build time.
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// GetVersion returns version information
func GetVersion() string {
	return fmt.Sprintf("sorttable %s (built on %s, commit %s, %s/%s)",
		Version, BuildTime, GitCommit, runtime.GOOS, runtime.GOARCH)
}

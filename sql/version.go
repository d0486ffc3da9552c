package sql

import (
	"fmt"
	"runtime"
)

const (
	MajorVersion = 0
	MinorVersion = 1
)

// Version is printed by rsql version, e.g. "rsql 0.1 (go1.21.5 linux/amd64)".
func Version() string {
	return fmt.Sprintf("rsql %d.%d (%s %s/%s)", MajorVersion, MinorVersion, runtime.Version(),
		runtime.GOOS, runtime.GOARCH)
}

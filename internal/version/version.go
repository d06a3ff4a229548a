// Package version provides SDK version information.
package version

import (
	"fmt"
	"runtime"
)

// SDK version constants
const (
	// Version is the current SDK version.
	Version = "0.4.2"

	// SDKName is the name of the SDK.
	SDKName = "slotbook-go"
)

// UserAgent returns the default user agent string for the SDK.
func UserAgent() string {
	return fmt.Sprintf("%s/%s (%s; %s)", SDKName, Version, runtime.GOOS, runtime.GOARCH)
}

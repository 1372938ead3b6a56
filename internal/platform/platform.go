// Package platform identifies the host operating system once at startup.
package platform

import "runtime"

// Kind is the closed set of platforms texpress knows how to open files on.
type Kind int

const (
	Other Kind = iota
	MacOS
	Windows
	Linux
)

func (k Kind) String() string {
	switch k {
	case MacOS:
		return "macos"
	case Windows:
		return "windows"
	case Linux:
		return "linux"
	default:
		return "other"
	}
}

// Platform is the resolved host. Name keeps the raw identifier so an Other
// platform can be named in diagnostics.
type Platform struct {
	Kind Kind
	Name string
}

// Detect maps a GOOS identifier onto a Platform.
func Detect(goos string) Platform {
	switch goos {
	case "darwin":
		return Platform{Kind: MacOS, Name: goos}
	case "windows":
		return Platform{Kind: Windows, Name: goos}
	case "linux":
		return Platform{Kind: Linux, Name: goos}
	default:
		return Platform{Kind: Other, Name: goos}
	}
}

// Current returns the platform the binary was built for.
func Current() Platform {
	return Detect(runtime.GOOS)
}

// Supported reports whether files can be opened on this platform.
func (p Platform) Supported() bool {
	return p.Kind != Other
}

func (p Platform) String() string {
	return p.Name
}

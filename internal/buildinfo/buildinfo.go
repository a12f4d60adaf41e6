// Package buildinfo holds the version string reported by the CLI demo.
package buildinfo

// Version is overridden at link time via:
//
//	go build -ldflags "-X github.com/lemire/sparsebitmap/internal/buildinfo.Version=v1.2.3"
var Version = "dev"

// Package version reports the gobridge build.
//
// Version, commit and build time are set at link time:
//
//	go build -ldflags "-X github.com/kbukum/gobridge/version.Version=1.2.0" ./cmd/gobridge
//
// Unset values fall back to the VCS stamp of runtime/debug.ReadBuildInfo.
package version

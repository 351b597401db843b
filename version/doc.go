// Package version reports the larc build.
//
// Version and Commit are set at link time, and otherwise fall back to the
// module build information recorded by the Go toolchain:
//
//	go build -ldflags "-X github.com/lowlandresearch/larc/version.Version=0.2.0" ./cmd/larc
package version

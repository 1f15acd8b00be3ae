//go:build !(darwin || freebsd || linux || netbsd || windows)

// Package ffi loads the native renderer library. This platform has no dynamic loader
// purego can drive (js/wasm among others), so every call fails and callers fall back to
// the software renderer.
package ffi

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrSymbolNotFound is returned by Register when the library lacks a symbol.
var ErrSymbolNotFound = errors.New("ffi: symbol not found")

var errUnsupported = fmt.Errorf("ffi: dynamic libraries are not available on %s/%s", runtime.GOOS, runtime.GOARCH)

// Library is an open dynamic library.
type Library struct {
	Path string
}

// LibraryName returns the platform file name for base.
func LibraryName(base string) string {
	if runtime.GOOS == "js" {
		return base + ".wasm"
	}
	return "lib" + base + ".so"
}

// LibraryPath returns configured, or the library name.
func LibraryPath(_, configured, base string) string {
	if configured != "" {
		return configured
	}
	return LibraryName(base)
}

// Open always fails here.
func Open(path string) (*Library, error) {
	return nil, fmt.Errorf("ffi: load %s: %w", path, errUnsupported)
}

// Register always fails here.
func (l *Library) Register(_ any, name string) error {
	return fmt.Errorf("%w: %s", ErrSymbolNotFound, name)
}

// RegisterOptional always reports false here.
func (l *Library) RegisterOptional(any, string) bool { return false }

// GoString returns "" here.
func GoString(uintptr) string { return "" }

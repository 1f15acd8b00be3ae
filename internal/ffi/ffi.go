//go:build darwin || freebsd || linux || netbsd || windows

// Package ffi loads the native renderer library via purego.
// This implementation uses purego for FFI, eliminating the need for CGo.
package ffi

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/agiangrant/facet/internal/trace"
)

var logger = trace.New("ffi")

// ErrSymbolNotFound is returned by Register when the library lacks a symbol.
var ErrSymbolNotFound = errors.New("ffi: symbol not found")

// ============================================================================
// Library Loading
// ============================================================================

// Library is an open dynamic library.
type Library struct {
	Path   string
	handle uintptr
}

// LibraryName returns the platform file name for base, e.g. "libfacet_renderer.so".
func LibraryName(base string) string {
	switch runtime.GOOS {
	case "darwin", "ios":
		return "lib" + base + ".dylib"
	case "windows":
		return base + ".dll"
	default:
		return "lib" + base + ".so"
	}
}

// LibraryPath returns the path to the dynamic library. The env variable wins, then
// configured, then the first existing file in the usual build and install
// locations. Otherwise the bare name is returned and the system loader searches.
func LibraryPath(env, configured, base string) string {
	// Check environment variable first
	if path := os.Getenv(env); path != "" {
		return path
	}
	if configured != "" {
		return configured
	}

	libName := LibraryName(base)
	searchPaths := []string{
		libName,
		filepath.Join("renderer", "target", "release", libName),
		filepath.Join("renderer", "target", "debug", libName),
	}

	// Also check relative to the executable
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		searchPaths = append(searchPaths,
			filepath.Join(execDir, libName),
			filepath.Join(execDir, "..", "lib", libName),
		)
		if runtime.GOOS == "darwin" {
			searchPaths = append(searchPaths, filepath.Join(execDir, "..", "Frameworks", libName))
		}
	}

	for _, path := range searchPaths {
		if _, err := os.Stat(path); err == nil {
			if abs, err := filepath.Abs(path); err == nil {
				return abs
			}
			return path
		}
	}

	// Default to library name (let the system find it)
	return libName
}

// Open loads the library at path.
func Open(path string) (*Library, error) {
	logger.Debugf("runtime.GOOS = %s, runtime.GOARCH = %s", runtime.GOOS, runtime.GOARCH)
	logger.Debugf("attempting to load library from: %s", path)

	handle, err := openLibrary(path)
	if err != nil {
		return nil, fmt.Errorf("ffi: load %s: %w", path, err)
	}
	return &Library{Path: path, handle: handle}, nil
}

// Register binds fn, a pointer to a func variable, to the named symbol.
func (l *Library) Register(fn any, name string) (err error) {
	sym, err := getSymbol(l.handle, name)
	if err != nil || sym == 0 {
		return fmt.Errorf("%w: %s", ErrSymbolNotFound, name)
	}
	defer func() {
		// purego panics on signatures it cannot bridge
		if r := recover(); r != nil {
			err = fmt.Errorf("ffi: register %s: %v", name, r)
		}
	}()
	purego.RegisterFunc(fn, sym)
	return nil
}

// RegisterOptional binds fn when the symbol exists and reports whether it did.
func (l *Library) RegisterOptional(fn any, name string) bool {
	if err := l.Register(fn, name); err != nil {
		logger.Debugf("optional symbol %s unavailable: %v", name, err)
		return false
	}
	return true
}

// ============================================================================
// String Helpers for FFI
// ============================================================================

// GoString converts a C string pointer to a Go string
func GoString(ptr uintptr) string {
	if ptr == 0 {
		return ""
	}
	// Find the null terminator
	var length int
	for *(*byte)(unsafe.Pointer(ptr + uintptr(length))) != 0 {
		length++
		if length > 1<<20 { // Safety limit: 1MB
			break
		}
	}
	return string(unsafe.Slice((*byte)(unsafe.Pointer(ptr)), length))
}

//go:build windows

package ffi

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// openLibrary loads path with LoadLibraryEx. An absolute path also searches the
// library's own directory for its dependencies.
func openLibrary(path string) (uintptr, error) {
	var flags uintptr
	if len(path) > 2 && path[1] == ':' {
		flags = windows.LOAD_WITH_ALTERED_SEARCH_PATH
	}
	h, err := windows.LoadLibraryEx(path, 0, flags)
	if err != nil {
		return 0, fmt.Errorf("LoadLibraryEx: %w", err)
	}
	return uintptr(h), nil
}

// getSymbol resolves name in the module handle returned by openLibrary. Handles are
// HMODULEs, so several libraries can be open at once.
func getSymbol(handle uintptr, name string) (uintptr, error) {
	if handle == 0 {
		return 0, fmt.Errorf("GetProcAddress(%s): library not loaded", name)
	}
	addr, err := windows.GetProcAddress(windows.Handle(handle), name)
	if err != nil {
		return 0, fmt.Errorf("GetProcAddress(%s): %w", name, err)
	}
	return addr, nil
}

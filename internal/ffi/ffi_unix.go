//go:build darwin || freebsd || linux || netbsd

package ffi

import "github.com/ebitengine/purego"

// openLibrary dlopens path. Symbols stay local to the library so two renderer builds
// can be loaded side by side.
func openLibrary(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_LAZY|purego.RTLD_LOCAL)
}

func getSymbol(handle uintptr, name string) (uintptr, error) {
	return purego.Dlsym(handle, name)
}

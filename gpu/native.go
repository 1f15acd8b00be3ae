package gpu

import (
	"fmt"
	"runtime"
	"sync"
	"unsafe"

	"github.com/agiangrant/facet/draw"
	"github.com/agiangrant/facet/internal/ffi"
)

// LibraryEnv names the environment variable that overrides the renderer library path.
const LibraryEnv = "FACET_RENDERER_LIB"

// LibraryBase is the renderer library name without platform prefix and suffix.
const LibraryBase = "facet_renderer"

// NativeSubmitter sends encoded frames to a native renderer library loaded at runtime.
//
// The library exports, with the C calling convention:
//
//	int32_t facet_submit_batch(uint32_t layer, uint32_t kind, const void *instances,
//	                           uint32_t count, uint32_t stride);
//
// and optionally facet_load_shader, facet_submit_text, facet_submit_images,
// facet_present and facet_renderer_version. A negative return is an error.
type NativeSubmitter struct {
	mu  sync.Mutex
	lib *ffi.Library
	enc Encoder

	// Library function pointers
	fnSubmitBatch  func(layer, kind uint32, data uintptr, count, stride uint32) int32
	fnLoadShader   func(src uintptr, n uint32) int32
	fnSubmitText   func(layer uint32, data uintptr, count, stride uint32, strs uintptr, strsLen uint32) int32
	fnSubmitImages func(layer uint32, data uintptr, count, stride uint32, strs uintptr, strsLen uint32) int32
	fnPresent      func() int32
	fnVersion      func() uintptr
}

// OpenNative loads the renderer library. path may be empty, in which case
// FACET_RENDERER_LIB and the usual build locations are searched.
func OpenNative(path string) (*NativeSubmitter, error) {
	path = ffi.LibraryPath(LibraryEnv, path, LibraryBase)
	lib, err := ffi.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLibraryNotLoaded, err)
	}

	s := &NativeSubmitter{lib: lib}
	if err := lib.Register(&s.fnSubmitBatch, "facet_submit_batch"); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSymbolMissing, err)
	}
	lib.RegisterOptional(&s.fnLoadShader, "facet_load_shader")
	lib.RegisterOptional(&s.fnSubmitText, "facet_submit_text")
	lib.RegisterOptional(&s.fnSubmitImages, "facet_submit_images")
	lib.RegisterOptional(&s.fnPresent, "facet_present")
	lib.RegisterOptional(&s.fnVersion, "facet_renderer_version")

	if s.fnLoadShader != nil {
		src := []byte(PrimitivesWGSL)
		rc := s.fnLoadShader(uintptr(unsafe.Pointer(&src[0])), uint32(len(src)))
		runtime.KeepAlive(src)
		if rc < 0 {
			return nil, fmt.Errorf("gpu: facet_load_shader returned %d", rc)
		}
	}
	logger.Debugf("loaded renderer %s (%s)", lib.Path, s.Version())
	return s, nil
}

// Version returns the library's version string, or "" when it does not report one.
func (s *NativeSubmitter) Version() string {
	if s == nil || s.fnVersion == nil {
		return ""
	}
	return ffi.GoString(s.fnVersion())
}

// Submit encodes l and, layer by layer, issues one batch per non-empty primitive kind
// followed by the layer's image and text runs. It presents once at the end.
func (s *NativeSubmitter) Submit(l *draw.List) error {
	if s == nil || s.fnSubmitBatch == nil {
		return ErrLibraryNotLoaded
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	f := s.enc.Encode(l)
	for layer := range len(l.Layers()) {
		for _, c := range f.Calls {
			if c.Layer != layer {
				continue
			}
			data := f.Instances[c.First*InstanceSize:]
			rc := s.fnSubmitBatch(uint32(c.Layer), uint32(c.Kind), uintptr(unsafe.Pointer(&data[0])), uint32(c.Count), InstanceSize)
			if rc < 0 {
				return fmt.Errorf("gpu: facet_submit_batch(layer %d, %s, %d instances) returned %d", c.Layer, c.Kind, c.Count, rc)
			}
		}
		if err := s.submitRecords("facet_submit_images", s.fnSubmitImages, layer, f.Images, ImageRecordSize, f.ImageSpans, f.Strings); err != nil {
			return err
		}
		if err := s.submitRecords("facet_submit_text", s.fnSubmitText, layer, f.Texts, TextRecordSize, f.TextSpans, f.Strings); err != nil {
			return err
		}
	}
	runtime.KeepAlive(f)

	if s.fnPresent != nil {
		if rc := s.fnPresent(); rc < 0 {
			return fmt.Errorf("gpu: facet_present returned %d", rc)
		}
	}
	return nil
}

func (s *NativeSubmitter) submitRecords(name string, fn func(uint32, uintptr, uint32, uint32, uintptr, uint32) int32, layer int, recs []byte, size int, spans []Span, strs []byte) error {
	if len(spans) == 0 {
		return nil
	}
	if fn == nil {
		if layer > 0 {
			return nil
		}
		logger.Debugf("%s not exported; skipping %d runs", name, len(spans))
		return nil
	}
	var strPtr uintptr
	if len(strs) > 0 {
		strPtr = uintptr(unsafe.Pointer(&strs[0]))
	}
	for _, sp := range spans {
		if sp.Layer != layer {
			continue
		}
		data := recs[sp.First*size:]
		rc := fn(uint32(sp.Layer), uintptr(unsafe.Pointer(&data[0])), uint32(sp.Count), uint32(size), strPtr, uint32(len(strs)))
		if rc < 0 {
			return fmt.Errorf("gpu: %s(layer %d) returned %d", name, sp.Layer, rc)
		}
	}
	return nil
}

package text

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/agiangrant/facet/internal/trace"
)

var logger = trace.New("text")

type variant struct {
	bold, italic bool
}

type faceKey struct {
	family string
	size   float32
	v      variant
}

// Registry holds parsed fonts by family and variant. Adding a font bumps the
// generation; faces and cached measurements from older generations are dropped.
type Registry struct {
	mu       sync.RWMutex
	families map[string]map[variant]*opentype.Font
	faces    map[faceKey]font.Face
	gen      uint64
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		families: make(map[string]map[variant]*opentype.Font),
		faces:    make(map[faceKey]font.Face),
	}
}

// DefaultRegistry returns a registry preloaded with the Go fonts as "sans" and "mono".
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, f := range []struct {
		family       string
		data         []byte
		bold, italic bool
	}{
		{DefaultFamily, goregular.TTF, false, false},
		{DefaultFamily, gobold.TTF, true, false},
		{DefaultFamily, goitalic.TTF, false, true},
		{DefaultFamily, gobolditalic.TTF, true, true},
		{"mono", gomono.TTF, false, false},
	} {
		if err := r.Add(f.family, f.data, f.bold, f.italic); err != nil {
			panic(err)
		}
	}
	return r
}

// Add parses a TrueType/OpenType font and registers it under family.
func (r *Registry) Add(family string, data []byte, bold, italic bool) error {
	f, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("text: parse font %q: %w", family, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.families[family] == nil {
		r.families[family] = make(map[variant]*opentype.Font)
	}
	r.families[family][variant{bold, italic}] = f
	for k, face := range r.faces {
		face.Close()
		delete(r.faces, k)
	}
	r.gen++
	return nil
}

// Generation increases every time a font is added.
func (r *Registry) Generation() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.gen
}

// Families returns the number of registered families.
func (r *Registry) Families() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.families)
}

// Face returns a face for spec. Unknown families fall back to DefaultFamily and missing
// variants fall back to the regular face. ok is false when nothing could be resolved.
func (r *Registry) Face(spec FontSpec) (font.Face, bool) {
	spec = spec.Normalize()
	key := faceKey{spec.Family, spec.Size, variant{spec.Bold, spec.Italic}}

	r.mu.RLock()
	face, ok := r.faces[key]
	r.mu.RUnlock()
	if ok {
		return face, true
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if face, ok := r.faces[key]; ok {
		return face, true
	}
	f := r.lookup(spec)
	if f == nil {
		return nil, false
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(spec.Size),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		logger.Debugf("face %s@%v: %v", spec.Family, spec.Size, err)
		return nil, false
	}
	r.faces[key] = face
	return face, true
}

func (r *Registry) lookup(spec FontSpec) *opentype.Font {
	fam, ok := r.families[spec.Family]
	if !ok {
		logger.Debugf("unknown font family %q, using %q", spec.Family, DefaultFamily)
		fam = r.families[DefaultFamily]
	}
	if fam == nil {
		return nil
	}
	if f, ok := fam[variant{spec.Bold, spec.Italic}]; ok {
		return f
	}
	return fam[variant{}]
}

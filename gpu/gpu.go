// Package gpu hands draw lists to a renderer. Encode packs SDF instances into the
// 96-byte record the WGSL shader in shaders/primitives.wgsl reads, grouped so each
// primitive kind of each layer is a single instanced draw call.
package gpu

import (
	"errors"

	"github.com/agiangrant/facet/draw"
	"github.com/agiangrant/facet/internal/trace"
)

var logger = trace.New("gpu")

var (
	// ErrLibraryNotLoaded is returned when the native renderer library could not be
	// opened, or a submitter is used after a failed open.
	ErrLibraryNotLoaded = errors.New("gpu: renderer library not loaded")
	// ErrSymbolMissing is returned when the library lacks a required entry point.
	ErrSymbolMissing = errors.New("gpu: renderer symbol missing")
)

// Submitter consumes one frame of draw output.
type Submitter interface {
	Submit(l *draw.List) error
}

// Call is one instanced draw call: Count instances of Kind from Layer, starting at
// instance First of the encoded buffer.
type Call struct {
	Layer int
	Kind  draw.Kind
	First int
	Count int
}

// RecordedFrame is what a Recorder captured for one Submit.
type RecordedFrame struct {
	Calls     []Call
	Instances []byte
	Texts     int
	Images    int
}

// Recorder is a Submitter that keeps the encoded frames, for tests and dumps.
type Recorder struct {
	Frames []RecordedFrame
	enc    Encoder
}

// Submit encodes l and appends the result to r.Frames.
func (r *Recorder) Submit(l *draw.List) error {
	f := r.enc.Encode(l)
	r.Frames = append(r.Frames, RecordedFrame{
		Calls:     append([]Call(nil), f.Calls...),
		Instances: append([]byte(nil), f.Instances...),
		Texts:     len(l.Base.Texts) + len(l.Overlay.Texts),
		Images:    len(l.Base.Images) + len(l.Overlay.Images),
	})
	return nil
}

// Last returns the most recent frame.
func (r *Recorder) Last() (RecordedFrame, bool) {
	if len(r.Frames) == 0 {
		return RecordedFrame{}, false
	}
	return r.Frames[len(r.Frames)-1], true
}

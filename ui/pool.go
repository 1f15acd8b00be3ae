package ui

import "sync"

// ============================================================================
// Scratch Slice Pooling
// ============================================================================
//
// Layout sizes every container's children and grid tracks into temporary
// []float32 slices. A large tree lays out thousands of containers per frame,
// so these slices come from a pool instead of the allocator.
//
// Usage:
//   sizes := acquireFloats(len(children))
//   defer releaseFloats(sizes)

var floatPool = sync.Pool{
	New: func() any {
		s := make([]float32, 0, 16)
		return &s
	},
}

// acquireFloats returns a zeroed slice with len == n.
// Caller must call releaseFloats when done.
func acquireFloats(n int) []float32 {
	p := floatPool.Get().(*[]float32)
	s := *p
	if cap(s) < n {
		floatPool.Put(p)
		return make([]float32, n, n*2)
	}
	s = s[:n]
	clear(s)
	return s
}

// releaseFloats returns s to the pool. s must not be used afterwards.
func releaseFloats(s []float32) {
	if s == nil || cap(s) > 1024 {
		return
	}
	s = s[:0]
	floatPool.Put(&s)
}

// cellPool holds grid occupancy bitmaps.
var cellPool = sync.Pool{
	New: func() any {
		s := make([]bool, 0, 64)
		return &s
	},
}

func acquireCells(n int) []bool {
	p := cellPool.Get().(*[]bool)
	s := *p
	if cap(s) < n {
		cellPool.Put(p)
		return make([]bool, n)
	}
	s = s[:n]
	clear(s)
	return s
}

func releaseCells(s []bool) {
	if s == nil || cap(s) > 4096 {
		return
	}
	s = s[:0]
	cellPool.Put(&s)
}

// Package pool provides reusable sample buffers using sync.Pool, so
// concurrent scans do not allocate one sample-sized buffer per file.
package pool

import "sync"

// SamplePool manages fixed-size reusable sample buffers.
type SamplePool struct {
	pool sync.Pool
	size int
}

// NewSamplePool creates a pool of buffers of the given size.
func NewSamplePool(size int) *SamplePool {
	p := &SamplePool{size: size}
	p.pool.New = func() any {
		buf := make([]byte, size)
		return &buf
	}
	return p
}

// Size returns the buffer size this pool hands out.
func (p *SamplePool) Size() int {
	return p.size
}

// Get retrieves a full-length buffer from the pool.
func (p *SamplePool) Get() []byte {
	return *p.pool.Get().(*[]byte)
}

// Put returns a buffer to the pool. Buffers of the wrong size are dropped.
func (p *SamplePool) Put(buf []byte) {
	if cap(buf) != p.size {
		return
	}
	buf = buf[:p.size]
	p.pool.Put(&buf)
}

package handler

import (
	"bytes"
	"sync"
)

// Response buffers start small. Full leaderboards can grow a buffer well past
// that, and those are dropped instead of pinned in the pool.
const (
	initialBufferSize = 512
	maxPooledBuffer   = 64 << 10
)

var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, initialBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBuffer {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}

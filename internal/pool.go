package internal

import (
	"bytes"
	"sync"
)

// BufferPool holds buffers that exported trajectories are encoded into before they are written out.
var BufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer([]byte{})
	},
}

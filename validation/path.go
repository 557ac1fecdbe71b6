package validation

import (
	"strconv"
	"sync"
)

// pathBuffer builds object paths such as
// "SCSContext.SubjectOfCare.Participant.Addresses[0].AustralianAddress".
type pathBuffer struct {
	buf []byte
}

var pathBufferPool = sync.Pool{
	New: func() any {
		return &pathBuffer{buf: make([]byte, 0, 128)}
	},
}

func acquirePath() *pathBuffer {
	pb := pathBufferPool.Get().(*pathBuffer)
	pb.buf = pb.buf[:0]
	return pb
}

func (pb *pathBuffer) release() {
	if cap(pb.buf) <= 2048 {
		pathBufferPool.Put(pb)
	}
}

func (pb *pathBuffer) field(name string) {
	if len(pb.buf) > 0 {
		pb.buf = append(pb.buf, '.')
	}
	pb.buf = append(pb.buf, name...)
}

func (pb *pathBuffer) index(i int) {
	pb.buf = append(pb.buf, '[')
	pb.buf = strconv.AppendInt(pb.buf, int64(i), 10)
	pb.buf = append(pb.buf, ']')
}

// Path joins non-empty path segments with dots.
func Path(parts ...string) string {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	}
	pb := acquirePath()
	defer pb.release()
	for _, p := range parts {
		if p != "" {
			pb.field(p)
		}
	}
	return string(pb.buf)
}

// Index appends an array index to path.
func Index(path string, i int) string {
	pb := acquirePath()
	defer pb.release()
	pb.buf = append(pb.buf, path...)
	pb.index(i)
	return string(pb.buf)
}

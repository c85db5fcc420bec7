package tracehub

import "github.com/frudas24/eaglermobile/internal/trace"

// ring keeps the most recent messages of one session.
type ring struct {
	buf   []trace.Message
	start int
	n     int
}

func newRing(capacity int) *ring {
	return &ring{buf: make([]trace.Message, capacity)}
}

// push appends msg, overwriting the oldest entry when full.
func (r *ring) push(msg trace.Message) {
	if r.n < len(r.buf) {
		r.buf[(r.start+r.n)%len(r.buf)] = msg
		r.n++
		return
	}
	r.buf[r.start] = msg
	r.start = (r.start + 1) % len(r.buf)
}

// items returns the stored messages oldest first.
func (r *ring) items() []trace.Message {
	out := make([]trace.Message, 0, r.n)
	for i := 0; i < r.n; i++ {
		out = append(out, r.buf[(r.start+i)%len(r.buf)])
	}
	return out
}

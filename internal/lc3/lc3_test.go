package lc3

// fakeHost is an in-memory lc3.Host for tests: output is captured to a
// buffer, input is served from a preloaded queue of bytes, and
// key-available reflects whether input remains. Setting eofReady
// simulates unix.Poll reporting POLLIN ready on an EOF'd stdin: KBSR reads
// see a key pending even though the queue is empty, and the ensuing
// ReadByte reports EOFWord, never a Go error.
type fakeHost struct {
	in       []byte
	pos      int
	out      []byte
	polled   int
	eofReady bool
}

func (h *fakeHost) KeyAvailable() bool {
	h.polled++
	return h.pos < len(h.in) || h.eofReady
}

func (h *fakeHost) ReadByte() (uint16, error) {
	if h.pos >= len(h.in) {
		return EOFWord, nil
	}
	b := h.in[h.pos]
	h.pos++
	return uint16(b), nil
}

func (h *fakeHost) WriteByte(b byte) error {
	h.out = append(h.out, b)
	return nil
}

func (h *fakeHost) Flush() error { return nil }

func newTestMachine(in ...byte) (*Machine, *fakeHost) {
	host := &fakeHost{in: in}
	m := NewMachine(host)
	m.Reset()
	return m, host
}

func load(m *Machine, origin uint16, words ...uint16) {
	for i, w := range words {
		m.Mem[origin+uint16(i)] = w
	}
}

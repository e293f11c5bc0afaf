package lc3

import (
	"encoding/binary"
	"errors"
	"io"
	"os"
)

// LoadImage reads an LC-3 object file at path into memory: the first
// big-endian 16-bit word is the origin, every subsequent big-endian word
// is placed at consecutive addresses starting there. A trailing odd byte
// is ignored. Addresses wrap modulo 2^16 should the image run past the
// top of memory.
func (m *Machine) LoadImage(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var origin uint16
	if err := binary.Read(f, binary.BigEndian, &origin); err != nil {
		return err
	}
	addr := origin

	buf := make([]byte, 2)
	for {
		_, err := io.ReadFull(f, buf)
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil
		}
		if err != nil {
			return err
		}
		m.Mem[addr] = binary.BigEndian.Uint16(buf)
		addr++
	}
}

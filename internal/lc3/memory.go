package lc3

import "log"

// MemWrite stores val at the given address. No side effects: writes to
// MMIO addresses simply overwrite the backing cell like any other.
func (m *Machine) MemWrite(addr, val uint16) {
	m.Mem[addr] = val
}

// MemRead returns the word at addr. Reading KBSR first consults the host's
// key-available predicate: if a key is pending, KBSR is set to 0x8000 and
// KBDR is loaded with the next byte from standard input (a blocking read
// of exactly one byte, EOFWord on end-of-file); otherwise KBSR is cleared
// to 0. The freshly written value is what's returned, so a subsequent read
// of KBDR observes the byte this call placed there.
func (m *Machine) MemRead(addr uint16) uint16 {
	if addr == MrKBSR {
		if m.Host.KeyAvailable() {
			b, err := m.Host.ReadByte()
			if err != nil {
				log.Fatalf("lc3: reading keyboard byte: %v", err)
			}
			m.Mem[MrKBSR] = 0x8000
			m.Mem[MrKBDR] = b
		} else {
			m.Mem[MrKBSR] = 0
		}
	}
	return m.Mem[addr]
}

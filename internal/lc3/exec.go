package lc3

import (
	"lc3vm/internal/bits"
)

// AbortError is returned by Step when it decodes RTI, RES, or any opcode
// outside 0..15. The emulator has no supervisor stack or interrupt vector
// table to service RTI, and RES is reserved; both are fatal per spec.
type AbortError struct {
	Op uint16
}

func (e *AbortError) Error() string {
	return "ABORTING..."
}

// Run executes instructions starting from the current PC until TRAP_HALT
// clears running or Step returns an error (illegal opcode, or a host I/O
// failure inside a TRAP).
func (m *Machine) Run() error {
	m.running = true
	for m.running {
		if err := m.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Step fetches the instruction at PC, advances PC, and dispatches it.
func (m *Machine) Step() error {
	instr := m.MemRead(m.Reg[RPC])
	m.Reg[RPC]++
	op := instr >> 12

	switch op {
	case OpBR:
		nzp := (instr >> 9) & 0x7
		if nzp&m.Reg[RCOND] != 0 {
			m.Reg[RPC] += bits.SignExtend(instr&0x1FF, 9)
		}

	case OpADD:
		dr := (instr >> 9) & 0x7
		sr1 := (instr >> 6) & 0x7
		if (instr>>5)&0x1 != 0 {
			imm5 := bits.SignExtend(instr&0x1F, 5)
			m.Reg[dr] = m.Reg[sr1] + imm5
		} else {
			sr2 := instr & 0x7
			m.Reg[dr] = m.Reg[sr1] + m.Reg[sr2]
		}
		m.updateFlags(dr)

	case OpLD:
		dr := (instr >> 9) & 0x7
		m.Reg[dr] = m.MemRead(m.Reg[RPC] + bits.SignExtend(instr&0x1FF, 9))
		m.updateFlags(dr)

	case OpST:
		sr := (instr >> 9) & 0x7
		m.MemWrite(m.Reg[RPC]+bits.SignExtend(instr&0x1FF, 9), m.Reg[sr])

	case OpJSR:
		m.Reg[R7] = m.Reg[RPC]
		if (instr>>11)&0x1 != 0 {
			m.Reg[RPC] += bits.SignExtend(instr&0x7FF, 11)
		} else {
			baseR := (instr >> 6) & 0x7
			m.Reg[RPC] = m.Reg[baseR]
		}

	case OpAND:
		dr := (instr >> 9) & 0x7
		sr1 := (instr >> 6) & 0x7
		if (instr>>5)&0x1 != 0 {
			imm5 := bits.SignExtend(instr&0x1F, 5)
			m.Reg[dr] = m.Reg[sr1] & imm5
		} else {
			sr2 := instr & 0x7
			m.Reg[dr] = m.Reg[sr1] & m.Reg[sr2]
		}
		m.updateFlags(dr)

	case OpLDR:
		dr := (instr >> 9) & 0x7
		baseR := (instr >> 6) & 0x7
		m.Reg[dr] = m.MemRead(m.Reg[baseR] + bits.SignExtend(instr&0x3F, 6))
		m.updateFlags(dr)

	case OpSTR:
		sr := (instr >> 9) & 0x7
		baseR := (instr >> 6) & 0x7
		m.MemWrite(m.Reg[baseR]+bits.SignExtend(instr&0x3F, 6), m.Reg[sr])

	case OpRTI:
		return &AbortError{Op: op}

	case OpNOT:
		dr := (instr >> 9) & 0x7
		sr1 := (instr >> 6) & 0x7
		m.Reg[dr] = ^m.Reg[sr1]
		m.updateFlags(dr)

	case OpLDI:
		dr := (instr >> 9) & 0x7
		off9 := bits.SignExtend(instr&0x1FF, 9)
		m.Reg[dr] = m.MemRead(m.MemRead(m.Reg[RPC] + off9))
		m.updateFlags(dr)

	case OpSTI:
		sr := (instr >> 9) & 0x7
		off9 := bits.SignExtend(instr&0x1FF, 9)
		m.MemWrite(m.MemRead(m.Reg[RPC]+off9), m.Reg[sr])

	case OpJMP:
		baseR := (instr >> 6) & 0x7
		m.Reg[RPC] = m.Reg[baseR]

	case OpRES:
		return &AbortError{Op: op}

	case OpLEA:
		dr := (instr >> 9) & 0x7
		m.Reg[dr] = m.Reg[RPC] + bits.SignExtend(instr&0x1FF, 9)
		m.updateFlags(dr)

	case OpTRAP:
		m.Reg[R7] = m.Reg[RPC]
		return m.trap(instr & 0xFF)

	default:
		return &AbortError{Op: op}
	}

	return nil
}

package lc3

import "fmt"

// Trap vectors.
const (
	TrapGETC  = 0x20
	TrapOUT   = 0x21
	TrapPUTS  = 0x22
	TrapIN    = 0x23
	TrapPUTSP = 0x24
	TrapHALT  = 0x25
)

// trap dispatches vec to the matching native service routine. Unrecognized
// vectors leave machine state unchanged, per spec.
func (m *Machine) trap(vec uint16) error {
	switch vec {
	case TrapGETC:
		// ReadByte reports end-of-file as (EOFWord, nil), never an error;
		// it lands in R0 verbatim, exactly as the original's unguarded
		// getchar() widens EOF (-1) to 0xFFFF.
		b, err := m.Host.ReadByte()
		if err != nil {
			return fmt.Errorf("lc3: TRAP GETC: %w", err)
		}
		m.Reg[R0] = b
		m.updateFlags(R0)

	case TrapOUT:
		if err := m.Host.WriteByte(byte(m.Reg[R0])); err != nil {
			return fmt.Errorf("lc3: TRAP OUT: %w", err)
		}
		if err := m.Host.Flush(); err != nil {
			return fmt.Errorf("lc3: TRAP OUT: %w", err)
		}

	case TrapPUTS:
		addr := m.Reg[R0]
		for {
			c := m.Mem[addr]
			if c == 0 {
				break
			}
			if err := m.Host.WriteByte(byte(c)); err != nil {
				return fmt.Errorf("lc3: TRAP PUTS: %w", err)
			}
			addr++
		}
		if err := m.Host.Flush(); err != nil {
			return fmt.Errorf("lc3: TRAP PUTS: %w", err)
		}

	case TrapIN:
		for _, c := range "Enter a character: " {
			if err := m.Host.WriteByte(byte(c)); err != nil {
				return fmt.Errorf("lc3: TRAP IN: %w", err)
			}
		}
		b, err := m.Host.ReadByte()
		if err != nil {
			return fmt.Errorf("lc3: TRAP IN: %w", err)
		}
		// Echo the low byte, same as the original's putc(c, stdout): on
		// EOF this writes 0xFF, matching getchar()'s widened sentinel.
		if err := m.Host.WriteByte(byte(b)); err != nil {
			return fmt.Errorf("lc3: TRAP IN: %w", err)
		}
		if err := m.Host.Flush(); err != nil {
			return fmt.Errorf("lc3: TRAP IN: %w", err)
		}
		m.Reg[R0] = b
		m.updateFlags(R0)

	case TrapPUTSP:
		addr := m.Reg[R0]
		for {
			c := m.Mem[addr]
			if c == 0 {
				break
			}
			lo := byte(c & 0xFF)
			hi := byte(c >> 8)
			if err := m.Host.WriteByte(lo); err != nil {
				return fmt.Errorf("lc3: TRAP PUTSP: %w", err)
			}
			if hi != 0 {
				if err := m.Host.WriteByte(hi); err != nil {
					return fmt.Errorf("lc3: TRAP PUTSP: %w", err)
				}
			}
			addr++
		}
		if err := m.Host.Flush(); err != nil {
			return fmt.Errorf("lc3: TRAP PUTSP: %w", err)
		}

	case TrapHALT:
		for _, c := range "HALT\n" {
			if err := m.Host.WriteByte(byte(c)); err != nil {
				return fmt.Errorf("lc3: TRAP HALT: %w", err)
			}
		}
		if err := m.Host.Flush(); err != nil {
			return fmt.Errorf("lc3: TRAP HALT: %w", err)
		}
		m.running = false
	}

	return nil
}

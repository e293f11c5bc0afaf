// Package lc3 implements the LC-3 fetch-decode-execute interpreter: its
// register file, memory (including memory-mapped I/O), object-image
// loader, and TRAP service routines.
package lc3

// Register indices into Machine.Reg. R0..R7 are general purpose; PC and
// COND are kept in the same array so the decoder can address any of them
// uniformly.
const (
	R0 = iota
	R1
	R2
	R3
	R4
	R5
	R6
	R7
	RPC
	RCOND
	RCount
)

// Opcodes, bits 15..12 of an instruction.
const (
	OpBR = iota
	OpADD
	OpLD
	OpST
	OpJSR
	OpAND
	OpLDR
	OpSTR
	OpRTI
	OpNOT
	OpLDI
	OpSTI
	OpJMP
	OpRES
	OpLEA
	OpTRAP
)

// Condition flags. Exactly one is ever set in Reg[RCOND].
const (
	FlPOS uint16 = 1 << 0
	FlZRO uint16 = 1 << 1
	FlNEG uint16 = 1 << 2
)

// Memory-mapped register addresses.
const (
	MrKBSR uint16 = 0xFE00
	MrKBDR uint16 = 0xFE02
)

// PCStart is the conventional origin for guest programs.
const PCStart uint16 = 0x3000

// MemSize is the number of addressable 16-bit words.
const MemSize = 1 << 16

// EOFWord is the value a blocking read reports on end-of-file. It mirrors
// the original C implementation's bare getchar(), whose EOF (-1) sentinel
// widens to 0xFFFF once cast to uint16_t; spec.md's error kind 6 requires
// the same: EOF is a defined register value, never an error.
const EOFWord uint16 = 0xFFFF

// Host is the collaborator the core consumes for everything that
// ultimately touches the real terminal: the nonblocking key-available
// predicate behind KBSR, and the blocking byte reads/writes the TRAP
// service routines perform.
type Host interface {
	// KeyAvailable reports, without blocking, whether at least one byte
	// is waiting to be read from standard input.
	KeyAvailable() bool
	// ReadByte blocks until one byte is available on standard input and
	// returns it. End-of-file is not an error: it is reported as
	// (EOFWord, nil) so callers can store it verbatim into a register,
	// the way the original's unguarded getchar() does.
	ReadByte() (uint16, error)
	// WriteByte writes a single byte to standard output.
	WriteByte(b byte) error
	// Flush flushes any buffered output.
	Flush() error
}

// Machine holds all interpreter state: the register file and main
// memory. It has no save/restore; a fresh Machine is created once per
// process invocation.
type Machine struct {
	Reg [RCount]uint16
	Mem [MemSize]uint16

	Host Host

	// running is cleared by TRAP_HALT to stop Run's loop.
	running bool
}

// NewMachine returns a zero-initialized machine wired to host for I/O.
func NewMachine(host Host) *Machine {
	return &Machine{Host: host}
}

// Reset sets PC to the conventional load address and COND to ZRO, as
// required after images are loaded and before execution starts.
func (m *Machine) Reset() {
	m.Reg[RPC] = PCStart
	m.Reg[RCOND] = FlZRO
}

// updateFlags sets COND from the signed interpretation of the value just
// written to register r.
func (m *Machine) updateFlags(r uint16) {
	switch {
	case m.Reg[r] == 0:
		m.Reg[RCOND] = FlZRO
	case m.Reg[r]>>15 == 1:
		m.Reg[RCOND] = FlNEG
	default:
		m.Reg[RCOND] = FlPOS
	}
}

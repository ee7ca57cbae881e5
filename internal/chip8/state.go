// Package chip8 is a Chip-8 virtual machine written in Go. Chip-8 used to be implemented on 4k systems
// like the Telmac 1800 and Cosmac VIP where the interpreter itself occupied the first 512 bytes of
// memory (up to 0x200). In this implementation, where the interpreter runs natively outside the 4K
// memory space, there is no need to avoid the lower 512 bytes, and the font data is stored there instead.
package chip8

//		System memory map
// 		+---------------+= 0xFFF (4095) End Chip-8 RAM
// 		|               |
// 		| 0x200 to 0xFFF|
// 		|     Chip-8    |
// 		| Program / Data|
// 		|     Space     |
// 		|               |
// 		+- - - - - - - -+= 0x600 (1536) Start ETI 660 Chip-8 programs
// 		|               |
// 		+---------------+= 0x200 (512) Start of most Chip-8 programs
// 		| 0x000 to 0x1FF|
// 		| Reserved for  |
// 		|  interpreter  |
// 		+---------------+= 0x000 (0) Begin Chip-8 RAM. Font data lives here instead.
//

const (
	memSize          = 4096
	memStart         = 0x200
	fontStart        = 0x050
	stackDepth       = 16
	displayWidth     = 64
	displayHeight    = 32
	maxRomSize       = memSize - memStart
	registerCount    = 16
	flagRegister     = 0xF
	ticksPerSecond60 = 60
)

// State holds every mutable field of the virtual machine. It has no behavior beyond field access;
// the Loader initializes it, the Executor and Cycle driver mutate it, and host code reads it.
type State struct {
	// Memory is the full 4KiB address space: font table at 0x050, ROM at 0x200.
	Memory [memSize]byte

	// V holds the 16 general purpose 8-bit registers V0-VF. VF doubles as the flag
	// output for carry/borrow/shift/collision and is always written last.
	V [registerCount]byte

	// I is the 12-bit index register, stored in a 16-bit cell so ADD I, Vx can be
	// observed overflowing past 0xFFF without wrapping silently.
	I uint16

	// PC is the 12-bit program counter. It is its own field, independent of the
	// call stack, unlike the interpreter this is adapted from, which aliased PC to
	// the top of the stack.
	PC uint16

	// Stack holds up to 16 12-bit return addresses pushed by CALL and popped by RET.
	Stack [stackDepth]uint16

	// SP is the number of live entries in Stack (0 = empty).
	SP uint16

	// DT is the 8-bit delay timer, decremented at 60Hz while > 0.
	DT byte

	// ST is the 8-bit sound timer, decremented at 60Hz while > 0. The host is
	// expected to emit tone while ST > 0.
	ST byte

	// Opcode is the 16-bit instruction word most recently fetched.
	Opcode uint16
}

// PCValid reports whether PC currently addresses a fetchable two-byte opcode.
func (s *State) PCValid() bool {
	return s.PC < memSize-1
}

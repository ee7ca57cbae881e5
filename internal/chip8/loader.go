package chip8

// FontSet is the built-in 80-byte hex digit font (0-F), 5 bytes per glyph, written into memory
// at fontStart by Load. Each row is one byte; the high nibble is the visible 4x5 sprite column.
var FontSet = [80]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// Load initializes a fresh State from ROM bytes: zeroes memory, writes the font table at
// fontStart, writes rom at memStart, and resets registers, stack, PC, I, DT, ST and SP.
func Load(rom []byte) (*State, error) {
	if len(rom) > maxRomSize {
		return nil, ErrRomTooLarge
	}

	s := &State{}
	copy(s.Memory[fontStart:fontStart+len(FontSet)], FontSet[:])
	copy(s.Memory[memStart:memStart+len(rom)], rom)
	s.PC = memStart

	return s, nil
}

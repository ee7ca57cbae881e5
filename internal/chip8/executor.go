package chip8

import "math/rand"

// Execute applies a decoded Instruction to State s, mutating exactly the fields that
// instruction's semantics call for - nothing else is touched. fb and kp are the
// framebuffer and keypad the instruction may read or write; rng supplies RND's random byte;
// legacyShift selects the legacy Vy-sourced SHR/SHL quirk instead of the modern Vx-only default.
//
// PC has already been advanced by 2 for the normal post-fetch case before Execute runs;
// branch/call/skip/Fx0A-block instructions adjust it further here.
func Execute(s *State, fb *Framebuffer, kp *Keypad, rng *rand.Rand, legacyShift bool, in Instruction) error {
	switch in.Op {
	case OpCLS:
		fb.Clear()

	case OpRET:
		if s.SP == 0 {
			return &StackUnderflowError{PC: s.PC}
		}
		s.SP--
		s.PC = s.Stack[s.SP]

	case OpSYS:
		// ignored

	case OpJP:
		s.PC = in.NNN

	case OpCALL:
		if s.SP >= stackDepth {
			return &StackOverflowError{PC: s.PC}
		}
		s.Stack[s.SP] = s.PC
		s.SP++
		s.PC = in.NNN

	case OpSEVxByte:
		if s.V[in.X] == in.NN {
			s.PC += 2
		}

	case OpSNEVxByte:
		if s.V[in.X] != in.NN {
			s.PC += 2
		}

	case OpSEVxVy:
		if s.V[in.X] == s.V[in.Y] {
			s.PC += 2
		}

	case OpSNEVxVy:
		if s.V[in.X] != s.V[in.Y] {
			s.PC += 2
		}

	case OpLDVxByte:
		s.V[in.X] = in.NN

	case OpADDVxByte:
		s.V[in.X] = s.V[in.X] + in.NN

	case OpLDVxVy:
		s.V[in.X] = s.V[in.Y]

	case OpORVxVy:
		s.V[in.X] |= s.V[in.Y]

	case OpANDVxVy:
		s.V[in.X] &= s.V[in.Y]

	case OpXORVxVy:
		s.V[in.X] ^= s.V[in.Y]

	case OpADDVxVy:
		sum := uint16(s.V[in.X]) + uint16(s.V[in.Y])
		result := byte(sum)
		var flag byte
		if sum > 0xFF {
			flag = 1
		}
		s.V[in.X] = result
		s.V[flagRegister] = flag

	case OpSUBVxVy:
		var flag byte
		if s.V[in.X] > s.V[in.Y] {
			flag = 1
		}
		result := s.V[in.X] - s.V[in.Y]
		s.V[in.X] = result
		s.V[flagRegister] = flag

	case OpSHRVx:
		src := s.V[in.X]
		if legacyShift {
			src = s.V[in.Y]
		}
		flag := src & 0x1
		result := src >> 1
		s.V[in.X] = result
		s.V[flagRegister] = flag

	case OpSUBNVxVy:
		var flag byte
		if s.V[in.Y] > s.V[in.X] {
			flag = 1
		}
		result := s.V[in.Y] - s.V[in.X]
		s.V[in.X] = result
		s.V[flagRegister] = flag

	case OpSHLVx:
		src := s.V[in.X]
		if legacyShift {
			src = s.V[in.Y]
		}
		flag := (src >> 7) & 0x1
		result := src << 1
		s.V[in.X] = result
		s.V[flagRegister] = flag

	case OpLDI:
		s.I = in.NNN

	case OpJPV0:
		s.PC = in.NNN + uint16(s.V[0])

	case OpRND:
		s.V[in.X] = byte(rng.Intn(256)) & in.NN

	case OpDRW:
		if in.N == 0 {
			return &InvalidSpriteHeightError{PC: s.PC}
		}
		if err := checkRange(s.I, int(in.N)); err != nil {
			return err
		}
		sprite := s.Memory[s.I : s.I+uint16(in.N)]
		collision := fb.DrawSprite(s.V[in.X], s.V[in.Y], sprite)
		var flag byte
		if collision {
			flag = 1
		}
		s.V[flagRegister] = flag

	case OpSKP:
		if kp.IsPressed(s.V[in.X]) {
			s.PC += 2
		}

	case OpSKNP:
		if !kp.IsPressed(s.V[in.X]) {
			s.PC += 2
		}

	case OpLDVxDT:
		s.V[in.X] = s.DT

	case OpLDVxK:
		if key, ok := kp.FirstPressed(); ok {
			s.V[in.X] = key
		} else {
			// block: re-execute this same instruction next tick.
			s.PC -= 2
		}

	case OpLDDTVx:
		s.DT = s.V[in.X]

	case OpLDSTVx:
		s.ST = s.V[in.X]

	case OpADDIVx:
		s.I += uint16(s.V[in.X])

	case OpLDFVx:
		s.I = fontStart + 5*uint16(s.V[in.X]&0xF)

	case OpLDBVx:
		if err := checkRange(s.I, 3); err != nil {
			return err
		}
		val := s.V[in.X]
		s.Memory[s.I] = val / 100
		s.Memory[s.I+1] = (val / 10) % 10
		s.Memory[s.I+2] = val % 10

	case OpLDIVx:
		if err := checkRange(s.I, int(in.X)+1); err != nil {
			return err
		}
		for i := 0; i <= int(in.X); i++ {
			s.Memory[int(s.I)+i] = s.V[i]
		}

	case OpLDVxI:
		if err := checkRange(s.I, int(in.X)+1); err != nil {
			return err
		}
		for i := 0; i <= int(in.X); i++ {
			s.V[i] = s.Memory[int(s.I)+i]
		}

	default:
		return &IllegalInstructionError{Op: in.Raw, PC: s.PC}
	}

	return nil
}

// checkRange verifies that the half-open memory window [start, start+count) lies within
// addressable memory, returning MemoryOutOfBoundsError otherwise. I can exceed 0xFFF after
// ADD I, Vx; any access through it must error rather than silently wrap.
func checkRange(start uint16, count int) error {
	end := int(start) + count
	if end > memSize {
		return &MemoryOutOfBoundsError{Addr: uint32(start) + uint32(count) - 1}
	}
	return nil
}

package chip8

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeTable(t *testing.T) {
	cases := []struct {
		op   uint16
		want Op
	}{
		{0x00E0, OpCLS},
		{0x00EE, OpRET},
		{0x0123, OpSYS},
		{0x1234, OpJP},
		{0x2345, OpCALL},
		{0x3A12, OpSEVxByte},
		{0x4A12, OpSNEVxByte},
		{0x5AB0, OpSEVxVy},
		{0x6A12, OpLDVxByte},
		{0x7A12, OpADDVxByte},
		{0x8AB0, OpLDVxVy},
		{0x8AB1, OpORVxVy},
		{0x8AB2, OpANDVxVy},
		{0x8AB3, OpXORVxVy},
		{0x8AB4, OpADDVxVy},
		{0x8AB5, OpSUBVxVy},
		{0x8AB6, OpSHRVx},
		{0x8AB7, OpSUBNVxVy},
		{0x8ABE, OpSHLVx},
		{0x9AB0, OpSNEVxVy},
		{0xA123, OpLDI},
		{0xB123, OpJPV0},
		{0xCA12, OpRND},
		{0xDAB5, OpDRW},
		{0xEA9E, OpSKP},
		{0xEAA1, OpSKNP},
		{0xFA07, OpLDVxDT},
		{0xFA0A, OpLDVxK},
		{0xFA15, OpLDDTVx},
		{0xFA18, OpLDSTVx},
		{0xFA1E, OpADDIVx},
		{0xFA29, OpLDFVx},
		{0xFA33, OpLDBVx},
		{0xFA55, OpLDIVx},
		{0xFA65, OpLDVxI},
	}

	for _, c := range cases {
		got := Decode(c.op)
		require.Equalf(t, c.want, got.Op, "opcode %04X", c.op)
	}
}

func TestDecodeUnknownIsInvalid(t *testing.T) {
	require.Equal(t, OpInvalid, Decode(0x5AB1).Op)
	require.Equal(t, OpInvalid, Decode(0x9AB1).Op)
	require.Equal(t, OpInvalid, Decode(0x8ABF).Op)
	require.Equal(t, OpInvalid, Decode(0xEA00).Op)
	require.Equal(t, OpInvalid, Decode(0xFAFF).Op)
}

func TestOperandExtraction(t *testing.T) {
	in := Decode(0x8AB4)
	require.EqualValues(t, 0xA, in.X)
	require.EqualValues(t, 0xB, in.Y)
	require.EqualValues(t, 0x4, in.N)

	in = Decode(0xDAB5)
	require.EqualValues(t, 0xA, in.X)
	require.EqualValues(t, 0xB, in.Y)
	require.EqualValues(t, 0x5, in.N)
}

func TestDisassembly(t *testing.T) {
	require.Equal(t, "CLS", Decode(0x00E0).Disassembly())
	require.Equal(t, "LD     V3, #2A", Decode(0x632A).Disassembly())
	require.Equal(t, "DRW    V2, V3, #5", Decode(0xD235).Disassembly())
}

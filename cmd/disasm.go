package cmd

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/bradford-hamilton/chippy/internal/chip8"
)

// disasmCmd prints a static disassembly of a ROM, one instruction per line, without running it.
var disasmCmd = &cobra.Command{
	Use:   "disasm `path/to/rom`",
	Short: "disassemble a chip-8 rom",
	Args:  cobra.ExactArgs(1),
	RunE:  runDisasm,
}

func runDisasm(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return errors.Wrap(err, "reading rom")
	}

	state, err := chip8.Load(raw)
	if err != nil {
		return errors.Wrap(err, "loading rom")
	}

	// Walk the ROM two bytes at a time from its load address. This is a naive linear sweep, not
	// a control-flow-aware disassembler: embedded data in the ROM will print as garbage
	// instructions, same tradeoff every simple chip-8 disassembler makes.
	for pc := uint16(0x200); int(pc)+1 < 0x200+len(raw); pc += 2 {
		op := binary.BigEndian.Uint16(state.Memory[pc : pc+2])
		in := chip8.Decode(op)
		fmt.Printf("%04X  %04X  %s\n", pc, op, in.Disassembly())
	}

	return nil
}

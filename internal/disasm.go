package internal

import (
	"fmt"
	"strings"
)

// disassembleChunk returns a listing of every instruction in c. It only
// reads the chunk through its accessors.
func disassembleChunk(c *Chunk, name string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("== %s ==\n", name))

	for offset := 0; offset < c.codeLen(); {
		text, length := disassembleInstruction(c, offset)

		line := c.lineAt(offset)
		if offset > 0 && line == c.lineAt(offset-1) {
			sb.WriteString(fmt.Sprintf("%04d    | %s\n", offset, text))
		} else {
			sb.WriteString(fmt.Sprintf("%04d %4d %s\n", offset, line, text))
		}

		offset += length
	}

	return sb.String()
}

// disassembleInstruction formats the instruction at offset and returns
// its length in bytes.
func disassembleInstruction(c *Chunk, offset int) (string, int) {
	op := opcode(c.byteAt(offset))
	width := op.operandWidth()

	if width < 0 {
		return fmt.Sprintf("Unknown opcode %d", byte(op)), 1
	}
	if offset+width >= c.codeLen() {
		return fmt.Sprintf("%-18s <truncated>", op), c.codeLen() - offset
	}

	switch op {
	case opGetLocal, opSetLocal:
		return fmt.Sprintf("%-18s %4d", op, c.byteAt(offset+1)), 2
	case opConstant, opConstantLong,
		opDefGlobal, opDefGlobalLong,
		opGetGlobal, opGetGlobalLong,
		opSetGlobal, opSetGlobalLong:
		index, length := c.readIndex(offset)
		value := "<missing>"
		if index < c.constantCount() {
			value = c.constantAt(index).String()
		}
		return fmt.Sprintf("%-18s %4d '%s'", op, index, value), length
	}

	return op.String(), 1
}

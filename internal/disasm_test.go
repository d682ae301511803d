package internal

import (
	"strings"
	"testing"
)

func TestDisassembleChunk(t *testing.T) {
	chunk := compileForTest(t, "var greeting = \"hi\";\n{ var n = 1;\nprint -n; }")
	defer chunk.free()

	expected := strings.Join([]string{
		"== test ==",
		"0000    1 OP_CONSTANT           0 'hi'",
		"0002    | OP_DEF_GLOBAL         1 'greeting'",
		"0004    2 OP_CONSTANT           2 '1'",
		"0006    3 OP_GET_LOCAL          0",
		"0008    | OP_NEGATE",
		"0009    | OP_PRINT",
		"0010    | OP_POP",
		"0011    | OP_RETURN",
		"",
	}, "\n")

	if got := disassembleChunk(chunk, "test"); got != expected {
		t.Errorf("disassembly:\n%s\nwant:\n%s", got, expected)
	}
}

func TestDisassembleLongForm(t *testing.T) {
	c := newChunk()
	defer c.free()
	for i := 0; i < 300; i++ {
		c.addConstant(numberValue(float64(i)))
	}
	c.writeIndexed(opGetGlobal, 299, 7)

	text, length := disassembleInstruction(c, 0)
	if length != 4 {
		t.Errorf("length = %d, want 4", length)
	}
	if text != "OP_GET_GLOBAL_LONG  299 '299'" {
		t.Errorf("text = %q", text)
	}
}

func TestDisassembleMalformed(t *testing.T) {
	c := newChunk()
	defer c.free()
	c.write(byte(opcodeCount)+10, 1)
	c.writeOp(opConstant, 1)

	text, length := disassembleInstruction(c, 0)
	if length != 1 || !strings.HasPrefix(text, "Unknown opcode") {
		t.Errorf("unknown opcode = %q, %d", text, length)
	}

	// The operand byte is missing.
	text, length = disassembleInstruction(c, 1)
	if length != 1 || !strings.Contains(text, "<truncated>") {
		t.Errorf("truncated instruction = %q, %d", text, length)
	}
}

func TestOpcodeNames(t *testing.T) {
	for op := opcode(0); op < opcodeCount; op++ {
		if !strings.HasPrefix(op.String(), "OP_") || op.operandWidth() < 0 {
			t.Errorf("opcode %d has no table entry", byte(op))
		}
	}
	if opConstant.longForm() != opConstantLong || opSetGlobal.longForm() != opSetGlobalLong {
		t.Error("longForm does not map to the long variants")
	}
	if opPop.longForm() != opPop {
		t.Error("longForm changed an opcode without a long variant")
	}
}

package internal

import "fmt"

type opcode byte

const (
	opConstant opcode = iota
	opConstantLong
	opDefGlobal
	opDefGlobalLong
	opGetGlobal
	opGetGlobalLong
	opSetGlobal
	opSetGlobalLong
	opGetLocal
	opSetLocal
	opNil
	opTrue
	opFalse
	opNegate
	opAdd
	opSubtract
	opMultiply
	opDivide
	opNot
	opEqual
	opNotEqual
	opLess
	opLessEqual
	opGreater
	opGreaterEqual
	opPrint
	opPop
	opReturn

	opcodeCount
)

type opcodeInfo struct {
	name string
	// operand is the number of operand bytes following the opcode.
	operand int
}

var opcodeInfos = [...]opcodeInfo{
	opConstant:      {"OP_CONSTANT", 1},
	opConstantLong:  {"OP_CONSTANT_LONG", 3},
	opDefGlobal:     {"OP_DEF_GLOBAL", 1},
	opDefGlobalLong: {"OP_DEF_GLOBAL_LONG", 3},
	opGetGlobal:     {"OP_GET_GLOBAL", 1},
	opGetGlobalLong: {"OP_GET_GLOBAL_LONG", 3},
	opSetGlobal:     {"OP_SET_GLOBAL", 1},
	opSetGlobalLong: {"OP_SET_GLOBAL_LONG", 3},
	opGetLocal:      {"OP_GET_LOCAL", 1},
	opSetLocal:      {"OP_SET_LOCAL", 1},
	opNil:           {"OP_NIL", 0},
	opTrue:          {"OP_TRUE", 0},
	opFalse:         {"OP_FALSE", 0},
	opNegate:        {"OP_NEGATE", 0},
	opAdd:           {"OP_ADD", 0},
	opSubtract:      {"OP_SUBTRACT", 0},
	opMultiply:      {"OP_MULTIPLY", 0},
	opDivide:        {"OP_DIVIDE", 0},
	opNot:           {"OP_NOT", 0},
	opEqual:         {"OP_EQUAL", 0},
	opNotEqual:      {"OP_NOT_EQUAL", 0},
	opLess:          {"OP_LESS", 0},
	opLessEqual:     {"OP_LESS_EQUAL", 0},
	opGreater:       {"OP_GREATER", 0},
	opGreaterEqual:  {"OP_GREATER_EQUAL", 0},
	opPrint:         {"OP_PRINT", 0},
	opPop:           {"OP_POP", 0},
	opReturn:        {"OP_RETURN", 0},
}

func (op opcode) String() string {
	if op < opcodeCount {
		return opcodeInfos[op].name
	}
	return fmt.Sprintf("OP_UNKNOWN(%d)", byte(op))
}

// operandWidth returns the number of operand bytes, or -1 for an unknown opcode.
func (op opcode) operandWidth() int {
	if op < opcodeCount {
		return opcodeInfos[op].operand
	}
	return -1
}

// longForm maps a pool-indexed opcode to its 3-byte operand variant.
func (op opcode) longForm() opcode {
	switch op {
	case opConstant, opDefGlobal, opGetGlobal, opSetGlobal:
		return op + 1
	}
	return op
}

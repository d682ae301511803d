package internal

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

func (vm *VM) run() InterpretResult {
	for {
		start := vm.ip
		if vm.trace {
			vm.traceInstruction(start)
		}

		op := opcode(vm.readByte())
		switch op {
		case opConstant, opConstantLong:
			vm.push(vm.readConstant(start))

		case opDefGlobal, opDefGlobalLong:
			name := vm.readConstant(start).asString()
			if err := vm.globals.define(name, vm.peek(0)); err != nil {
				return vm.runtimeError(err, err.Error(), start)
			}
			vm.pop()

		case opGetGlobal, opGetGlobalLong:
			name := vm.readConstant(start).asString()
			value, err := vm.globals.get(name)
			if err != nil {
				return vm.runtimeError(err, undefinedMessage(name), start)
			}
			vm.push(value)

		case opSetGlobal, opSetGlobalLong:
			name := vm.readConstant(start).asString()
			if err := vm.globals.assign(name, vm.peek(0)); err != nil {
				return vm.runtimeError(err, undefinedMessage(name), start)
			}

		case opGetLocal:
			slot := vm.readByte()
			vm.push(vm.stack[slot])

		case opSetLocal:
			slot := vm.readByte()
			vm.stack[slot] = vm.peek(0)

		case opNil:
			vm.push(nilValue())
		case opTrue:
			vm.push(boolValue(true))
		case opFalse:
			vm.push(boolValue(false))

		case opNegate:
			if !vm.peek(0).isNumber() {
				return vm.runtimeError(errOnlyNumber, errOnlyNumber.Error(), start)
			}
			vm.push(numberValue(-vm.pop().number))

		case opAdd:
			b := vm.pop()
			a := vm.pop()
			result, err := addValues(a, b)
			if err != nil {
				return vm.runtimeError(err, err.Error(), start)
			}
			vm.push(result)

		case opSubtract, opMultiply, opDivide, opLess, opLessEqual, opGreater, opGreaterEqual:
			if !vm.peek(0).isNumber() || !vm.peek(1).isNumber() {
				return vm.runtimeError(errOnlyNumbers, errOnlyNumbers.Error(), start)
			}
			b := vm.pop()
			a := vm.pop()
			vm.push(numberBinaryOperations[op](a.number, b.number))

		case opNot:
			vm.push(boolValue(vm.pop().isFalsey()))

		case opEqual:
			b := vm.pop()
			a := vm.pop()
			vm.push(boolValue(a.equals(b)))

		case opNotEqual:
			b := vm.pop()
			a := vm.pop()
			vm.push(boolValue(!a.equals(b)))

		case opPrint:
			vm.printer.Println(vm.pop().String())

		case opPop:
			vm.pop()

		case opReturn:
			return InterpretSuccess

		default:
			return vm.runtimeError(errUnknownOpcode, fmt.Sprintf("Unknown opcode %d.", byte(op)), start)
		}
	}
}

func undefinedMessage(name *luxString) string {
	return fmt.Sprintf("Undefined variable '%s'.", name)
}

func (vm *VM) readByte() byte {
	b := vm.chunk.byteAt(vm.ip)
	vm.ip++
	return b
}

// readConstant decodes the pool index of the instruction at start, short
// or long form, and leaves ip after its operand.
func (vm *VM) readConstant(start int) Value {
	index, length := vm.chunk.readIndex(start)
	vm.ip = start + length
	return vm.chunk.constantAt(index)
}

func (vm *VM) push(v Value) {
	vm.stack = append(vm.stack, v)
}

func (vm *VM) pop() Value {
	v := vm.stack[len(vm.stack)-1]
	vm.stack = vm.stack[:len(vm.stack)-1]
	return v
}

func (vm *VM) peek(distance int) Value {
	return vm.stack[len(vm.stack)-1-distance]
}

func (vm *VM) resetStack() {
	vm.stack = vm.stack[:0]
}

// runtimeError reports err against the line of the instruction at offset
// and abandons the run. The stack is cleared, not unwound.
func (vm *VM) runtimeError(err error, msg string, offset int) InterpretResult {
	line := vm.chunk.lineAt(offset)
	vm.state.runtimeErr(err, msg, line)
	vm.logger.WithFields(logrus.Fields{
		"line":   line,
		"offset": offset,
	}).Debug("runtime error")
	vm.resetStack()
	return InterpretRuntimeError
}

func (vm *VM) traceInstruction(offset int) {
	var sb strings.Builder
	for _, v := range vm.stack {
		sb.WriteString("[ ")
		sb.WriteString(v.String())
		sb.WriteString(" ]")
	}
	text, _ := disassembleInstruction(vm.chunk, offset)
	vm.logger.WithField("stack", sb.String()).Debug(text)
}

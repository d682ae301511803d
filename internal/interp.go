package internal

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// IPrinter printer interface
type IPrinter interface {
	Println(a ...interface{}) (n int, err error)
	Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error)
	Fprintln(w io.Writer, a ...interface{}) (n int, err error)
}

type stdPrinter struct{}

func (s stdPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Println(a...)
}

func (s stdPrinter) Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error) {
	return fmt.Fprintf(w, format, a...)
}

func (s stdPrinter) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	return fmt.Fprintln(w, a...)
}

// InterpretResult classifies how an Interpret call ended
type InterpretResult int

const (
	InterpretSuccess InterpretResult = iota
	InterpretCompileError
	InterpretRuntimeError
)

func (r InterpretResult) String() string {
	switch r {
	case InterpretSuccess:
		return "success"
	case InterpretCompileError:
		return "compile error"
	case InterpretRuntimeError:
		return "runtime error"
	}
	return "unknown"
}

// VM compiles and runs Lux source. A VM is not safe for concurrent use.
type VM struct {
	chunk   *Chunk
	ip      int
	stack   []Value
	globals *env

	state   *interpreterState
	printer IPrinter
	logger  *logrus.Logger
	trace   bool
	dump    bool
}

// Option configures a VM
type Option func(vm *VM)

// WithPrinter sends program output and diagnostics to p
func WithPrinter(p IPrinter) Option {
	return func(vm *VM) {
		vm.printer = p
	}
}

// WithLogger sets the logger used for debug output
func WithLogger(l *logrus.Logger) Option {
	return func(vm *VM) {
		vm.logger = l
	}
}

// WithDebug applies the debug section of the configuration
func WithDebug(cfg DebugConfig) Option {
	return func(vm *VM) {
		vm.dump = cfg.PrintCode
		vm.trace = cfg.TraceExecution
	}
}

// NewVM creates a VM with an empty global table
func NewVM(opts ...Option) *VM {
	vm := &VM{
		stack:   make([]Value, 0, 256),
		globals: newEnv(),
		printer: stdPrinter{},
		logger:  discardLogger(),
	}
	for _, opt := range opts {
		opt(vm)
	}
	return vm
}

// Interpret compiles source and, if that succeeds, runs it. Globals from
// earlier calls are discarded first.
func (vm *VM) Interpret(source string) InterpretResult {
	vm.state = newInterpreterState(vm.printer)

	chunk, ok := compile(source, vm.state)
	defer chunk.free()

	if !ok {
		vm.logger.WithField("errors", len(vm.state.errors)).Debug("compilation failed")
		return InterpretCompileError
	}
	if vm.dump {
		vm.logger.Debug("\n" + disassembleChunk(chunk, "code"))
	}

	vm.chunk = chunk
	vm.ip = 0
	vm.globals.reset()
	vm.resetStack()

	result := vm.run()

	vm.logger.WithFields(logrus.Fields{
		"result":    result.String(),
		"bytes":     chunk.codeLen(),
		"constants": chunk.constantCount(),
		"objects":   chunk.heap.len(),
	}).Debug("interpret finished")

	// The table's keys point into the chunk's heap, which is about to go.
	vm.globals.reset()
	vm.chunk = nil
	return result
}

// RunSourceWithPrinter runs source code on a fresh VM instance
func RunSourceWithPrinter(source string, p IPrinter) InterpretResult {
	return NewVM(WithPrinter(p)).Interpret(source)
}

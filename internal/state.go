package internal

import (
	"errors"
	"fmt"
	"os"
)

// compileError is a problem found while scanning or parsing. Several may be
// reported for a single compile call.
type compileError struct {
	err error
	tk  token
}

func (e *compileError) Error() string {
	where := ""
	switch e.tk.token {
	case tkEOF:
		where = " at end"
	case tkError:
	default:
		where = fmt.Sprintf(" at '%s'", e.tk.lexeme)
	}
	return fmt.Sprintf("[line %d | col %d] Error%s: %s", e.tk.line, e.tk.col, where, e.err)
}

func (e *compileError) Unwrap() error {
	return e.err
}

// runtimeError stops the VM. At most one is reported per run.
type runtimeError struct {
	err  error
	msg  string
	line int
}

func (e *runtimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d] in script", e.msg, e.line)
}

func (e *runtimeError) Unwrap() error {
	return e.err
}

// interpreterState collects the diagnostics of one Interpret call and
// writes them through the printer.
type interpreterState struct {
	errors       []*compileError
	runtimeError *runtimeError
	logger       IPrinter
}

func newInterpreterState(p IPrinter) *interpreterState {
	return &interpreterState{
		errors: make([]*compileError, 0),
		logger: p,
	}
}

func (s *interpreterState) setError(err error, tk token) {
	ce := &compileError{err: err, tk: tk}
	s.errors = append(s.errors, ce)
	s.logger.Fprintln(os.Stderr, ce.Error())
}

func (s *interpreterState) runtimeErr(err error, msg string, line int) {
	s.runtimeError = &runtimeError{err: err, msg: msg, line: line}
	s.logger.Fprintln(os.Stderr, s.runtimeError.Error())
}

// Valid returns true if no compile error was reported
func (s *interpreterState) Valid() bool {
	return len(s.errors) == 0
}

// Scanner errors
var errUnexpectedChar = errors.New("Unexpected character.")
var errUnterminatedString = errors.New("Unterminated string.")

// Compiler errors
var errExpectExpression = errors.New("Expect expression.")
var errUnclosedParen = errors.New("Expect ')' after expression.")
var errExpectSemicolonValue = errors.New("Expect ';' after value.")
var errExpectSemicolonExpr = errors.New("Expect ';' after an expression.")
var errExpectSemicolonVar = errors.New("Expect ';' after variable declaration.")
var errExpectedIdentifier = errors.New("Expect variable name.")
var errUnclosedBlock = errors.New("Expect '}' after block.")
var errInvalidAssignment = errors.New("Invalid assignment target.")
var errLocalRedeclared = errors.New("Already a variable with this name in this scope.")
var errTooManyLocals = errors.New("Too many local variables in function.")
var errSelfInitializer = errors.New("Can't read local variable in its own initializer.")
var errTooManyConstants = errors.New("Too many constants in one chunk.")

// Runtime errors
var errOnlyNumber = errors.New("Operand must be a number.")
var errOnlyNumbers = errors.New("Operands must be numbers.")
var errAddOperands = errors.New("Operands must be two numbers or two strings.")
var errUndefinedVar = errors.New("Undefined variable.")
var errGlobalExists = errors.New("Global variable with such name already exists.")
var errUnknownOpcode = errors.New("Unknown opcode.")

package internal

import (
	"strconv"
)

type precedence int

const (
	precNone       precedence = iota
	precAssignment            // =
	precOr                    // or
	precAnd                   // and
	precEquality              // == !=
	precComparison            // < > <= >=
	precTerm                  // + -
	precFactor                // * /
	precUnary                 // ! -
	precCall                  // . ()
	precPrimary
)

type parseFn func(p *parser, canAssign bool)

type parseRule struct {
	prefix     parseFn
	infix      parseFn
	precedence precedence
}

// rules is filled once in init and only read afterwards. Token kinds
// without an entry have no prefix or infix handler.
var rules [tokenTypeCount]parseRule

func init() {
	rules = [tokenTypeCount]parseRule{
		tkLeftParen:    {prefix: (*parser).grouping},
		tkMinus:        {prefix: (*parser).unary, infix: (*parser).binary, precedence: precTerm},
		tkPlus:         {infix: (*parser).binary, precedence: precTerm},
		tkSlash:        {infix: (*parser).binary, precedence: precFactor},
		tkStar:         {infix: (*parser).binary, precedence: precFactor},
		tkBang:         {prefix: (*parser).unary},
		tkBangEqual:    {infix: (*parser).binary, precedence: precEquality},
		tkEqualEqual:   {infix: (*parser).binary, precedence: precEquality},
		tkGreater:      {infix: (*parser).binary, precedence: precComparison},
		tkGreaterEqual: {infix: (*parser).binary, precedence: precComparison},
		tkLess:         {infix: (*parser).binary, precedence: precComparison},
		tkLessEqual:    {infix: (*parser).binary, precedence: precComparison},
		tkIdentifier:   {prefix: (*parser).variable},
		tkString:       {prefix: (*parser).string},
		tkNumber:       {prefix: (*parser).number},
		tkFalse:        {prefix: (*parser).literal},
		tkNil:          {prefix: (*parser).literal},
		tkTrue:         {prefix: (*parser).literal},
	}
}

func getRule(tk TokenType) *parseRule {
	return &rules[tk]
}

// parseMode is normal until the first error of a declaration, then
// recovering until synchronize finds a statement boundary. Errors reported
// while recovering are dropped.
type parseMode uint8

const (
	modeNormal parseMode = iota
	modeRecovering
)

const maxLocals = 256

type local struct {
	name  token
	// depth is -1 between declaration and the end of the initializer.
	depth int
}

// parser compiles source straight into a Chunk while it parses.
type parser struct {
	lexer    *lexer
	previous token
	current  token
	hadError bool
	mode     parseMode

	chunk      *Chunk
	locals     [maxLocals]local
	localCount int
	scopeDepth int

	state *interpreterState
}

// compile turns source into a chunk. The chunk must not be run when ok is
// false.
func compile(source string, state *interpreterState) (chunk *Chunk, ok bool) {
	p := &parser{
		lexer: newLexer(source),
		chunk: newChunk(),
		state: state,
	}

	p.advance()
	for !p.match(tkEOF) {
		p.declaration()
	}
	p.emitOp(opReturn)

	return p.chunk, !p.hadError
}

func (p *parser) declaration() {
	if p.match(tkVar) {
		p.varDeclaration()
	} else {
		p.statement()
	}

	if p.mode == modeRecovering {
		p.synchronize()
	}
}

func (p *parser) varDeclaration() {
	name := p.consume(tkIdentifier, errExpectedIdentifier)
	if p.scopeDepth > 0 {
		p.declareLocal(name)
	}

	if p.match(tkEqual) {
		p.expression()
	} else {
		p.emitOp(opNil)
	}
	p.consume(tkSemicolon, errExpectSemicolonVar)

	if p.scopeDepth > 0 {
		p.markInitialized()
		return
	}
	p.emitDefGlobal(name)
}

func (p *parser) declareLocal(name token) {
	for i := p.localCount - 1; i >= 0; i-- {
		l := &p.locals[i]
		if l.depth != -1 && l.depth < p.scopeDepth {
			break
		}
		if l.name.lexeme == name.lexeme {
			p.error(errLocalRedeclared)
		}
	}

	if p.localCount == maxLocals {
		p.error(errTooManyLocals)
		return
	}
	p.locals[p.localCount] = local{name: name, depth: -1}
	p.localCount++
}

func (p *parser) markInitialized() {
	if p.localCount == 0 {
		return
	}
	p.locals[p.localCount-1].depth = p.scopeDepth
}

func (p *parser) statement() {
	if p.match(tkPrint) {
		p.printStatement()
	} else if p.match(tkLeftBrace) {
		p.beginScope()
		p.block()
		p.endScope()
	} else {
		p.expressionStatement()
	}
}

func (p *parser) printStatement() {
	p.expression()
	p.consume(tkSemicolon, errExpectSemicolonValue)
	p.emitOp(opPrint)
}

func (p *parser) expressionStatement() {
	p.expression()
	p.consume(tkSemicolon, errExpectSemicolonExpr)
	p.emitOp(opPop)
}

func (p *parser) block() {
	for !p.check(tkRightBrace) && !p.check(tkEOF) {
		p.declaration()
	}
	p.consume(tkRightBrace, errUnclosedBlock)
}

func (p *parser) beginScope() {
	p.scopeDepth++
}

// endScope pops the locals of the closing scope, most recent first.
func (p *parser) endScope() {
	p.scopeDepth--
	for p.localCount > 0 && p.locals[p.localCount-1].depth > p.scopeDepth {
		p.emitOp(opPop)
		p.localCount--
	}
}

func (p *parser) expression() {
	p.parsePrecedence(precAssignment)
}

func (p *parser) parsePrecedence(prec precedence) {
	p.advance()
	prefix := getRule(p.previous.token).prefix
	if prefix == nil {
		p.error(errExpectExpression)
		return
	}

	canAssign := prec <= precAssignment
	prefix(p, canAssign)

	for prec <= getRule(p.current.token).precedence {
		p.advance()
		infix := getRule(p.previous.token).infix
		infix(p, canAssign)
	}

	if canAssign && p.match(tkEqual) {
		p.error(errInvalidAssignment)
	}
}

func (p *parser) number(canAssign bool) {
	value, err := strconv.ParseFloat(p.previous.lexeme, 64)
	if err != nil {
		p.error(err)
		return
	}
	p.emitConstant(numberValue(value))
}

func (p *parser) string(canAssign bool) {
	lexeme := p.previous.lexeme
	p.emitConstant(p.chunk.newString(lexeme[1 : len(lexeme)-1]))
}

func (p *parser) literal(canAssign bool) {
	switch p.previous.token {
	case tkFalse:
		p.emitOp(opFalse)
	case tkNil:
		p.emitOp(opNil)
	case tkTrue:
		p.emitOp(opTrue)
	}
}

func (p *parser) grouping(canAssign bool) {
	p.expression()
	p.consume(tkRightParen, errUnclosedParen)
}

func (p *parser) unary(canAssign bool) {
	operator := p.previous.token

	p.parsePrecedence(precUnary)

	switch operator {
	case tkMinus:
		p.emitOp(opNegate)
	case tkBang:
		p.emitOp(opNot)
	}
}

var binaryOpcodes = map[TokenType]opcode{
	tkPlus:         opAdd,
	tkMinus:        opSubtract,
	tkStar:         opMultiply,
	tkSlash:        opDivide,
	tkEqualEqual:   opEqual,
	tkBangEqual:    opNotEqual,
	tkGreater:      opGreater,
	tkGreaterEqual: opGreaterEqual,
	tkLess:         opLess,
	tkLessEqual:    opLessEqual,
}

func (p *parser) binary(canAssign bool) {
	operator := p.previous.token
	rule := getRule(operator)
	p.parsePrecedence(rule.precedence + 1)

	if op, ok := binaryOpcodes[operator]; ok {
		p.emitOp(op)
	}
}

func (p *parser) variable(canAssign bool) {
	p.namedVariable(p.previous, canAssign)
}

func (p *parser) namedVariable(name token, canAssign bool) {
	slot, isLocal := p.resolveLocal(name)

	if canAssign && p.match(tkEqual) {
		p.expression()
		if isLocal {
			p.emitLocal(opSetLocal, slot)
		} else {
			p.emitIndexed(opSetGlobal, p.chunk.newString(name.lexeme))
		}
		return
	}

	if isLocal {
		p.emitLocal(opGetLocal, slot)
	} else {
		p.emitIndexed(opGetGlobal, p.chunk.newString(name.lexeme))
	}
}

// resolveLocal scans from the innermost declaration outwards so that inner
// scopes shadow outer ones.
func (p *parser) resolveLocal(name token) (int, bool) {
	for i := p.localCount - 1; i >= 0; i-- {
		l := &p.locals[i]
		if l.name.lexeme == name.lexeme {
			if l.depth == -1 {
				p.error(errSelfInitializer)
			}
			return i, true
		}
	}
	return 0, false
}

func (p *parser) advance() {
	p.previous = p.current
	for {
		p.current = p.lexer.nextToken()
		if p.current.token != tkError {
			break
		}
		p.errorAtCurrent(p.current.err)
	}
}

func (p *parser) consume(tk TokenType, err error) token {
	if p.current.token == tk {
		p.advance()
		return p.previous
	}
	p.errorAtCurrent(err)
	return p.current
}

func (p *parser) check(tk TokenType) bool {
	return p.current.token == tk
}

func (p *parser) match(tk TokenType) bool {
	if !p.check(tk) {
		return false
	}
	p.advance()
	return true
}

func (p *parser) emitOp(op opcode) {
	p.chunk.writeOp(op, p.previous.line)
}

func (p *parser) emitLocal(op opcode, slot int) {
	p.chunk.writeOp(op, p.previous.line)
	p.chunk.write(byte(slot), p.previous.line)
}

// emitIndexed adds v to the constant pool and emits op with the index,
// switching to the long form past 255.
func (p *parser) emitIndexed(op opcode, v Value) {
	index := p.chunk.addConstant(v)
	if index > maxLongIndex {
		p.error(errTooManyConstants)
		return
	}
	p.chunk.writeIndexed(op, index, p.previous.line)
}

func (p *parser) emitConstant(v Value) {
	p.emitIndexed(opConstant, v)
}

func (p *parser) emitDefGlobal(name token) {
	p.emitIndexed(opDefGlobal, p.chunk.newString(name.lexeme))
}

func (p *parser) errorAtCurrent(err error) {
	p.errorAt(p.current, err)
}

func (p *parser) error(err error) {
	p.errorAt(p.previous, err)
}

func (p *parser) errorAt(tk token, err error) {
	if p.mode == modeRecovering {
		return
	}
	p.mode = modeRecovering
	p.hadError = true
	p.state.setError(err, tk)
}

// synchronize skips tokens until the previous one ended a statement or the
// current one starts a new one.
func (p *parser) synchronize() {
	p.mode = modeNormal

	for p.current.token != tkEOF {
		if p.previous.token == tkSemicolon {
			return
		}
		switch p.current.token {
		case tkClass, tkFun, tkVar, tkFor, tkIf, tkWhile, tkPrint, tkReturn:
			return
		}
		p.advance()
	}
}

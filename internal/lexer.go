package internal

// lexer hands out one token per call to nextToken. It never looks further
// ahead than the character after the current one.
type lexer struct {
	source    string
	start     int
	current   int
	line      int
	lineStart int
}

func newLexer(source string) *lexer {
	return &lexer{
		source:    source,
		line:      1,
		lineStart: -1,
	}
}

func (l *lexer) nextToken() token {
	l.skipWhitespace()
	l.start = l.current

	if l.isAtEnd() {
		return l.emit(tkEOF)
	}

	c := l.advance()
	if isAlpha(c) {
		return l.identifier()
	}
	if isDigit(c) {
		return l.number()
	}

	switch c {
	case '(':
		return l.emit(tkLeftParen)
	case ')':
		return l.emit(tkRightParen)
	case '{':
		return l.emit(tkLeftBrace)
	case '}':
		return l.emit(tkRightBrace)
	case ';':
		return l.emit(tkSemicolon)
	case ',':
		return l.emit(tkComma)
	case '.':
		return l.emit(tkDot)
	case '-':
		return l.emit(tkMinus)
	case '+':
		return l.emit(tkPlus)
	case '/':
		return l.emit(tkSlash)
	case '*':
		return l.emit(tkStar)
	case '!':
		if l.match('=') {
			return l.emit(tkBangEqual)
		}
		return l.emit(tkBang)
	case '=':
		if l.match('=') {
			return l.emit(tkEqualEqual)
		}
		return l.emit(tkEqual)
	case '<':
		if l.match('=') {
			return l.emit(tkLessEqual)
		}
		return l.emit(tkLess)
	case '>':
		if l.match('=') {
			return l.emit(tkGreaterEqual)
		}
		return l.emit(tkGreater)
	case '"':
		return l.string()
	}

	return l.errorToken(errUnexpectedChar)
}

func (l *lexer) skipWhitespace() {
	for !l.isAtEnd() {
		switch l.peek() {
		case ' ', '\r', '\t':
			l.advance()
		case '\n':
			l.newline()
			l.advance()
		case '/':
			if l.peekNext() != '/' {
				return
			}
			for !l.isAtEnd() && l.peek() != '\n' {
				l.advance()
			}
		default:
			return
		}
	}
}

// newline must be called while current points at the '\n'.
func (l *lexer) newline() {
	l.line++
	l.lineStart = l.current
}

func (l *lexer) string() token {
	for !l.isAtEnd() && l.peek() != '"' {
		if l.peek() == '\n' {
			l.newline()
		}
		l.advance()
	}

	if l.isAtEnd() {
		return l.errorToken(errUnterminatedString)
	}

	// Closing "
	l.advance()
	return l.emit(tkString)
}

func (l *lexer) number() token {
	for isDigit(l.peek()) {
		l.advance()
	}

	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}

	return l.emit(tkNumber)
}

func (l *lexer) identifier() token {
	for isAlpha(l.peek()) || isDigit(l.peek()) {
		l.advance()
	}
	return l.emit(l.identifierType())
}

func (l *lexer) identifierType() TokenType {
	switch l.source[l.start] {
	case 'a':
		return l.checkKeyword(1, "nd", tkAnd)
	case 'c':
		return l.checkKeyword(1, "lass", tkClass)
	case 'e':
		return l.checkKeyword(1, "lse", tkElse)
	case 'f':
		if l.current-l.start > 1 {
			switch l.source[l.start+1] {
			case 'a':
				return l.checkKeyword(2, "lse", tkFalse)
			case 'o':
				return l.checkKeyword(2, "r", tkFor)
			case 'u':
				return l.checkKeyword(2, "n", tkFun)
			}
		}
	case 'i':
		return l.checkKeyword(1, "f", tkIf)
	case 'n':
		return l.checkKeyword(1, "il", tkNil)
	case 'o':
		return l.checkKeyword(1, "r", tkOr)
	case 'p':
		return l.checkKeyword(1, "rint", tkPrint)
	case 'r':
		return l.checkKeyword(1, "eturn", tkReturn)
	case 's':
		return l.checkKeyword(1, "uper", tkSuper)
	case 't':
		if l.current-l.start > 1 {
			switch l.source[l.start+1] {
			case 'h':
				return l.checkKeyword(2, "is", tkThis)
			case 'r':
				return l.checkKeyword(2, "ue", tkTrue)
			}
		}
	case 'v':
		return l.checkKeyword(1, "ar", tkVar)
	case 'w':
		return l.checkKeyword(1, "hile", tkWhile)
	}
	return tkIdentifier
}

func (l *lexer) checkKeyword(offset int, rest string, tk TokenType) TokenType {
	if l.current-l.start == offset+len(rest) && l.source[l.start+offset:l.current] == rest {
		return tk
	}
	return tkIdentifier
}

func (l *lexer) advance() byte {
	c := l.source[l.current]
	l.current++
	return c
}

func (l *lexer) match(c byte) bool {
	if l.isAtEnd() || l.source[l.current] != c {
		return false
	}
	l.current++
	return true
}

func (l *lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.source[l.current]
}

func (l *lexer) peekNext() byte {
	if l.current+1 >= len(l.source) {
		return 0
	}
	return l.source[l.current+1]
}

func (l *lexer) emit(tk TokenType) token {
	return token{
		token:  tk,
		lexeme: l.source[l.start:l.current],
		line:   l.line,
		col:    l.column(),
	}
}

func (l *lexer) errorToken(err error) token {
	return token{
		token:  tkError,
		lexeme: err.Error(),
		line:   l.line,
		col:    l.column(),
		err:    err,
	}
}

func (l *lexer) column() int {
	return l.current - l.lineStart + 1
}

func (l *lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

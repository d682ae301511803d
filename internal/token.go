package internal

// TokenType Holds a token
type TokenType int

const (
	// Single-character tokens.
	// (, ), {, }, ',', ., -, +, ;, /, *
	tkLeftParen TokenType = iota
	tkRightParen
	tkLeftBrace
	tkRightBrace
	tkComma
	tkDot
	tkMinus
	tkPlus
	tkSemicolon
	tkSlash
	tkStar

	// One or two character tokens.
	// !, !=, =, ==, >, >=, <, <=
	tkBang
	tkBangEqual
	tkEqual
	tkEqualEqual
	tkGreater
	tkGreaterEqual
	tkLess
	tkLessEqual

	// Literals.
	// *variable*, string, number
	tkIdentifier
	tkString
	tkNumber

	// Keywords.
	// and, class, else, false, for, fun, if, nil, or,
	// print, return, super, this, true, var, while
	tkAnd
	tkClass
	tkElse
	tkFalse
	tkFor
	tkFun
	tkIf
	tkNil
	tkOr
	tkPrint
	tkReturn
	tkSuper
	tkThis
	tkTrue
	tkVar
	tkWhile

	tkError
	tkEOF

	tokenTypeCount
)

var tokenNames = [...]string{
	tkLeftParen:    "LEFT_PAREN",
	tkRightParen:   "RIGHT_PAREN",
	tkLeftBrace:    "LEFT_BRACE",
	tkRightBrace:   "RIGHT_BRACE",
	tkComma:        "COMMA",
	tkDot:          "DOT",
	tkMinus:        "MINUS",
	tkPlus:         "PLUS",
	tkSemicolon:    "SEMICOLON",
	tkSlash:        "SLASH",
	tkStar:         "STAR",
	tkBang:         "BANG",
	tkBangEqual:    "BANG_EQUAL",
	tkEqual:        "EQUAL",
	tkEqualEqual:   "EQUAL_EQUAL",
	tkGreater:      "GREATER",
	tkGreaterEqual: "GREATER_EQUAL",
	tkLess:         "LESS",
	tkLessEqual:    "LESS_EQUAL",
	tkIdentifier:   "IDENTIFIER",
	tkString:       "STRING",
	tkNumber:       "NUMBER",
	tkAnd:          "AND",
	tkClass:        "CLASS",
	tkElse:         "ELSE",
	tkFalse:        "FALSE",
	tkFor:          "FOR",
	tkFun:          "FUN",
	tkIf:           "IF",
	tkNil:          "NIL",
	tkOr:           "OR",
	tkPrint:        "PRINT",
	tkReturn:       "RETURN",
	tkSuper:        "SUPER",
	tkThis:         "THIS",
	tkTrue:         "TRUE",
	tkVar:          "VAR",
	tkWhile:        "WHILE",
	tkError:        "ERROR",
	tkEOF:          "EOF",
}

func (t TokenType) String() string {
	if t >= 0 && t < tokenTypeCount {
		return tokenNames[t]
	}
	return "UNKNOWN"
}

// token is a single lexeme. For tkError tokens lexeme holds the message
// and err the matching sentinel.
type token struct {
	token  TokenType
	lexeme string
	line   int
	col    int
	err    error
}

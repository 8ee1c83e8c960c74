package ast

// Keyword identifies a control-flow or binding statement.
type Keyword int

// Keyword constants
const (
	KeywordIf Keyword = iota
	KeywordElse
	KeywordElseIf
	KeywordFor
	KeywordWhile
	KeywordLoop
	KeywordEnd
	KeywordBreak
	KeywordContinue
	KeywordLet
)

// Keyword spellings as written inside statement tags
const (
	KeywordNameIf       = "if"
	KeywordNameElse     = "else"
	KeywordNameElseIf   = "else if"
	KeywordNameFor      = "for"
	KeywordNameWhile    = "while"
	KeywordNameLoop     = "loop"
	KeywordNameEnd      = "end"
	KeywordNameBreak    = "break"
	KeywordNameContinue = "continue"
	KeywordNameLet      = "let"
	KeywordNameUnknown  = "unknown"
)

// Keywords lists every keyword in recognition order.
func Keywords() []Keyword {
	return []Keyword{
		KeywordIf, KeywordElse, KeywordElseIf, KeywordFor, KeywordWhile,
		KeywordLoop, KeywordEnd, KeywordBreak, KeywordContinue, KeywordLet,
	}
}

// String returns the keyword spelling.
func (k Keyword) String() string {
	switch k {
	case KeywordIf:
		return KeywordNameIf
	case KeywordElse:
		return KeywordNameElse
	case KeywordElseIf:
		return KeywordNameElseIf
	case KeywordFor:
		return KeywordNameFor
	case KeywordWhile:
		return KeywordNameWhile
	case KeywordLoop:
		return KeywordNameLoop
	case KeywordEnd:
		return KeywordNameEnd
	case KeywordBreak:
		return KeywordNameBreak
	case KeywordContinue:
		return KeywordNameContinue
	case KeywordLet:
		return KeywordNameLet
	default:
		return KeywordNameUnknown
	}
}

// HasBody reports whether statements with this keyword own a nested body.
func (k Keyword) HasBody() bool {
	switch k {
	case KeywordIf, KeywordElse, KeywordElseIf, KeywordFor, KeywordWhile, KeywordLoop:
		return true
	default:
		return false
	}
}

// IsBlockTerminator reports whether the keyword ends the body of an enclosing block.
func (k Keyword) IsBlockTerminator() bool {
	switch k {
	case KeywordElse, KeywordElseIf, KeywordEnd:
		return true
	default:
		return false
	}
}

// IsBranch reports whether the keyword continues an if chain.
func (k Keyword) IsBranch() bool {
	return k == KeywordElse || k == KeywordElseIf
}

// ParseKeyword returns the keyword with the given spelling.
func ParseKeyword(name string) (Keyword, bool) {
	for _, k := range Keywords() {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}

package internal

import "unicode"

// IsIdentStart reports whether r may start an identifier (Unicode XID_Start).
func IsIdentStart(r rune) bool {
	return unicode.IsLetter(r) ||
		unicode.Is(unicode.Nl, r) ||
		unicode.Is(unicode.Other_ID_Start, r)
}

// IsIdentContinue reports whether r may continue an identifier (Unicode XID_Continue).
func IsIdentContinue(r rune) bool {
	return IsIdentStart(r) ||
		unicode.Is(unicode.Mn, r) ||
		unicode.Is(unicode.Mc, r) ||
		unicode.Is(unicode.Nd, r) ||
		unicode.Is(unicode.Pc, r) ||
		unicode.Is(unicode.Other_ID_Continue, r)
}

func nonEmpty(s Span) bool { return !s.IsEmpty() }

// Identifier matches an identifier: an XID start rune followed by XID
// continue runes, or an underscore followed by at least one continue rune.
// A lone underscore is not an identifier.
func Identifier() Parser[Span] {
	underscored := Then(Literal(StrUnderscore), TakeWhile(IsIdentContinue).Filter(nonEmpty))
	plain := Then(TakeWhile(IsIdentStart).Filter(nonEmpty), TakeWhile(IsIdentContinue))
	return Recognize(Select(underscored, plain))
}

// TypePath matches one or more identifiers joined by "::", with an
// optional leading "::". A dangling separator rejects the whole path.
func TypePath() Parser[Span] {
	sep := Literal(StrPathSeparator)
	segments := Then(Identifier(), Repeated(Then(sep, Identifier())))
	path := Then(Optional(sep), segments)
	return Recognize(ThenIgnore(path, Not(sep)))
}

// IsComponentPath reports whether a type path names a component rather
// than a plain HTML element: it is namespaced or contains an uppercase rune.
func IsComponentPath(path string) bool {
	for i, r := range path {
		if unicode.IsUpper(r) {
			return true
		}
		if r == ':' && i+1 < len(path) && path[i+1] == ':' {
			return true
		}
	}
	return false
}

package internal

// Default delimiters
const (
	StrExprOpen     = "{{"
	StrExprClose    = "}}"
	StrStmtOpen     = "<#"
	StrStmtClose    = "#>"
	StrEscapeMarker = "%"
	StrCommentOpen  = "<!--"
	StrCommentClose = "-->"
)

// Fixed tag tokens
const (
	StrTagOpen        = "<"
	StrTagClose       = ">"
	StrTagSelfClose   = "/>"
	StrEndTagOpen     = "</"
	StrShorthandClose = ">"
	StrPathSeparator  = "::"
	StrAssign         = "="
	StrTrue           = "true"
	StrFalse          = "false"
	StrDoubleQuote    = `"`
	StrSingleQuote    = "'"
	StrBackslash      = `\`
	StrUnderscore     = "_"
)

// Keyword spellings as matched by the statement recognizer
const (
	KwIf       = "if"
	KwElse     = "else"
	KwFor      = "for"
	KwWhile    = "while"
	KwLoop     = "loop"
	KwEnd      = "end"
	KwBreak    = "break"
	KwContinue = "continue"
	KwLet      = "let"
)

// Construct names used in syntax errors
const (
	ConstructExpression  = "expression"
	ConstructStatement   = "statement"
	ConstructBlock       = "block"
	ConstructComment     = "comment"
	ConstructTemplate    = "template reference"
	ConstructArgument    = "template argument"
	ConstructString      = "string literal"
	ConstructFrontmatter = "frontmatter"
)

// Defaults
const (
	DefaultMaxDepth = 100
)

// Logging messages
const (
	LogMsgParserCreated   = "template parser created"
	LogMsgParserStart     = "starting parse"
	LogMsgParserEnd       = "parse complete"
	LogMsgParserFailed    = "parse failed"
	LogMsgBlockParsed     = "block parsed"
	LogMsgTemplateRefSeen = "child template reference parsed"
)

// Logging field names
const (
	LogFieldSource    = "source_length"
	LogFieldStart     = "start_offset"
	LogFieldItems     = "item_count"
	LogFieldKeyword   = "keyword"
	LogFieldTemplate  = "template"
	LogFieldDepth     = "depth"
	LogFieldDuration  = "duration"
	LogFieldLine      = "line"
	LogFieldColumn    = "column"
	LogFieldError     = "error"
	LogFieldArguments = "argument_count"
)

package tessera

import "github.com/itsatony/go-tessera/internal"

// Default delimiters of the template syntax
const (
	DefaultExprOpen     = internal.StrExprOpen
	DefaultExprClose    = internal.StrExprClose
	DefaultStmtOpen     = internal.StrStmtOpen
	DefaultStmtClose    = internal.StrStmtClose
	DefaultEscapeMarker = internal.StrEscapeMarker
)

// Defaults
const (
	DefaultMaxDepth    = internal.DefaultMaxDepth
	DefaultContentType = ContentTypeHTML
)

// Content type names as used in configuration files and frontmatter
const (
	ContentTypeNameHTML  = "html"
	ContentTypeNamePlain = "plain"
)

// Frontmatter keys
const (
	FrontmatterKeyContentType = "content_type"
	FrontmatterKeyName        = "name"
)

// Logging messages
const (
	LogMsgCompilerCreated      = "compiler created"
	LogMsgTemplateParsed       = "template parsed"
	LogMsgTemplateRegistered   = "template registered"
	LogMsgTemplateUnregistered = "template unregistered"
	LogMsgFrontmatterApplied   = "frontmatter applied"
	LogMsgValidationComplete   = "validation complete"
	LogMsgExportComplete       = "export complete"
)

// Logging field names
const (
	LogFieldTemplateName = "template_name"
	LogFieldContentType  = "content_type"
	LogFieldItems        = "item_count"
	LogFieldErrors       = "error_count"
	LogFieldWarnings     = "warning_count"
	LogFieldMaxDepth     = "max_depth"
	LogFieldFormat       = "format"
	LogFieldBytes        = "bytes"
)

// Metadata keys for cuserr.WithMetadata
const (
	MetaKeyLine         = "line"
	MetaKeyColumn       = "column"
	MetaKeyOffset       = "offset"
	MetaKeyConstruct    = "construct"
	MetaKeyTemplateName = "template_name"
	MetaKeyContentType  = "content_type"
	MetaKeyPath         = "path"
	MetaKeyProperties   = "properties"
	MetaKeyTarget       = "target"
	MetaKeyFormat       = "format"
)

// Lint rule IDs
const (
	RuleKeywordTypo       = "STMT001"
	RuleEmptyExpression   = "EXPR001"
	RuleDuplicateArgument = "ARG001"
	RuleUnknownComponent  = "COMP001"
	RuleEmptyBlock        = "BLOCK001"
	RuleSyntax            = "SYNTAX"
)

// MaxSuggestions caps did-you-mean candidates per issue.
const MaxSuggestions = 3

// LintRules returns the IDs of all lint rules.
func LintRules() []string {
	return []string{RuleKeywordTypo, RuleEmptyExpression, RuleDuplicateArgument, RuleUnknownComponent, RuleEmptyBlock}
}

// ValidationSeverity indicates the severity of a validation issue.
type ValidationSeverity int

const (
	// SeverityError indicates the template cannot be compiled
	SeverityError ValidationSeverity = iota
	// SeverityWarning indicates a likely mistake
	SeverityWarning
	// SeverityInfo indicates informational feedback
	SeverityInfo
)

// Validation severity string names
const (
	SeverityNameError   = "error"
	SeverityNameWarning = "warning"
	SeverityNameInfo    = "info"
)

// String returns the string representation of the validation severity
func (s ValidationSeverity) String() string {
	switch s {
	case SeverityError:
		return SeverityNameError
	case SeverityWarning:
		return SeverityNameWarning
	case SeverityInfo:
		return SeverityNameInfo
	default:
		return SeverityNameError
	}
}

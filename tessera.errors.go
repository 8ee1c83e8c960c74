package tessera

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/itsatony/go-cuserr"
	"github.com/itsatony/go-tessera/internal"
)

// Error message constants
const (
	// Parse errors
	ErrMsgParseFailed        = "template parsing failed"
	ErrMsgFrontmatterInvalid = "invalid template frontmatter"

	// Registry errors
	ErrMsgEmptyTemplateName = "template name cannot be empty"
	ErrMsgTemplateExists    = "template already registered"
	ErrMsgTemplateNotFound  = "template not found"

	// Configuration errors
	ErrMsgInvalidContentType = "invalid content type"
	ErrMsgInvalidSyntax      = "invalid syntax configuration"
	ErrMsgInvalidMaxDepth    = "max depth cannot be negative"
	ErrMsgConfigReadFailed   = "failed to read configuration file"
	ErrMsgConfigParseFailed  = "failed to parse configuration"

	// Builder errors
	ErrMsgMissingProperties = "required properties not set"
	ErrMsgPropertyIndex     = "property index out of range"

	// Export errors
	ErrMsgExportFailed      = "export failed"
	ErrMsgUnsupportedFormat = "unsupported export format"
	ErrMsgRenderFailed      = "render failed"
	ErrMsgNilComponent      = "component cannot be nil"
)

// Error code constants for categorization
const (
	ErrCodeParse    = "TESSERA_PARSE"
	ErrCodeRegistry = "TESSERA_REGISTRY"
	ErrCodeConfig   = "TESSERA_CONFIG"
	ErrCodeBuilder  = "TESSERA_BUILDER"
	ErrCodeExport   = "TESSERA_EXPORT"
	ErrCodeRender   = "TESSERA_RENDER"
)

// Position represents a location in the template source
type Position struct {
	Offset int // Byte offset from start
	Line   int // 1-indexed line number
	Column int // 1-indexed column number, counted in runes
}

// String returns a human-readable position string
func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

func positionFromLocation(loc internal.Location) Position {
	return Position{Offset: loc.Offset, Line: loc.Line, Column: loc.Column}
}

// PositionAt resolves a byte offset within source.
func PositionAt(source string, offset int) Position {
	return positionFromLocation(internal.LocationAt(source, offset))
}

// NewParseError creates a parse error with position context
func NewParseError(msg string, pos Position, cause error) error {
	var err *cuserr.CustomError
	if cause != nil {
		err = cuserr.WrapStdError(cause, ErrCodeParse, msg)
	} else {
		err = cuserr.NewValidationError(ErrCodeParse, msg)
	}
	return err.
		WithMetadata(MetaKeyLine, strconv.Itoa(pos.Line)).
		WithMetadata(MetaKeyColumn, strconv.Itoa(pos.Column)).
		WithMetadata(MetaKeyOffset, strconv.Itoa(pos.Offset))
}

// wrapParseError converts a parser failure into a public parse error.
// Syntax errors keep their location and construct.
func wrapParseError(source string, err error) error {
	var syntaxErr *internal.SyntaxError
	if !errors.As(err, &syntaxErr) {
		return NewParseError(ErrMsgParseFailed, Position{}, err)
	}
	pos := PositionAt(source, syntaxErr.Location.Offset)
	syntaxErr.Location = internal.Location{Offset: pos.Offset, Line: pos.Line, Column: pos.Column}

	err = cuserr.WrapStdError(err, ErrCodeParse, ErrMsgParseFailed).
		WithMetadata(MetaKeyLine, strconv.Itoa(pos.Line)).
		WithMetadata(MetaKeyColumn, strconv.Itoa(pos.Column)).
		WithMetadata(MetaKeyOffset, strconv.Itoa(pos.Offset)).
		WithMetadata(MetaKeyConstruct, syntaxErr.Construct)
	return err
}

// ErrorPosition extracts the source position attached to a parse error.
func ErrorPosition(err error) (Position, bool) {
	var syntaxErr *internal.SyntaxError
	if errors.As(err, &syntaxErr) {
		return positionFromLocation(syntaxErr.Location), true
	}
	return Position{}, false
}

// ErrorMessage returns the syntax error message of a parse error without
// its location, or err.Error() for other errors.
func ErrorMessage(err error) string {
	var syntaxErr *internal.SyntaxError
	if errors.As(err, &syntaxErr) {
		return syntaxErr.Message
	}
	return err.Error()
}

// NewFrontmatterError creates an error for unreadable frontmatter
func NewFrontmatterError(cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeParse, ErrMsgFrontmatterInvalid)
}

// NewEmptyTemplateNameError creates an error for an empty template name
func NewEmptyTemplateNameError() error {
	return cuserr.NewValidationError(ErrCodeRegistry, ErrMsgEmptyTemplateName)
}

// NewTemplateExistsError creates a template name collision error
func NewTemplateExistsError(name string) error {
	return cuserr.NewValidationError(ErrCodeRegistry, ErrMsgTemplateExists).
		WithMetadata(MetaKeyTemplateName, name)
}

// NewTemplateNotFoundError creates a template not found error
func NewTemplateNotFoundError(name string) error {
	return cuserr.NewNotFoundError(MetaKeyTemplateName, ErrMsgTemplateNotFound).
		WithMetadata(MetaKeyTemplateName, name)
}

// NewInvalidContentTypeError creates an error for an unknown content type name
func NewInvalidContentTypeError(value string) error {
	return cuserr.NewValidationError(ErrCodeConfig, ErrMsgInvalidContentType).
		WithMetadata(MetaKeyContentType, value)
}

// NewConfigError creates a configuration error
func NewConfigError(msg string, cause error) error {
	if cause != nil {
		return cuserr.WrapStdError(cause, ErrCodeConfig, msg)
	}
	return cuserr.NewValidationError(ErrCodeConfig, msg)
}

// NewConfigFileError creates a configuration error for a file path
func NewConfigFileError(msg, path string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeConfig, msg).
		WithMetadata(MetaKeyPath, path)
}

// NewMissingPropertiesError creates a builder error listing unset properties
func NewMissingPropertiesError(target string, missing []string) error {
	return cuserr.NewValidationError(ErrCodeBuilder, ErrMsgMissingProperties).
		WithMetadata(MetaKeyTarget, target).
		WithMetadata(MetaKeyProperties, strings.Join(missing, ","))
}

// NewExportError creates an export error
func NewExportError(format string, cause error) error {
	if cause == nil {
		return cuserr.NewValidationError(ErrCodeExport, ErrMsgUnsupportedFormat).
			WithMetadata(MetaKeyFormat, format)
	}
	return cuserr.WrapStdError(cause, ErrCodeExport, ErrMsgExportFailed).
		WithMetadata(MetaKeyFormat, format)
}

// NewRenderError creates a render error
func NewRenderError(cause error) error {
	if cause == nil {
		return cuserr.NewValidationError(ErrCodeRender, ErrMsgNilComponent)
	}
	return cuserr.WrapStdError(cause, ErrCodeRender, ErrMsgRenderFailed)
}

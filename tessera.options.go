package tessera

import (
	"github.com/itsatony/go-tessera/internal"
	"go.uber.org/zap"
)

// SyntaxConfig holds the template delimiters. Empty fields take the
// default delimiters.
type SyntaxConfig = internal.SyntaxConfig

// DefaultSyntax returns the default delimiters: {{ }}, <# #>, % and <!-- -->.
func DefaultSyntax() SyntaxConfig {
	return internal.DefaultSyntax()
}

// Option is a functional option for configuring the Compiler.
type Option func(*compilerConfig)

// compilerConfig holds the internal configuration for a Compiler.
type compilerConfig struct {
	syntax      SyntaxConfig
	contentType ContentType
	maxDepth    int
	frontmatter bool
	logger      *zap.Logger
}

// defaultCompilerConfig returns the default compiler configuration.
func defaultCompilerConfig() *compilerConfig {
	return &compilerConfig{
		syntax:      DefaultSyntax(),
		contentType: DefaultContentType,
		maxDepth:    DefaultMaxDepth,
		frontmatter: false,
		logger:      nil,
	}
}

// WithSyntax replaces the delimiters. Empty fields keep their defaults.
func WithSyntax(syntax SyntaxConfig) Option {
	return func(c *compilerConfig) {
		c.syntax = syntax.WithDefaults()
	}
}

// WithDelimiters sets the expression and statement delimiters.
// Empty values keep the current delimiter.
// Default: "{{" "}}" and "<#" "#>"
func WithDelimiters(exprOpen, exprClose, stmtOpen, stmtClose string) Option {
	return func(c *compilerConfig) {
		set := func(dst *string, v string) {
			if v != "" {
				*dst = v
			}
		}
		set(&c.syntax.ExprOpen, exprOpen)
		set(&c.syntax.ExprClose, exprClose)
		set(&c.syntax.StmtOpen, stmtOpen)
		set(&c.syntax.StmtClose, stmtClose)
	}
}

// WithContentType sets the content type of parsed templates.
// Default: ContentTypeHTML
func WithContentType(ct ContentType) Option {
	return func(c *compilerConfig) {
		c.contentType = ct
	}
}

// WithMaxDepth sets the maximum nesting depth of block bodies and
// template children. Use 0 for unlimited depth.
// Default: 100
func WithMaxDepth(depth int) Option {
	return func(c *compilerConfig) {
		c.maxDepth = depth
	}
}

// WithFrontmatter enables a leading YAML block that may set
// content_type and name per template.
// Default: false
func WithFrontmatter(enabled bool) Option {
	return func(c *compilerConfig) {
		c.frontmatter = enabled
	}
}

// WithLogger sets the logger for the compiler.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *compilerConfig) {
		c.logger = logger
	}
}

package tessera

import (
	"sort"
	"sync"

	"github.com/itsatony/go-tessera/internal"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Compiler parses template sources into item trees and keeps a registry
// of named templates that child template references resolve against.
// A Compiler is safe for concurrent use.
type Compiler struct {
	config    *compilerConfig
	templates map[string]*Template
	tmplMu    sync.RWMutex
	logger    *zap.Logger
}

// New creates a Compiler with the given options.
func New(opts ...Option) (*Compiler, error) {
	config := defaultCompilerConfig()
	for _, opt := range opts {
		opt(config)
	}

	if err := config.syntax.Validate(); err != nil {
		return nil, NewConfigError(ErrMsgInvalidSyntax, err)
	}
	if config.maxDepth < 0 {
		return nil, NewConfigError(ErrMsgInvalidMaxDepth, nil)
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgCompilerCreated,
		zap.String(LogFieldContentType, config.contentType.String()),
		zap.Int(LogFieldMaxDepth, config.maxDepth))

	return &Compiler{
		config:    config,
		templates: make(map[string]*Template),
		logger:    logger,
	}, nil
}

// MustNew creates a new Compiler and panics if there's an error.
func MustNew(opts ...Option) *Compiler {
	c, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// ContentType returns the default content type of parsed templates.
func (c *Compiler) ContentType() ContentType { return c.config.contentType }

// MaxDepth returns the configured maximum nesting depth.
func (c *Compiler) MaxDepth() int { return c.config.maxDepth }

// Syntax returns the configured delimiters.
func (c *Compiler) Syntax() SyntaxConfig { return c.config.syntax }

// Parse parses a template source. Frontmatter, when enabled, may
// override the content type and name.
func (c *Compiler) Parse(source string) (*Template, error) {
	return c.parse(source, nil)
}

// ParseAs parses a template source with a fixed content type, which
// takes precedence over frontmatter.
func (c *Compiler) ParseAs(source string, ct ContentType) (*Template, error) {
	return c.parse(source, &ct)
}

// templateFrontmatter is the YAML block recognized before a template body.
type templateFrontmatter struct {
	ContentType string `yaml:"content_type"`
	Name        string `yaml:"name"`
}

func (c *Compiler) parse(source string, forced *ContentType) (*Template, error) {
	tmpl := &Template{
		source:      source,
		contentType: c.config.contentType,
		logger:      c.logger,
	}

	if c.config.frontmatter {
		if err := c.applyFrontmatter(tmpl); err != nil {
			return nil, err
		}
	}
	if forced != nil {
		tmpl.contentType = *forced
	}

	parserConfig := internal.ParserConfig{
		Syntax:   c.config.syntax,
		MaxDepth: c.config.maxDepth,
		Start:    tmpl.bodyOffset,
	}
	items, err := internal.NewTemplateParserWithConfig(source, parserConfig, c.logger).Parse()
	if err != nil {
		return nil, wrapParseError(source, err)
	}
	tmpl.items = items

	c.logger.Debug(LogMsgTemplateParsed,
		zap.String(LogFieldTemplateName, tmpl.name),
		zap.String(LogFieldContentType, tmpl.contentType.String()),
		zap.Int(LogFieldItems, len(items)))
	return tmpl, nil
}

func (c *Compiler) applyFrontmatter(tmpl *Template) error {
	fm, err := internal.ExtractFrontmatter(tmpl.source)
	if err != nil {
		return wrapParseError(tmpl.source, err)
	}
	if !fm.HasFrontmatter {
		return nil
	}
	tmpl.bodyOffset = fm.BodyOffset

	var meta templateFrontmatter
	if err := yaml.Unmarshal([]byte(fm.YAML), &meta); err != nil {
		return NewFrontmatterError(err)
	}
	if meta.ContentType != "" {
		ct, err := ParseContentType(meta.ContentType)
		if err != nil {
			return err
		}
		tmpl.contentType = ct
	}
	tmpl.name = meta.Name

	c.logger.Debug(LogMsgFrontmatterApplied,
		zap.String(LogFieldTemplateName, meta.Name),
		zap.String(LogFieldContentType, tmpl.contentType.String()))
	return nil
}

// Register parses source and stores it under name.
// Returns an error if name is empty or already registered.
func (c *Compiler) Register(name string, source string) error {
	if name == "" {
		return NewEmptyTemplateNameError()
	}

	c.tmplMu.Lock()
	defer c.tmplMu.Unlock()

	if _, exists := c.templates[name]; exists {
		return NewTemplateExistsError(name)
	}

	tmpl, err := c.Parse(source)
	if err != nil {
		return err
	}
	tmpl.name = name

	c.templates[name] = tmpl
	c.logger.Debug(LogMsgTemplateRegistered, zap.String(LogFieldTemplateName, name))
	return nil
}

// MustRegister registers a template and panics on error.
func (c *Compiler) MustRegister(name string, source string) {
	if err := c.Register(name, source); err != nil {
		panic(err)
	}
}

// Unregister removes a registered template by name.
// Returns true if the template existed and was removed.
func (c *Compiler) Unregister(name string) bool {
	c.tmplMu.Lock()
	defer c.tmplMu.Unlock()

	if _, exists := c.templates[name]; exists {
		delete(c.templates, name)
		c.logger.Debug(LogMsgTemplateUnregistered, zap.String(LogFieldTemplateName, name))
		return true
	}
	return false
}

// Lookup retrieves a registered template by name.
func (c *Compiler) Lookup(name string) (*Template, bool) {
	c.tmplMu.RLock()
	defer c.tmplMu.RUnlock()

	tmpl, ok := c.templates[name]
	return tmpl, ok
}

// Get retrieves a registered template, returning a not-found error when
// it is missing.
func (c *Compiler) Get(name string) (*Template, error) {
	tmpl, ok := c.Lookup(name)
	if !ok {
		return nil, NewTemplateNotFoundError(name)
	}
	return tmpl, nil
}

// Has checks if a template is registered with the given name.
func (c *Compiler) Has(name string) bool {
	_, ok := c.Lookup(name)
	return ok
}

// Names returns all registered template names in sorted order.
func (c *Compiler) Names() []string {
	c.tmplMu.RLock()
	defer c.tmplMu.RUnlock()

	names := make([]string, 0, len(c.templates))
	for name := range c.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

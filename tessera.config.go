package tessera

import (
	"os"

	"gopkg.in/yaml.v3"
)

// FileConfig is the YAML configuration file format:
//
//	content_type: html
//	max_depth: 50
//	frontmatter: true
//	syntax:
//	  expr_open: "${"
//	  expr_close: "}"
type FileConfig struct {
	ContentType string       `yaml:"content_type"`
	MaxDepth    *int         `yaml:"max_depth"`
	Frontmatter *bool        `yaml:"frontmatter"`
	Syntax      SyntaxConfig `yaml:"syntax"`
}

// Options converts the file configuration into compiler options. Unset
// keys produce no option.
func (fc FileConfig) Options() ([]Option, error) {
	opts := make([]Option, 0, 4)
	if fc.ContentType != "" {
		ct, err := ParseContentType(fc.ContentType)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithContentType(ct))
	}
	if fc.MaxDepth != nil {
		if *fc.MaxDepth < 0 {
			return nil, NewConfigError(ErrMsgInvalidMaxDepth, nil)
		}
		opts = append(opts, WithMaxDepth(*fc.MaxDepth))
	}
	if fc.Frontmatter != nil {
		opts = append(opts, WithFrontmatter(*fc.Frontmatter))
	}
	if fc.Syntax != (SyntaxConfig{}) {
		syntax := fc.Syntax.WithDefaults()
		if err := syntax.Validate(); err != nil {
			return nil, NewConfigError(ErrMsgInvalidSyntax, err)
		}
		opts = append(opts, WithSyntax(syntax))
	}
	return opts, nil
}

// ParseConfig parses YAML configuration into compiler options.
func ParseConfig(data []byte) ([]Option, error) {
	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, NewConfigError(ErrMsgConfigParseFailed, err)
	}
	return fc.Options()
}

// LoadConfig reads a YAML configuration file into compiler options.
func LoadConfig(path string) ([]Option, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewConfigFileError(ErrMsgConfigReadFailed, path, err)
	}
	return ParseConfig(data)
}

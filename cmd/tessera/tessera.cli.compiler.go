package main

import (
	"errors"
	"flag"
	"io"

	"github.com/fatih/color"
	"github.com/itsatony/go-tessera"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// commonConfig holds the flags shared by every template command
type commonConfig struct {
	templatePath string
	contentType  string
	configPath   string
	noColor      bool
	verbose      bool
}

func registerCommonFlags(fs *flag.FlagSet, cfg *commonConfig) {
	fs.StringVar(&cfg.templatePath, FlagTemplate, "", "")
	fs.StringVar(&cfg.templatePath, FlagTemplateShort, "", "")
	fs.StringVar(&cfg.contentType, FlagType, "", "")
	fs.StringVar(&cfg.configPath, FlagConfig, "", "")
	fs.BoolVar(&cfg.noColor, FlagNoColor, false, "")
	fs.BoolVar(&cfg.verbose, FlagVerbose, false, "")
	fs.BoolVar(&cfg.verbose, FlagVerboseShort, false, "")
}

func (cfg *commonConfig) validate() error {
	if cfg.templatePath == "" {
		return errors.New(ErrMsgMissingTemplate)
	}
	if cfg.contentType != "" {
		if _, err := tessera.ParseContentType(cfg.contentType); err != nil {
			return errors.New(ErrMsgInvalidType)
		}
	}
	return nil
}

// newLogger returns a development logger writing to stderr when verbose
// is set, otherwise a no-op logger.
func newLogger(verbose bool, stderr io.Writer) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(encoder, zapcore.AddSync(stderr), zapcore.DebugLevel)
	return zap.New(core, zap.Development())
}

// newCompiler builds a compiler from the configuration file and flags.
// Flags override the file.
func newCompiler(cfg *commonConfig, logger *zap.Logger) (*tessera.Compiler, error) {
	opts := []tessera.Option{tessera.WithLogger(logger)}
	if cfg.configPath != "" {
		fileOpts, err := tessera.LoadConfig(cfg.configPath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, fileOpts...)
	}
	if cfg.contentType != "" {
		ct, err := tessera.ParseContentType(cfg.contentType)
		if err != nil {
			return nil, err
		}
		opts = append(opts, tessera.WithContentType(ct))
	}
	return tessera.New(opts...)
}

// palette colours severities. Colours are off when disabled by flag or
// when the output is not a terminal.
type palette struct {
	err  *color.Color
	warn *color.Color
	info *color.Color
	ok   *color.Color
}

func newPalette(noColor bool) *palette {
	p := &palette{
		err:  color.New(color.FgRed, color.Bold),
		warn: color.New(color.FgYellow),
		info: color.New(color.FgCyan),
		ok:   color.New(color.FgGreen),
	}
	if noColor {
		for _, c := range []*color.Color{p.err, p.warn, p.info, p.ok} {
			c.DisableColor()
		}
	}
	return p
}

func (p *palette) severity(s tessera.ValidationSeverity) string {
	switch s {
	case tessera.SeverityWarning:
		return p.warn.Sprint(SeverityNameWarning)
	case tessera.SeverityInfo:
		return p.info.Sprint(SeverityNameInfo)
	default:
		return p.err.Sprint(SeverityNameError)
	}
}

func severityToName(s tessera.ValidationSeverity) string {
	switch s {
	case tessera.SeverityWarning:
		return SeverityNameWarning
	case tessera.SeverityInfo:
		return SeverityNameInfo
	default:
		return SeverityNameError
	}
}

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/itsatony/go-tessera"
)

// parseConfig holds parsed parse command configuration
type parseConfig struct {
	commonConfig
	format     string
	outputPath string
}

func runParse(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseParseFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidArguments, err)
		return ExitCodeUsageError
	}

	source, err := readInput(cfg.templatePath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
		return ExitCodeInputError
	}

	logger := newLogger(cfg.verbose, stderr)
	defer func() { _ = logger.Sync() }()

	compiler, err := newCompiler(&cfg.commonConfig, logger)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgCompilerFailed, err)
		return ExitCodeInputError
	}

	tmpl, err := compiler.Parse(string(source))
	if err != nil {
		reportParseError(cfg.templatePath, err, stderr)
		return ExitCodeValidationError
	}

	var data []byte
	if cfg.format == OutputFormatText {
		data = []byte(tmpl.String() + FmtNewline)
	} else if data, err = tmpl.Export(cfg.format); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgExportFailed, err)
		return ExitCodeError
	}

	if err := writeOutput(cfg.outputPath, data, stdout); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgWriteOutputFailed, err)
		return ExitCodeError
	}
	return ExitCodeSuccess
}

func parseParseFlags(args []string) (*parseConfig, error) {
	fs := flag.NewFlagSet(CmdNameParse, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	cfg := &parseConfig{}
	registerCommonFlags(fs, &cfg.commonConfig)
	fs.StringVar(&cfg.format, FlagFormat, FlagDefaultFormat, "")
	fs.StringVar(&cfg.format, FlagFormatShort, FlagDefaultFormat, "")
	fs.StringVar(&cfg.outputPath, FlagOutput, FlagDefaultOutput, "")
	fs.StringVar(&cfg.outputPath, FlagOutputShort, FlagDefaultOutput, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	switch cfg.format {
	case OutputFormatText, OutputFormatJSON, OutputFormatYAML:
	default:
		return nil, errors.New(ErrMsgInvalidFormat)
	}
	return cfg, nil
}

// reportParseError prints a parse error as file:line:column: message.
func reportParseError(path string, err error, stderr io.Writer) {
	pos, ok := tessera.ErrorPosition(err)
	if !ok {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgParseTemplateFailed, err)
		return
	}
	fmt.Fprintf(stderr, FmtParseError, displayName(path), pos.Line, pos.Column, tessera.ErrorMessage(err))
}

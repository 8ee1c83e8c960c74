package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/itsatony/go-tessera"
)

// validateConfig holds parsed validate command configuration
type validateConfig struct {
	commonConfig
	format string
	strict bool
}

// validationOutput represents JSON output for validate and lint
type validationOutput struct {
	Valid  bool                    `json:"valid"`
	Issues []validationIssueOutput `json:"issues,omitempty"`
}

type validationIssueOutput struct {
	RuleID      string   `json:"rule_id"`
	Severity    string   `json:"severity"`
	Message     string   `json:"message"`
	Line        int      `json:"line"`
	Column      int      `json:"column"`
	Name        string   `json:"name,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

func runValidate(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseValidateFlags(CmdNameValidate, args, nil)
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

	result, err := compiler.Validate(string(source))
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgParseTemplateFailed, err)
		return ExitCodeError
	}

	return outputIssues(result.Issues(), cfg, stdout)
}

// parseValidateFlags parses the flags of validate, and of lint when
// extra registers the lint-only flags.
func parseValidateFlags(name string, args []string, extra func(*flag.FlagSet)) (*validateConfig, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	cfg := &validateConfig{}
	registerCommonFlags(fs, &cfg.commonConfig)
	fs.StringVar(&cfg.format, FlagFormat, FlagDefaultFormat, "")
	fs.StringVar(&cfg.format, FlagFormatShort, FlagDefaultFormat, "")
	fs.BoolVar(&cfg.strict, FlagStrictMode, false, "")
	if extra != nil {
		extra(fs)
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.format != OutputFormatText && cfg.format != OutputFormatJSON {
		return nil, errors.New(ErrMsgInvalidFormat)
	}
	return cfg, nil
}

// outputIssues prints issues and returns the exit code: validation
// error when there are errors, or warnings in strict mode.
func outputIssues(issues []tessera.ValidationIssue, cfg *validateConfig, stdout io.Writer) int {
	var errCount, warnCount int
	for _, issue := range issues {
		switch issue.Severity {
		case tessera.SeverityError:
			errCount++
		case tessera.SeverityWarning:
			warnCount++
		}
	}
	failed := errCount > 0 || (cfg.strict && warnCount > 0)

	if cfg.format == OutputFormatJSON {
		outputIssuesJSON(issues, !failed, stdout)
	} else {
		outputIssuesText(issues, errCount, warnCount, newPalette(cfg.noColor), stdout)
	}

	if failed {
		return ExitCodeValidationError
	}
	return ExitCodeSuccess
}

func outputIssuesText(issues []tessera.ValidationIssue, errCount, warnCount int, p *palette, stdout io.Writer) {
	if len(issues) == 0 {
		fmt.Fprintln(stdout, p.ok.Sprint(ValidationTextSuccess))
		return
	}

	fmt.Fprintln(stdout, ValidationTextIssueHeader)
	for _, issue := range issues {
		fmt.Fprintf(stdout, ValidationTextIssueFormat+FmtNewline,
			p.severity(issue.Severity), issue.RuleID, issue.Message, issue.Position.Line, issue.Position.Column)
		if len(issue.Suggestions) > 0 {
			fmt.Fprintf(stdout, ValidationTextSuggestion+FmtNewline, strings.Join(issue.Suggestions, ", "))
		}
	}
	fmt.Fprintf(stdout, ValidationTextErrorSummary+FmtNewline, errCount, warnCount)
}

func outputIssuesJSON(issues []tessera.ValidationIssue, valid bool, stdout io.Writer) {
	output := validationOutput{
		Valid:  valid,
		Issues: make([]validationIssueOutput, 0, len(issues)),
	}
	for _, issue := range issues {
		output.Issues = append(output.Issues, validationIssueOutput{
			RuleID:      issue.RuleID,
			Severity:    severityToName(issue.Severity),
			Message:     issue.Message,
			Line:        issue.Position.Line,
			Column:      issue.Position.Column,
			Name:        issue.Name,
			Suggestions: issue.Suggestions,
		})
	}

	jsonBytes, _ := json.MarshalIndent(output, "", "  ")
	fmt.Fprintln(stdout, string(jsonBytes))
}

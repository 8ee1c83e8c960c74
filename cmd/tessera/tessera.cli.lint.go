package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/itsatony/go-tessera"
)

// lintConfig holds the lint-only flags
type lintConfig struct {
	rules      string
	ignore     string
	components string
}

// lintRuleSet tracks which rules to report. Syntax errors are always
// reported.
type lintRuleSet struct {
	enabledRules map[string]bool
}

func newLintRuleSet(rules, ignore string) (*lintRuleSet, error) {
	rs := &lintRuleSet{enabledRules: make(map[string]bool)}
	for _, id := range tessera.LintRules() {
		rs.enabledRules[id] = rules == ""
	}

	for _, id := range splitList(rules) {
		id = strings.ToUpper(id)
		if _, known := rs.enabledRules[id]; !known {
			return nil, fmt.Errorf("%s: %s", ErrMsgUnknownRule, id)
		}
		rs.enabledRules[id] = true
	}
	for _, id := range splitList(ignore) {
		id = strings.ToUpper(id)
		if _, known := rs.enabledRules[id]; !known {
			return nil, fmt.Errorf("%s: %s", ErrMsgUnknownRule, id)
		}
		rs.enabledRules[id] = false
	}
	return rs, nil
}

func (rs *lintRuleSet) isEnabled(rule string) bool {
	return rule == tessera.RuleSyntax || rs.enabledRules[rule]
}

func (rs *lintRuleSet) filter(issues []tessera.ValidationIssue) []tessera.ValidationIssue {
	out := make([]tessera.ValidationIssue, 0, len(issues))
	for _, issue := range issues {
		if rs.isEnabled(issue.RuleID) {
			out = append(out, issue)
		}
	}
	return out
}

func runLint(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	lc := &lintConfig{}
	cfg, err := parseValidateFlags(CmdNameLint, args, func(fs *flag.FlagSet) {
		fs.StringVar(&lc.rules, FlagRules, "", "")
		fs.StringVar(&lc.rules, FlagRulesShort, "", "")
		fs.StringVar(&lc.ignore, FlagIgnore, "", "")
		fs.StringVar(&lc.ignore, FlagIgnoreShort, "", "")
		fs.StringVar(&lc.components, FlagComponents, "", "")
		fs.StringVar(&lc.components, FlagComponentsShort, "", "")
	})
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidArguments, err)
		return ExitCodeUsageError
	}

	ruleSet, err := newLintRuleSet(lc.rules, lc.ignore)
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
	if err := registerComponents(compiler, splitList(lc.components)); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgRegisterFailed, err)
		return ExitCodeInputError
	}

	result, err := compiler.Validate(string(source))
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgParseTemplateFailed, err)
		return ExitCodeError
	}

	return outputIssues(ruleSet.filter(result.Issues()), cfg, stdout)
}

// registerComponents registers each file under its base name without
// extension, so "ui/Card.html" becomes "Card".
func registerComponents(compiler *tessera.Compiler, paths []string) error {
	for _, path := range paths {
		source, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if name == "" {
			return errors.New(tessera.ErrMsgEmptyTemplateName)
		}
		if err := compiler.Register(name, string(source)); err != nil {
			return err
		}
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ListSeparator) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

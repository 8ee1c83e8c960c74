package tessera

import (
	"strings"
	"unicode"

	"github.com/itsatony/go-tessera/ast"
	"github.com/itsatony/go-tessera/internal"
	"go.uber.org/zap"
)

// Lint messages
const (
	MsgKeywordTypo        = "statement looks like a misspelled keyword"
	MsgEmptyExpression    = "expression is empty"
	MsgDuplicateArgument  = "argument is set more than once"
	MsgUnknownComponent   = "child template is not registered"
	MsgEmptyBlock         = "block has an empty body"
	minKeywordTypoRuneLen = 3
)

// ValidationResult contains the results of template validation.
type ValidationResult struct {
	issues []ValidationIssue
}

// ValidationIssue represents a single validation finding.
type ValidationIssue struct {
	Severity    ValidationSeverity
	RuleID      string
	Message     string
	Position    Position
	Name        string   // Keyword, argument or component the issue is about
	Suggestions []string // Did-you-mean candidates, closest first
}

// Issues returns all validation issues found.
func (r *ValidationResult) Issues() []ValidationIssue {
	return r.issues
}

// Errors returns only issues with error severity.
func (r *ValidationResult) Errors() []ValidationIssue {
	return r.filter(SeverityError)
}

// Warnings returns only issues with warning severity.
func (r *ValidationResult) Warnings() []ValidationIssue {
	return r.filter(SeverityWarning)
}

func (r *ValidationResult) filter(severity ValidationSeverity) []ValidationIssue {
	var out []ValidationIssue
	for _, issue := range r.issues {
		if issue.Severity == severity {
			out = append(out, issue)
		}
	}
	return out
}

// HasErrors returns true if there are any error-severity issues.
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors()) > 0
}

// HasWarnings returns true if there are any warning-severity issues.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings()) > 0
}

// IsValid returns true if there are no error-severity issues.
func (r *ValidationResult) IsValid() bool {
	return !r.HasErrors()
}

// Validate parses source and lints the result. Parse errors are
// reported as a single error issue rather than returned; the error
// return is reserved for failures unrelated to the source.
func (c *Compiler) Validate(source string) (*ValidationResult, error) {
	result := &ValidationResult{issues: make([]ValidationIssue, 0)}

	tmpl, err := c.Parse(source)
	if err != nil {
		pos, _ := ErrorPosition(err)
		result.issues = append(result.issues, ValidationIssue{
			Severity: SeverityError,
			RuleID:   RuleSyntax,
			Message:  ErrorMessage(err),
			Position: pos,
		})
		c.logValidation(result)
		return result, nil
	}

	result.issues = append(result.issues, c.Lint(tmpl)...)
	c.logValidation(result)
	return result, nil
}

func (c *Compiler) logValidation(result *ValidationResult) {
	c.logger.Debug(LogMsgValidationComplete,
		zap.Int(LogFieldErrors, len(result.Errors())),
		zap.Int(LogFieldWarnings, len(result.Warnings())))
}

// Lint checks a parsed template for likely mistakes. All findings are
// warnings.
func (c *Compiler) Lint(tmpl *Template) []ValidationIssue {
	registered := c.Names()
	issues := make([]ValidationIssue, 0)
	warn := func(rule, msg string, offset int, name string, suggestions []string) {
		issues = append(issues, ValidationIssue{
			Severity:    SeverityWarning,
			RuleID:      rule,
			Message:     msg,
			Position:    tmpl.Position(offset),
			Name:        name,
			Suggestions: suggestions,
		})
	}

	tmpl.Walk(func(item ast.Item, _ int) bool {
		switch it := item.(type) {
		case *ast.PlainStatement:
			if word, suggestions := keywordTypo(it.Text.String()); len(suggestions) > 0 {
				warn(RuleKeywordTypo, MsgKeywordTypo, it.Offset(), word, suggestions)
			}
		case *ast.Expression:
			if it.Text.IsEmpty() {
				warn(RuleEmptyExpression, MsgEmptyExpression, it.Offset(), "", nil)
			}
		case *ast.KeywordStatement:
			if it.Keyword.HasBody() && len(it.Body) == 0 {
				warn(RuleEmptyBlock, MsgEmptyBlock, it.Offset(), it.Keyword.String(), nil)
			}
		case *ast.ChildTemplate:
			name := it.Name.String()
			seen := make(map[string]bool, len(it.Arguments))
			for _, arg := range it.Arguments {
				argName := arg.Name.String()
				if seen[argName] {
					warn(RuleDuplicateArgument, MsgDuplicateArgument, arg.Offset, argName, nil)
				}
				seen[argName] = true
			}
			if len(registered) > 0 && !c.Has(name) {
				warn(RuleUnknownComponent, MsgUnknownComponent, it.Offset(), name,
					internal.FindSimilarStrings(name, registered, MaxSuggestions))
			}
		}
		return true
	})
	return issues
}

// keywordTypo returns the first word of a plain statement and the
// keywords it closely resembles.
func keywordTypo(stmt string) (string, []string) {
	word := strings.FieldsFunc(stmt, func(r rune) bool { return !unicode.IsLetter(r) })
	if len(word) == 0 || !strings.HasPrefix(stmt, word[0]) {
		return "", nil
	}
	first := word[0]
	if len([]rune(first)) < minKeywordTypoRuneLen {
		return first, nil
	}
	if _, isKeyword := ast.ParseKeyword(first); isKeyword {
		return first, nil
	}

	return first, internal.FindSimilarStrings(first, keywordSpellings(), MaxSuggestions)
}

func keywordSpellings() []string {
	kws := ast.Keywords()
	out := make([]string, 0, len(kws))
	for _, kw := range kws {
		if kw == ast.KeywordElseIf {
			continue
		}
		out = append(out, kw.String())
	}
	return out
}

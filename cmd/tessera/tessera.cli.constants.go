package main

// Command names
const (
	CmdNameParse    = "parse"
	CmdNameValidate = "validate"
	CmdNameLint     = "lint"
	CmdNameVersion  = "version"
	CmdNameHelp     = "help"
)

// Flag names - long form
const (
	FlagTemplate   = "template"
	FlagType       = "type"
	FlagConfig     = "config"
	FlagOutput     = "output"
	FlagFormat     = "format"
	FlagStrictMode = "strict"
	FlagNoColor    = "no-color"
	FlagVerbose    = "verbose"
	FlagRules      = "rules"
	FlagIgnore     = "ignore"
	FlagComponents = "components"
)

// Flag names - short form
const (
	FlagTemplateShort   = "t"
	FlagOutputShort     = "o"
	FlagFormatShort     = "F"
	FlagVerboseShort    = "v"
	FlagRulesShort      = "r"
	FlagIgnoreShort     = "i"
	FlagComponentsShort = "c"
)

// Flag default values
const (
	FlagDefaultOutput = "-" // stdout
	FlagDefaultFormat = "text"
)

// Output formats
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// Exit codes
const (
	ExitCodeSuccess         = 0
	ExitCodeError           = 1
	ExitCodeUsageError      = 2
	ExitCodeValidationError = 3
	ExitCodeInputError      = 4
)

// Input source indicators
const (
	InputSourceStdin = "-"
)

// Error messages
const (
	ErrMsgUnknownCommand      = "unknown command"
	ErrMsgInvalidArguments    = "invalid arguments"
	ErrMsgMissingTemplate     = "template source required"
	ErrMsgReadFileFailed      = "failed to read file"
	ErrMsgWriteOutputFailed   = "failed to write output"
	ErrMsgParseTemplateFailed = "template parsing failed"
	ErrMsgInvalidFormat       = "invalid output format"
	ErrMsgInvalidType         = "invalid content type"
	ErrMsgUnknownRule         = "unknown lint rule"
	ErrMsgCompilerFailed      = "failed to configure compiler"
	ErrMsgRegisterFailed      = "failed to register component"
	ErrMsgExportFailed        = "failed to export template"
)

// Help text templates
const (
	HelpMainUsage = `go-tessera - Compile-time HTML template checker

Usage:
    tessera <command> [options]

Commands:
    parse       Print the item tree of a template
    validate    Validate a template
    lint        Validate a template with rule selection
    version     Show version information
    help        Show help for a command

Use "tessera help <command>" for more information about a command.`

	helpCommonOptions = `    -t, --template <file>   Template file (use "-" for stdin)
    --type <type>           Default content type: html, plain
    --config <file>         YAML compiler configuration
    --no-color              Disable coloured output
    -v, --verbose           Log parser activity to stderr`

	HelpParseUsage = `Print the item tree of a template

Usage:
    tessera parse [options]

Options:
` + helpCommonOptions + `
    -F, --format <format>   Output format: text, json, yaml (default: text)
    -o, --output <file>     Output file (default: stdout)

Examples:
    tessera parse -t page.html
    tessera parse -t page.html -F json -o page.json
    cat page.html | tessera parse -t - -F yaml`

	HelpValidateUsage = `Validate a template

Usage:
    tessera validate [options]

Options:
` + helpCommonOptions + `
    -F, --format <format>   Output format: text, json (default: text)
    --strict                Treat warnings as errors

Examples:
    tessera validate -t page.html
    tessera validate -t page.html --strict
    cat page.html | tessera validate -t -`

	HelpLintUsage = `Validate a template with rule selection

Usage:
    tessera lint [options]

Options:
` + helpCommonOptions + `
    -F, --format <format>   Output format: text, json (default: text)
    -r, --rules <ids>       Only report these rules (comma separated)
    -i, --ignore <ids>      Do not report these rules (comma separated)
    -c, --components <files> Register component templates (comma separated)
    --strict                Treat warnings as errors

Rules:
    STMT001     Statement looks like a misspelled keyword
    EXPR001     Empty expression
    ARG001      Argument set more than once
    COMP001     Child template not registered (needs --components)
    BLOCK001    Block with an empty body

Examples:
    tessera lint -t page.html
    tessera lint -t page.html --ignore BLOCK001
    tessera lint -t page.html -c Card.html,Layout.html --rules COMP001`

	HelpVersionUsage = `Show version information

Usage:
    tessera version [options]

Options:
    -F, --format <format>   Output format: text, json (default: text)`

	HelpHelpUsage = `Show help for a command

Usage:
    tessera help [command]

Commands:
    parse       Show help for parse command
    validate    Show help for validate command
    lint        Show help for lint command
    version     Show help for version command`
)

// Version output format templates
const (
	VersionTextTemplate = "go-tessera version %s\nCommit: %s\nBranch: %s\nBuilt: %s\nGo: %s"
	VersionUnknown      = "unknown"
	VersionsFileName    = "versions.yaml"
)

// Validation output format templates
const (
	ValidationTextSuccess      = "Template is valid"
	ValidationTextIssueHeader  = "Validation issues:"
	ValidationTextIssueFormat  = "  [%s] %s: %s at line %d, column %d"
	ValidationTextSuggestion   = "    did you mean: %s"
	ValidationTextErrorSummary = "%d error(s), %d warning(s)"
)

// Severity names for output
const (
	SeverityNameError   = "ERROR"
	SeverityNameWarning = "WARNING"
	SeverityNameInfo    = "INFO"
)

// CLI metadata
const (
	CLIName        = "tessera"
	CLIDescription = "Compile-time HTML template checker"
)

// File permission constant
const (
	FilePermissions = 0644
)

// Format string constants
const (
	FmtErrorWithDetail = "%s: %s\n"
	FmtErrorWithCause  = "%s: %v\n"
	FmtParseError      = "%s:%d:%d: %s\n"
	FmtNewline         = "\n"
	ListSeparator      = ","
	StdinDisplayName   = "<stdin>"
)

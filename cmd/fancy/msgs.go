package fancy

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Colorize text with a tiny bracket markup"
	MsgRenderShort     = "Render markup to the terminal"
	MsgExpandShort     = "Print the Go expression for a colorized literal"
	MsgGenShort        = "Generate Go code from message catalogs"
	MsgCheckShort      = "Validate message catalogs"
	MsgSyntaxShort     = "Show the markup reference"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgGenerated     = "Generated %s"
	MsgCatalogOK     = "%s: %d message(s) ok"
	MsgProblemHeader = "%s: message %s"

	// Error messages
	MsgErrNoCommand  = "no command specified"
	MsgErrNoCatalogs = "no catalogs given and gen.catalogs is empty"
	MsgErrProblems   = "%d problem(s) found in %d catalog(s)"
	MsgErrReadInput  = "failed to read standard input"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagColor     = "When to emit color: auto, always or never"
	MsgFlagConfig    = "User configuration file (default $XDG_CONFIG_HOME/fancy/config.toml)"
	MsgFlagNoNewline = "Do not print the trailing newline"
	MsgFlagOutput    = "Output file name (single catalog only)"
	MsgFlagPackage   = "Package name for catalogs that do not declare one"
	MsgFlagDir       = "Directory to write generated files to"
	MsgFlagWidth     = "Wrap the reference at this column (0 for automatic)"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/render-long.txt
	msgRenderLongRaw string
	MsgRenderLong    = strings.TrimSpace(msgRenderLongRaw)

	//go:embed msgs/render-example.txt
	msgRenderExampleRaw string
	MsgRenderExample    = strings.TrimRight(msgRenderExampleRaw, "\n")

	//go:embed msgs/expand-long.txt
	msgExpandLongRaw string
	MsgExpandLong    = strings.TrimSpace(msgExpandLongRaw)

	//go:embed msgs/expand-example.txt
	msgExpandExampleRaw string
	MsgExpandExample    = strings.TrimRight(msgExpandExampleRaw, "\n")

	//go:embed msgs/gen-long.txt
	msgGenLongRaw string
	MsgGenLong    = strings.TrimSpace(msgGenLongRaw)

	//go:embed msgs/gen-example.txt
	msgGenExampleRaw string
	MsgGenExample    = strings.TrimRight(msgGenExampleRaw, "\n")

	//go:embed msgs/check-long.txt
	msgCheckLongRaw string
	MsgCheckLong    = strings.TrimSpace(msgCheckLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)

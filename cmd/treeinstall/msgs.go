package treeinstall

import (
	"embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Install selected files from a source tree into a destination tree"
	MsgInstallShort    = "Copy the files selected by every install spec"
	MsgListShort       = "Show the install plan without copying"
	MsgGenConfigShort  = "Print the built-in configuration"
	MsgSyntaxShort     = "Show the manifest and rewrite reference"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgConfigWritten = "Wrote %s\n"
	MsgConfigKept    = "%s already exists, use --force to overwrite\n"
	MsgVersionFormat = "treeinstall %s (commit %s, built %s)\n"

	// Error messages
	MsgErrUnknownTopic = "unknown guide %q, available: %s"
	MsgErrNoCommand    = "no command specified"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Configuration file (default: treeinstall.toml in the current directory)"
	MsgFlagSource  = "Source root the manifests are evaluated against"
	MsgFlagDest    = "Destination root files are installed under"
	MsgFlagRoot    = "Alternate root prepended to the destination root"
	MsgFlagVar     = "Set a substitution variable (name=value, repeatable)"
	MsgFlagDryRun  = "Preview the copies without executing them"
	MsgFlagOutput  = "Output format: auto, term, text, json or yaml"
	MsgFlagWrite   = "Write the configuration to a file instead of stdout"
	MsgFlagPath    = "File to write with --write"
	MsgFlagForce   = "Overwrite an existing configuration file"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/install-long.txt
	msgInstallLongRaw string
	MsgInstallLong    = strings.TrimSpace(msgInstallLongRaw)

	//go:embed msgs/install-example.txt
	msgInstallExampleRaw string
	MsgInstallExample    = strings.TrimRight(msgInstallExampleRaw, "\n")

	//go:embed msgs/list-long.txt
	msgListLongRaw string
	MsgListLong    = strings.TrimSpace(msgListLongRaw)

	//go:embed msgs/list-example.txt
	msgListExampleRaw string
	MsgListExample    = strings.TrimRight(msgListExampleRaw, "\n")

	//go:embed msgs/genconfig-long.txt
	msgGenConfigLongRaw string
	MsgGenConfigLong    = strings.TrimSpace(msgGenConfigLongRaw)

	//go:embed msgs/genconfig-example.txt
	msgGenConfigExampleRaw string
	MsgGenConfigExample    = strings.TrimRight(msgGenConfigExampleRaw, "\n")

	//go:embed msgs/syntax-long.txt
	msgSyntaxLongRaw string
	MsgSyntaxLong    = strings.TrimSpace(msgSyntaxLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)

// helpFS holds the guides served by "help <topic>" and "syntax"
//
//go:embed help
var helpFS embed.FS

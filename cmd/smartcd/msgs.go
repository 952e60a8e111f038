package smartcd

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Fuzzy directory resolver and picker for cd"
	MsgResolveShort    = "Resolve a directory token and print the destination"
	MsgSearchShort     = "List directories matching a token below the search roots"
	MsgInitShort       = "Print the shell integration function"
	MsgConfigShort     = "Print the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagEmit     = "Output format: path or cd"
	MsgFlagPrevious = "Previous directory, used for - and ~- (usually $OLDPWD)"
	MsgFlagPwd      = "Directory relative tokens resolve against (usually $PWD)"
	MsgFlagNoPicker = "Do not use the fuzzy finder; fall back to the numbered menu"
	MsgFlagBackend  = "Search backend: fd, walk or auto"
	MsgFlagCmd      = "Name of the generated shell function"
	MsgFlagDefaults = "Print the commented default configuration instead"

	// Error messages
	MsgErrInitPaths  = "failed to initialize paths"
	MsgErrLoadConfig = "failed to load configuration"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/resolve-long.txt
	msgResolveLongRaw string
	MsgResolveLong    = strings.TrimSpace(msgResolveLongRaw)

	//go:embed msgs/resolve-example.txt
	msgResolveExampleRaw string
	MsgResolveExample    = strings.TrimRight(msgResolveExampleRaw, "\n")

	//go:embed msgs/search-long.txt
	msgSearchLongRaw string
	MsgSearchLong    = strings.TrimSpace(msgSearchLongRaw)

	//go:embed msgs/init-long.txt
	msgInitLongRaw string
	MsgInitLong    = strings.TrimSpace(msgInitLongRaw)

	//go:embed msgs/init-example.txt
	msgInitExampleRaw string
	MsgInitExample    = strings.TrimRight(msgInitExampleRaw, "\n")

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)

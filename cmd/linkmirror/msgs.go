package linkmirror

import (
	_ "embed"
	"strings"
)

// Short messages
const (
	MsgRootShort       = "Mirror a source folder into a target folder with links"
	MsgStatusShort     = "Show how every rule's target relates to its source"
	MsgApplyShort      = "Create the missing links"
	MsgWatchShort      = "Show status and refresh it when the target changes"
	MsgInitShort       = "Write a sample rule file"
	MsgRulesShort      = "List the platforms and rules of the rule file"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"
	MsgManLong         = "Generate man pages for linkmirror and its commands into a directory."

	MsgNoCommand        = "no command specified"
	MsgSampleWritten    = "Wrote sample rules to %s"
	MsgWatching         = "Watching %s, press Ctrl-C to stop."
	MsgNoTargetSelected = "No target folder selected."
	MsgTargetPrompt     = "Target folder"
	MsgManWritten       = "Wrote man pages to %s"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig   = "Config file (default is $XDG_CONFIG_HOME/linkmirror/config.toml)"
	MsgFlagRules    = "Rule file (default is $XDG_CONFIG_HOME/linkmirror/rules.toml)"
	MsgFlagPlatform = "Platform section of the rule file (default is the running OS)"
	MsgFlagFormat   = "Output format: auto, term, text or json"
	MsgFlagTarget   = "Target root that receives the links"
	MsgFlagForce    = "Overwrite an existing rule file"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/status-long.txt
	msgStatusLongRaw string
	MsgStatusLong    = strings.TrimSpace(msgStatusLongRaw)

	//go:embed msgs/status-example.txt
	msgStatusExampleRaw string
	MsgStatusExample    = strings.TrimRight(msgStatusExampleRaw, "\n")

	//go:embed msgs/apply-long.txt
	msgApplyLongRaw string
	MsgApplyLong    = strings.TrimSpace(msgApplyLongRaw)

	//go:embed msgs/apply-example.txt
	msgApplyExampleRaw string
	MsgApplyExample    = strings.TrimRight(msgApplyExampleRaw, "\n")

	//go:embed msgs/watch-long.txt
	msgWatchLongRaw string
	MsgWatchLong    = strings.TrimSpace(msgWatchLongRaw)

	//go:embed msgs/watch-example.txt
	msgWatchExampleRaw string
	MsgWatchExample    = strings.TrimRight(msgWatchExampleRaw, "\n")

	//go:embed msgs/init-long.txt
	msgInitLongRaw string
	MsgInitLong    = strings.TrimSpace(msgInitLongRaw)

	//go:embed msgs/init-example.txt
	msgInitExampleRaw string
	MsgInitExample    = strings.TrimRight(msgInitExampleRaw, "\n")

	//go:embed msgs/rules-long.txt
	msgRulesLongRaw string
	MsgRulesLong    = strings.TrimSpace(msgRulesLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)

package bundlr

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Bundle and minify scripts and style sheets"
	MsgJSShort         = "Bundle JavaScript sources"
	MsgCSSShort        = "Bundle CSS sources"
	MsgBuildShort      = "Build bundles defined in the configuration"
	MsgGenConfigShort  = "Generate the default configuration file"
	MsgGenConfigLong   = "Output the default configuration to stdout, or write it to ./.bundlr.toml with -w."
	MsgConfigShort     = "Print the effective configuration"
	MsgConfigLong      = "Print the configuration after merging defaults, the project file, the environment and flags."
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"

	// Status messages
	MsgConfigWritten  = "Wrote default configuration to %s\n"
	MsgConfigExists   = "%s already exists, not overwriting\n"
	MsgConfigSource   = "# loaded from %s\n"
	MsgManWritten     = "Wrote man pages to %s\n"
	MsgDryRunNotice   = "\nDRY RUN MODE - No files were written"
	MsgBundleComplete = "Wrote %d bytes to %s\n"

	// Error messages
	MsgErrNoCommand     = "no command specified"
	MsgErrLoadConfig    = "failed to load configuration: %w"
	MsgErrNoBundles     = "no bundles defined in configuration"
	MsgErrBundlesFailed = "%d of %d bundles failed"
	MsgErrFormat        = "unknown format %q (use toml or yaml)"
	MsgErrWriteConfig   = "failed to write %s: %w"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig     = "Configuration file (default: .bundlr.toml in the current directory)"
	MsgFlagSrcPath    = "Directory relative sources are read from"
	MsgFlagNoCompress = "Skip compaction of the assembled bundle"
	MsgFlagStrict     = "Aggressive style-sheet compaction"
	MsgFlagNoMangle   = "Keep identifier names when compacting scripts"
	MsgFlagRetries    = "Extra attempts for failed remote fetches"
	MsgFlagOutput     = "Write the bundle to this file instead of stdout"
	MsgFlagDryRun     = "Build without writing any file"
	MsgFlagWrite      = "Write config to ./.bundlr.toml instead of stdout"
	MsgFlagFormat     = "Output format: toml or yaml"
	MsgFlagManDir     = "Directory to write man pages to"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/bundle-long.txt
	msgBundleLongRaw string
	MsgBundleLong    = strings.TrimSpace(msgBundleLongRaw)

	//go:embed msgs/js-example.txt
	msgJSExampleRaw string
	MsgJSExample    = strings.TrimRight(msgJSExampleRaw, "\n")

	//go:embed msgs/css-example.txt
	msgCSSExampleRaw string
	MsgCSSExample    = strings.TrimRight(msgCSSExampleRaw, "\n")

	//go:embed msgs/build-long.txt
	msgBuildLongRaw string
	MsgBuildLong    = strings.TrimSpace(msgBuildLongRaw)

	//go:embed msgs/build-example.txt
	msgBuildExampleRaw string
	MsgBuildExample    = strings.TrimRight(msgBuildExampleRaw, "\n")

	//go:embed msgs/genconfig-example.txt
	msgGenConfigExampleRaw string
	MsgGenConfigExample    = strings.TrimRight(msgGenConfigExampleRaw, "\n")

	//go:embed msgs/config-example.txt
	msgConfigExampleRaw string
	MsgConfigExample    = strings.TrimRight(msgConfigExampleRaw, "\n")
)

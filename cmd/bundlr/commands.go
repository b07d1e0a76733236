package bundlr

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"os"

	"github.com/arthur-debert/bundlr/internal/version"
	"github.com/arthur-debert/bundlr/pkg/bundler"
	"github.com/arthur-debert/bundlr/pkg/cobrax/topics"
	"github.com/arthur-debert/bundlr/pkg/config"
	"github.com/arthur-debert/bundlr/pkg/logging"
	"github.com/arthur-debert/bundlr/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics
var topicsFS embed.FS

// globalOptions are the persistent flags shared by every command
type globalOptions struct {
	verbosity  int
	configFile string
	srcPath    string
	noCompress bool
	strict     bool
	noMangle   bool
	retries    int
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "bundlr",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.StringVarP(&opts.configFile, "config", "c", "", MsgFlagConfig)
	flags.StringVar(&opts.srcPath, "src-path", "", MsgFlagSrcPath)
	flags.BoolVar(&opts.noCompress, "no-compress", false, MsgFlagNoCompress)
	flags.BoolVar(&opts.strict, "strict", false, MsgFlagStrict)
	flags.BoolVar(&opts.noMangle, "no-mangle", false, MsgFlagNoMangle)
	flags.IntVar(&opts.retries, "retries", 0, MsgFlagRetries)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "config",
		Title: "CONFIGURATION:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.AddCommand(newBundleCmd(opts, types.KindScript))
	rootCmd.AddCommand(newBundleCmd(opts, types.KindStyle))
	rootCmd.AddCommand(newBuildCmd(opts))
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	helpTopics, err := fs.Sub(topicsFS, "topics")
	if err == nil {
		_, err = topics.InitializeWithOptions(rootCmd, helpTopics, topics.Options{
			Renderer: topics.NewGlamourRenderer(),
		})
	}
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// loadConfig merges the configuration layers with the flags the user set
func loadConfig(cmd *cobra.Command, opts *globalOptions) (*config.Config, error) {
	overrides := map[string]interface{}{}
	flags := cmd.Flags()

	if flags.Changed("src-path") {
		overrides["defaults.src_path"] = opts.srcPath
	}
	if flags.Changed("no-compress") {
		overrides["defaults.compress"] = !opts.noCompress
	}
	if flags.Changed("strict") {
		overrides["defaults.strict"] = opts.strict
	}
	if flags.Changed("no-mangle") {
		overrides["defaults.mangle"] = !opts.noMangle
	}
	if flags.Changed("retries") {
		overrides["http.retries"] = opts.retries
	}

	dir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadConfig, err)
	}

	cfg, err := config.Load(config.LoadOptions{
		Dir:       dir,
		File:      opts.configFile,
		Overrides: overrides,
	})
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadConfig, err)
	}
	return cfg, nil
}

// newBundler builds a bundler wired to the configured HTTP settings
func newBundler(cfg *config.Config, extra ...bundler.Option) *bundler.Bundler {
	opts := []bundler.Option{
		bundler.WithHTTPClient(&http.Client{Timeout: cfg.HTTP.Timeout}),
		bundler.WithRetries(cfg.HTTP.Retries),
		bundler.WithLogger(logging.GetLogger("cli.bundler")),
	}
	return bundler.New(append(opts, extra...)...)
}

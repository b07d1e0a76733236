package bundlr

import (
	"fmt"

	"github.com/arthur-debert/bundlr/pkg/bundler"
	"github.com/arthur-debert/bundlr/pkg/config"
	"github.com/arthur-debert/bundlr/pkg/logging"
	"github.com/arthur-debert/bundlr/pkg/sink"
	"github.com/arthur-debert/bundlr/pkg/style"
	"github.com/spf13/cobra"
)

func newBuildCmd(opts *globalOptions) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:     "build [<bundle>...]",
		Short:   MsgBuildShort,
		Long:    MsgBuildLong,
		Example: MsgBuildExample,
		GroupID: "core",
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return nil, cobra.ShellCompDirectiveError
			}
			names := make([]string, 0, len(cfg.Bundles))
			for _, b := range cfg.Bundles {
				names = append(names, b.Name)
			}
			return names, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.build")

			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}

			// Step 1: Select bundles
			selected, err := selectBundles(cfg, args)
			if err != nil {
				return err
			}

			// Step 2: Build them one after another
			var extra []bundler.Option
			if dryRun {
				extra = append(extra, bundler.WithSink(sink.NewMemorySink()))
			}
			b := newBundler(cfg, extra...)

			statuses := make([]style.BundleStatus, 0, len(selected))
			failed := 0
			for _, def := range selected {
				kind, req, err := cfg.BundleRequest(def)
				if err != nil {
					return err
				}

				out := b.Bundle(cmd.Context(), kind, req).Wait()
				if !out.OK() {
					failed++
					logger.Debug().Err(out.Err).Str("bundle", def.Name).Msg("Bundle failed")
				} else if out.Destination == "" {
					if _, err := fmt.Fprintln(cmd.OutOrStdout(), out.Code); err != nil {
						return err
					}
				}
				statuses = append(statuses, style.NewBundleStatus(def.Name, kind, len(req.Sources), out))
			}

			// Step 3: Report
			fmt.Fprintln(cmd.ErrOrStderr(), style.RenderReport(statuses))
			if dryRun {
				fmt.Fprintln(cmd.ErrOrStderr(), MsgDryRunNotice)
			}

			logger.Info().
				Int("bundles", len(selected)).
				Int("failed", failed).
				Bool("dryRun", dryRun).
				Msg("Build completed")

			if failed > 0 {
				return fmt.Errorf(MsgErrBundlesFailed, failed, len(selected))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)

	return cmd
}

// selectBundles returns the named bundles in argument order, or every
// defined bundle when no names are given
func selectBundles(cfg *config.Config, names []string) ([]config.Bundle, error) {
	if len(cfg.Bundles) == 0 {
		return nil, fmt.Errorf(MsgErrNoBundles)
	}
	if len(names) == 0 {
		return cfg.Bundles, nil
	}

	selected := make([]config.Bundle, 0, len(names))
	for _, name := range names {
		b, err := cfg.FindBundle(name)
		if err != nil {
			return nil, err
		}
		selected = append(selected, b)
	}
	return selected, nil
}

package bundlr

import (
	"fmt"

	"github.com/arthur-debert/bundlr/pkg/logging"
	"github.com/arthur-debert/bundlr/pkg/types"
	"github.com/spf13/cobra"
)

// newBundleCmd creates the js or css command
func newBundleCmd(opts *globalOptions, kind types.Kind) *cobra.Command {
	var output string

	short, example := MsgJSShort, MsgJSExample
	if kind == types.KindStyle {
		short, example = MsgCSSShort, MsgCSSExample
	}

	cmd := &cobra.Command{
		Use:     kind.String() + " <source>...",
		Short:   short,
		Long:    MsgBundleLong,
		Example: example,
		Args:    cobra.MinimumNArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd." + kind.String())

			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}

			req := cfg.Request(args)
			req.Destination = output

			logger.Info().
				Strs("sources", req.Sources).
				Str("destination", req.Destination).
				Bool("compress", req.Compress).
				Msg("Starting bundle")

			out := newBundler(cfg).Bundle(cmd.Context(), kind, req).Wait()
			if !out.OK() {
				return out.Err
			}

			if out.Destination == "" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), out.Code)
				return err
			}
			_, err = fmt.Fprintf(cmd.ErrOrStderr(), MsgBundleComplete, len(out.Code), out.Destination)
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagOutput)

	return cmd
}

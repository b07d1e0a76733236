package bundlr

import (
	"fmt"

	"github.com/arthur-debert/bundlr/pkg/config"
	"github.com/arthur-debert/bundlr/pkg/filesystem"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newGenConfigCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Example: MsgGenConfigExample,
		Args:    cobra.NoArgs,
		GroupID: "config",
		RunE: func(cmd *cobra.Command, args []string) error {
			content := config.GetDefaultsContent()
			if !write {
				_, err := fmt.Fprint(cmd.OutOrStdout(), content)
				return err
			}

			fsys := filesystem.NewOS()
			path := config.ProjectFiles[0]
			if _, err := fsys.Stat(path); err == nil {
				_, err = fmt.Fprintf(cmd.ErrOrStderr(), MsgConfigExists, path)
				return err
			}
			if err := fsys.WriteFile(path, []byte(content), 0644); err != nil {
				return fmt.Errorf(MsgErrWriteConfig, path, err)
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten, path)
			return err
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)

	return cmd
}

func newConfigCmd(opts *globalOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		Example: MsgConfigExample,
		Args:    cobra.NoArgs,
		GroupID: "config",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}

			var data []byte
			switch format {
			case "toml":
				data, err = toml.Marshal(cfg.Raw())
			case "yaml", "yml":
				data, err = yaml.Marshal(cfg.Raw())
			default:
				return fmt.Errorf(MsgErrFormat, format)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if cfg.Source != "" {
				fmt.Fprintf(out, MsgConfigSource, cfg.Source)
			}
			_, err = out.Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "toml", MsgFlagFormat)
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions([]string{"toml", "yaml"}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

package genconfig

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/sffjunkie/rich-ascii/pkg/config"
	"github.com/sffjunkie/rich-ascii/pkg/errors"
	"github.com/sffjunkie/rich-ascii/pkg/logging"
)

// NewCommand creates the gen-config command writing through fs
func NewCommand(fs afero.Fs) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "config",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := config.GenerateContent(config.Default())
			if err != nil {
				return err
			}

			if !write {
				_, err := fmt.Fprint(cmd.OutOrStdout(), content)
				return err
			}

			path := config.DefaultConfigFile()
			if err := Write(fs, path, content); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), MsgWritten, path)
			return err
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)

	return cmd
}

// Write creates path with content, refusing to replace an existing file
func Write(fs afero.Fs, path, content string) error {
	logger := logging.GetLogger("cmd.genconfig")

	exists, err := afero.Exists(fs, path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to check %s", path)
	}
	if exists {
		return errors.Newf(errors.ErrInvalidInput, "config file %s already exists", path).
			WithDetail("path", path)
	}

	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrInternal, "failed to create %s", filepath.Dir(path))
	}
	if err := afero.WriteFile(fs, path, []byte(content), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrInternal, "failed to write %s", path)
	}

	logger.Info().Str("path", path).Msg("Wrote default config")
	return nil
}

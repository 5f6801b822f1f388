package topics

import (
	"embed"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sffjunkie/rich-ascii/pkg/cobrax/topics"
	"github.com/sffjunkie/rich-ascii/pkg/errors"
)

// FS holds the help topics built into the binary
//
//go:embed *.md
var FS embed.FS

// NewCommand creates the topics command backed by tm
func NewCommand(tm *topics.TopicManager) *cobra.Command {
	return &cobra.Command{
		Use:     "topics [topic]",
		Short:   MsgShort,
		Long:    MsgLong,
		GroupID: "misc",
		Args:    cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return tm.ListTopics(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				tm.WriteList(cmd.OutOrStdout(), cmd.Root().Name())
				return nil
			}

			topic, ok := tm.GetTopic(args[0])
			if !ok {
				return errors.Newf(errors.ErrTopicNotFound, "no help topic %q", args[0]).
					WithDetail("topic", args[0])
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), tm.RenderTopic(topic))
			return err
		},
	}
}

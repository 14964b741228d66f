package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/square360/copilot-drupal-instructions/internal/jsonfmt"
	"github.com/square360/copilot-drupal-instructions/internal/messages"
)

func newFormatJSONCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.FormatJSONUse,
		Short: messages.FormatJSONShort,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := messages.FormatJSONStdin
			var data []byte
			var err error
			if len(args) == 1 {
				source = args[0]
				data, err = os.ReadFile(source)
			} else {
				data, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return fmt.Errorf(messages.FormatJSONReadFmt, source, err)
			}
			pretty, err := jsonfmt.Format(data)
			if err != nil {
				return fmt.Errorf(messages.FormatJSONDecodeFmt, source, err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), pretty)
			return err
		},
	}
}

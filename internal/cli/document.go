package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hazelcast/cache-config-engine/internal/format"
)

func newDraftCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "draft DOCUMENT",
		Short: "Check that a hand written document can be submitted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			draft, err := format.ValidateDraft(string(data))
			if err != nil {
				return err
			}
			name := string(draft.Format)
			if draft.Format == format.FormatText {
				name = "text"
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "accepted %s document\n", name)
			return err
		},
	}
}

func newFmtCommand(o *options) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "fmt DOCUMENT",
		Short: "Re-indent a configuration document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			out, err := format.PrettyPrint(string(data))
			if err != nil {
				return err
			}
			return writeOutput(cmd, output, []byte(out))
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the document to this file")
	return cmd
}

func newConvertCommand(o *options) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "convert DOCUMENT",
		Short: "Convert a configuration document to another format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			to, err := formatFlag(cmd, "to")
			if err != nil {
				return err
			}
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			out, err := format.Convert(string(data), to)
			if err != nil {
				return err
			}
			return writeOutput(cmd, output, []byte(out))
		},
	}
	cmd.Flags().String("to", "yaml", "Target format: json, xml or yaml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the document to this file")
	return cmd
}

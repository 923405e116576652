package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"k8s.io/apimachinery/pkg/util/validation/field"

	"github.com/hazelcast/cache-config-engine/internal/compiler"
	"github.com/hazelcast/cache-config-engine/internal/format"
	"github.com/hazelcast/cache-config-engine/internal/wizard"
)

func newCompileCommand(o *options) *cobra.Command {
	var output string
	var force bool

	cmd := &cobra.Command{
		Use:   "compile STATE",
		Short: "Render a wizard state file as a configuration document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := formatFlag(cmd, "format")
			if err != nil {
				return err
			}
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			cfg, err := loadState(data)
			if err != nil {
				return err
			}

			s := wizard.Resume(o.log, cfg)
			if !cfg.Start.UseBuilder() {
				return fmt.Errorf("%s holds a raw document, submit it as is", args[0])
			}
			if !s.AllFeaturesValid() && !force {
				return problemsError("selected features are incomplete", s.Explain())
			}

			out, err := compiler.Render(s.Configuration(), f)
			if err != nil {
				return err
			}
			return writeOutput(cmd, output, out)
		},
	}
	cmd.Flags().StringP("format", "f", "json", "Document format: json, xml or yaml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the document to this file")
	cmd.Flags().BoolVar(&force, "force", false, "Render even when selected features are incomplete")
	return cmd
}

func newDecompileCommand(o *options) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "decompile DOCUMENT",
		Short: "Turn a configuration document into a wizard state file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			doc, _, err := format.Parse(string(data))
			if err != nil {
				return err
			}
			editable, err := compiler.Decompile(doc)
			if err != nil {
				return err
			}
			o.log.V(1).Info("Decompiled document", "cache", editable.Name, "features", editable.Feature.Selected)

			out, err := marshalState(editable.Configuration())
			if err != nil {
				return err
			}
			return writeOutput(cmd, output, out)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the state to this file")
	return cmd
}

func problemsError(msg string, errs field.ErrorList) error {
	if len(errs) == 0 {
		return fmt.Errorf("%s", msg)
	}
	return fmt.Errorf("%s: %w", msg, errs.ToAggregate())
}

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hazelcast/cache-config-engine/api/v1alpha1"
	"github.com/hazelcast/cache-config-engine/internal/mediatype"
	"github.com/hazelcast/cache-config-engine/internal/schema"
	"github.com/hazelcast/cache-config-engine/internal/units"
)

func newOptionsCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "options ENCODING",
		Short: "List the content types offered for keys and values of an encoding",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := parseEncoding(args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, ct := range mediatype.ContentTypeOptionsFor(enc) {
				if _, err := fmt.Fprintf(w, "%s\t%s\n", ct, mediatype.ToMediaTypeHeader(ct)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func parseEncoding(s string) (v1alpha1.EncodingType, error) {
	for _, enc := range v1alpha1.EncodingTypes {
		if enc != v1alpha1.EncodingEmpty && strings.EqualFold(string(enc), s) {
			return enc, nil
		}
	}
	return "", fmt.Errorf("unknown encoding %q", s)
}

func newSchemaCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "schema DESCRIPTOR_SET [ENTITY]",
		Short: "List the messages of a Protobuf descriptor set, or the fields of one message",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			reg, err := schema.Load(data)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(args) == 1 {
				for _, e := range reg.Entities() {
					if _, err := fmt.Fprintln(w, e); err != nil {
						return err
					}
				}
				return nil
			}

			fields, err := reg.Fields(args[1])
			if err != nil {
				return err
			}
			for _, f := range fields {
				if _, err := fmt.Fprintf(w, "%s\t%s\n", f.Name, f.ContentType); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newSizeCommand(o *options) *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "size QUANTITY",
		Short: "Show the number of bytes of a size, optionally converted to another unit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, unit, err := units.ParseSize(args[0])
			if err != nil {
				return err
			}
			b, err := units.Bytes(value, unit)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if _, err := fmt.Fprintf(w, "bytes\t%d\n", b); err != nil {
				return err
			}
			if to == "" {
				return nil
			}

			toUnit, err := units.ParseSizeUnit(to)
			if err != nil {
				return err
			}
			converted, err := units.ConvertSize(value, unit, toUnit)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(w, "%s\t%s\n", toUnit, units.RenderSize(&converted, toUnit))
			return err
		},
	}
	cmd.Flags().StringVar(&to, "to", "", "Unit to convert to, e.g. MiB")
	return cmd
}

package cli

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/hazelcast/cache-config-engine/api/v1alpha1"
	"github.com/hazelcast/cache-config-engine/internal/compiler"
	"github.com/hazelcast/cache-config-engine/internal/config"
	"github.com/hazelcast/cache-config-engine/internal/format"
	"github.com/hazelcast/cache-config-engine/internal/units"
	"github.com/hazelcast/cache-config-engine/internal/util"
	"github.com/hazelcast/cache-config-engine/internal/wizard"
)

func newSubmitCommand(o *options) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "submit STATE",
		Short: "Create the cache described by a wizard state file",
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
			svc, err := o.cacheService()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			names, err := svc.CacheNames(ctx)
			if err != nil {
				return fmt.Errorf("could not list caches: %w", err)
			}
			s := wizard.Resume(o.log, cfg)
			s.SetExistingNames(names)
			if !s.CanSubmit() {
				return problemsError("configuration cannot be submitted", s.Problems())
			}

			doc, docFormat, err := submission(s.Configuration(), f)
			if err != nil {
				return err
			}
			if dryRun {
				return writeOutput(cmd, "", doc)
			}
			if _, err := svc.SubmitConfiguration(ctx, cfg.Start.Name, doc, docFormat); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "cache %s created\n", cfg.Start.Name)
			return err
		},
	}
	cmd.Flags().StringP("format", "f", "json", "Document format: json, xml or yaml")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the document instead of submitting it")
	return cmd
}

// submission returns the document to send for a configuration. Raw documents are sent as typed.
func submission(cfg *v1alpha1.CacheConfiguration, f config.Format) ([]byte, config.Format, error) {
	if !cfg.Start.UseBuilder() {
		draft, err := format.ValidateDraft(cfg.Start.Document)
		if err != nil {
			return nil, "", err
		}
		return []byte(draft.Text), draft.Format, nil
	}
	doc, err := compiler.Render(cfg, f)
	if err != nil {
		return nil, "", err
	}
	return doc, f, nil
}

func newSetCommand(o *options) *cobra.Command {
	var unit string

	cmd := &cobra.Command{
		Use:   "set CACHE ATTRIBUTE VALUE",
		Short: "Change a mutable attribute of an existing cache",
		Example: `  cacheconsole set books memory.max-size 1.5 --unit GB
  cacheconsole set books expiration.lifespan 30 --unit MINUTES`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := renderAttribute(args[2], unit)
			if err != nil {
				return err
			}
			svc, err := o.cacheService()
			if err != nil {
				return err
			}
			if _, err := svc.SetAttribute(cmd.Context(), args[0], args[1], value); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s of cache %s set to %s\n", args[1], args[0], value)
			return err
		},
	}
	cmd.Flags().StringVar(&unit, "unit", "", "Size unit (KB..TiB) or time unit (MILLISECONDS..DAYS) of the value")
	return cmd
}

// renderAttribute writes a value the way the document stores it. Without a unit it is sent as is.
func renderAttribute(value, unit string) (string, error) {
	if unit == "" {
		return value, nil
	}
	if sizeUnit, err := units.ParseSizeUnit(unit); err == nil {
		v, parsed, err := units.ParseSize(value + string(sizeUnit))
		if err != nil {
			return "", err
		}
		return units.RenderSize(&v, parsed), nil
	}
	for _, tu := range v1alpha1.TimeUnits {
		if string(tu) != unit {
			continue
		}
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return "", &units.FormatError{Input: value, Reason: "magnitude is not a number"}
		}
		rendered, ok := units.RenderTime(v, tu)
		if !ok {
			return "", &units.FormatError{Input: value, Reason: "a duration of zero cannot be set"}
		}
		return rendered, nil
	}
	return "", fmt.Errorf("unknown unit %q", unit)
}

func newDescribeCommand(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe CACHE...",
		Short: "Show the configuration of caches as wizard state",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := o.cacheService()
			if err != nil {
				return err
			}
			states, err := describe(cmd.Context(), svc, args)

			var out bytes.Buffer
			for i, state := range states {
				if state == nil {
					continue
				}
				if out.Len() > 0 {
					out.WriteString("---\n")
				}
				data, merr := marshalState(state)
				if merr != nil {
					return merr
				}
				out.Write(data)
				o.log.V(1).Info("Described cache", "cache", args[i])
			}
			if werr := writeOutput(cmd, "", out.Bytes()); werr != nil {
				return werr
			}
			return err
		},
	}
	return cmd
}

type configurationFetcher interface {
	FetchConfiguration(ctx context.Context, name string, f config.Format) ([]byte, error)
}

// describe retrieves the caches concurrently. States are returned in the order of names, with
// nil for the caches that failed.
func describe(ctx context.Context, svc configurationFetcher, names []string) ([]*v1alpha1.CacheConfiguration, error) {
	states := make([]*v1alpha1.CacheConfiguration, len(names))
	var (
		mu   sync.Mutex
		errs util.Errors
	)

	g, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			data, err := svc.FetchConfiguration(ctx, name, config.FormatJSON)
			if err == nil {
				var e *v1alpha1.EditableConfig
				if e, err = compiler.DecompileBytes(data, config.FormatJSON); err == nil {
					if e.Name == "" {
						e.Name = name
					}
					states[i] = e.Configuration()
					return nil
				}
			}
			mu.Lock()
			errs = append(errs, &util.CacheError{Cache: name, Err: err})
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return states, errs.Sorted().ErrOrNil()
}

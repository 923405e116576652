package cli

import (
	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	n "github.com/hazelcast/cache-config-engine/internal/naming"
	"github.com/hazelcast/cache-config-engine/internal/rest"
	"github.com/hazelcast/cache-config-engine/internal/util"
)

type options struct {
	log logr.Logger

	url             string
	username        string
	password        string
	metricsTextfile string

	registry *prometheus.Registry
}

// NewRootCommand builds the command tree. Cluster settings default to the environment.
func NewRootCommand(log logr.Logger) *cobra.Command {
	o := &options{log: log, registry: prometheus.NewRegistry()}

	cmd := &cobra.Command{
		Use:   n.ConsoleName,
		Short: "Build, inspect and submit cache configurations",
		Long: `Build cache configurations from wizard state files, convert configuration
documents between JSON, XML and YAML, and submit them to the cluster REST API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if o.metricsTextfile == "" {
				return nil
			}
			return prometheus.WriteToTextfile(o.metricsTextfile, o.registry)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&o.url, "url", util.GetConsoleURL(), "Cluster REST endpoint ($"+n.ConsoleURLEnv+")")
	flags.StringVar(&o.username, "username", util.GetConsoleUsername(), "Cluster user ($"+n.ConsoleUsernameEnv+")")
	flags.StringVar(&o.password, "password", util.GetConsolePassword(), "Cluster password ($"+n.ConsolePasswordEnv+")")
	flags.StringVar(&o.metricsTextfile, "metrics-textfile", "", "Write request metrics to this file on exit")

	cmd.AddCommand(
		newCompileCommand(o),
		newDecompileCommand(o),
		newDraftCommand(o),
		newFmtCommand(o),
		newConvertCommand(o),
		newOptionsCommand(o),
		newSchemaCommand(o),
		newSizeCommand(o),
		newSubmitCommand(o),
		newSetCommand(o),
		newDescribeCommand(o),
	)
	return cmd
}

func (o *options) cacheService() (*rest.CacheService, error) {
	metrics, err := rest.NewMetrics(o.registry)
	if err != nil {
		return nil, err
	}
	return rest.NewCacheService(o.url,
		rest.WithBasicAuth(o.username, o.password),
		rest.WithMetrics(metrics),
		rest.WithLogger(o.log),
	)
}

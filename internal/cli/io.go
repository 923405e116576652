package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"
	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"

	"github.com/hazelcast/cache-config-engine/api/v1alpha1"
	"github.com/hazelcast/cache-config-engine/internal/config"
	"github.com/hazelcast/cache-config-engine/internal/format"
)

// readInput reads a file, or standard input when path is "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", path, err)
	}
	return data, nil
}

// writeOutput replaces the file at path, or prints to standard output when path is empty.
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("could not write %s: %w", path, err)
	}
	return nil
}

// loadState reads a wizard state file written in JSON or YAML.
func loadState(data []byte) (*v1alpha1.CacheConfiguration, error) {
	cfg := &v1alpha1.CacheConfiguration{}
	switch f := format.DetectFormat(string(data)); f {
	case config.FormatJSON:
		standard, err := hujson.Standardize(data)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(standard, cfg); err != nil {
			return nil, fmt.Errorf("invalid state file: %w", err)
		}
	case config.FormatYAML:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("invalid state file: %w", err)
		}
	default:
		return nil, fmt.Errorf("state files must be JSON or YAML")
	}
	return cfg, nil
}

func marshalState(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatFlag(cmd *cobra.Command, name string) (config.Format, error) {
	s, err := cmd.Flags().GetString(name)
	if err != nil {
		return "", err
	}
	return config.ParseFormat(s)
}

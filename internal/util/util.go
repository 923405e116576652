package util

import (
	"os"
	"strings"

	n "github.com/hazelcast/cache-config-engine/internal/naming"
)

func IsDeveloperModeEnabled() bool {
	value := os.Getenv(n.DeveloperModeEnabledEnv)
	return strings.ToLower(value) == "true"
}

// GetConsoleURL returns the cluster REST endpoint, falling back to the local default.
func GetConsoleURL() string {
	if u, found := os.LookupEnv(n.ConsoleURLEnv); found && strings.TrimSpace(u) != "" {
		return strings.TrimSpace(u)
	}
	return n.DefaultConsoleURL
}

func GetConsoleUsername() string {
	return os.Getenv(n.ConsoleUsernameEnv)
}

func GetConsolePassword() string {
	return os.Getenv(n.ConsolePasswordEnv)
}

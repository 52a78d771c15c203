package config

import (
	"fmt"
	"sort"
	"strings"
)

// ExampleEnv renders a .env.example document listing every configurable key
// in its APP_ environment variable form, together with its default value and
// the one-line description from envDocs. Keys whose default is empty are
// rendered with a TODO placeholder so operators know a value must be supplied.
func ExampleEnv() string {
	def := defaults()

	keys := make([]string, 0, len(def))
	for key := range def {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("# Environment variable overrides. Every key here maps onto a config\n")
	b.WriteString("# file entry; env vars take precedence over base.yaml and profile YAML.\n")

	for _, key := range keys {
		envKey := envPrefix + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))

		value := fmt.Sprintf("%v", def[key])
		if value == "" {
			value = "TODO"
		}

		b.WriteString("\n")
		if doc, ok := envDocs[key]; ok {
			fmt.Fprintf(&b, "# %s\n", doc)
		}
		fmt.Fprintf(&b, "%s=%s\n", envKey, value)
	}

	return b.String()
}

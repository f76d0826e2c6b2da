// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from the process environment through the `env` and
// `envPrefix` tags of [StructuredConfig].
//
// Values are trimmed of surrounding whitespace first: a signature secret
// mounted from a file with a trailing newline must key the same HMAC as the
// bare value.
func parseEnv(cfg *StructuredConfig) error {
	err := env.ParseWithOptions(cfg, env.Options{Environment: trimmedEnviron()})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

func trimmedEnviron() map[string]string {
	environ := os.Environ()
	vars := make(map[string]string, len(environ))
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		vars[key] = strings.TrimSpace(value)
	}
	return vars
}

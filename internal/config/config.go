// Package config resolves svccheck settings from environment variables,
// optionally backed by a YAML overlay file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileVar names the variable pointing at an optional YAML overlay.
const FileVar = "SVCCHECK_CONFIG"

// LoadFile reads the YAML overlay at path. The file holds a single `env`
// mapping of variable names to values:
//
//	env:
//	  POSTGRES_HOST: "localhost"
//	  ENABLE_KAFKA: "true"
func LoadFile(path string) (MapEnv, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var raw struct {
		Env map[string]string `yaml:"env"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	env := make(MapEnv, len(raw.Env))
	for name, value := range raw.Env {
		if name == "" {
			return nil, fmt.Errorf("env: variable name is required")
		}
		env[name] = value
	}
	return env, nil
}

// Resolve returns the environment svccheck runs against: base, with the
// overlay named by FileVar (if any) layered beneath it.
func Resolve(base Env) (Env, error) {
	path, ok := base.Lookup(FileVar)
	if !ok || path == "" {
		return base, nil
	}
	file, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return Layered(base, file), nil
}

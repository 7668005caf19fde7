package config

import (
	"os"
	"strconv"
	"strings"
)

// Env is a read-only view of named configuration variables.
type Env interface {
	Lookup(name string) (string, bool)
}

// OSEnv reads the process environment.
type OSEnv struct{}

func (OSEnv) Lookup(name string) (string, bool) {
	return os.LookupEnv(name)
}

// MapEnv is a fixed set of variables, mostly useful in tests.
type MapEnv map[string]string

func (m MapEnv) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

type layered []Env

func (l layered) Lookup(name string) (string, bool) {
	for _, e := range l {
		if e == nil {
			continue
		}
		if v, ok := e.Lookup(name); ok {
			return v, true
		}
	}
	return "", false
}

// Layered returns an Env that resolves each name from the first layer
// defining it.
func Layered(layers ...Env) Env {
	return layered(layers)
}

// String returns the named value verbatim when it is set, otherwise def.
func String(env Env, name, def string) string {
	if v, ok := env.Lookup(name); ok {
		return v
	}
	return def
}

// Port returns the named value parsed as a 16-bit port. A single leading
// '+' is accepted. A missing or unparseable value yields def.
func Port(env Env, name string, def uint16) uint16 {
	v, ok := env.Lookup(name)
	if !ok {
		return def
	}
	p, err := strconv.ParseUint(strings.TrimPrefix(v, "+"), 10, 16)
	if err != nil {
		return def
	}
	return uint16(p)
}

// Bool reports whether the named value is one of 1, true, yes or on
// (case-insensitive). Only a missing variable yields def; any other
// present value is false.
func Bool(env Env, name string, def bool) bool {
	v, ok := env.Lookup(name)
	if !ok {
		return def
	}
	switch strings.ToLower(v) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

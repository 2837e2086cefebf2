// Package envstore abstracts the environment variable store the loader
// writes into.
package envstore

import (
	"os"
)

type Store interface {
	Set(key, value string) error
	Lookup(key string) (string, bool)
}

// OS is the process environment.
type OS struct{}

func (OS) Set(key, value string) error {
	return os.Setenv(key, value)
}

func (OS) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Map is an in-memory store. It is not safe for concurrent use.
type Map map[string]string

func (m Map) Set(key, value string) error {
	m[key] = value
	return nil
}

func (m Map) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

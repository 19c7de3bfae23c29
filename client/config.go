package client

import (
	"errors"
	"fmt"
	"os"
	"time"
)

const (
	// DataScope allows reading and writing table data.
	DataScope = "https://www.googleapis.com/auth/bigtable.data"
	// ReadOnlyScope allows reading table data only.
	ReadOnlyScope = "https://www.googleapis.com/auth/bigtable.data.readonly"
	// AdminScope allows managing tables and column families.
	AdminScope = "https://www.googleapis.com/auth/bigtable.admin"

	// DefaultEndpoint is the production data API.
	DefaultEndpoint = "bigtable.googleapis.com:443"
	// DefaultTimeout bounds every commit unless overridden.
	DefaultTimeout = 10 * time.Second

	emulatorHostEnv = "BIGTABLE_EMULATOR_HOST"
)

// Config describes the instance a Client connects to and how.
type Config struct {
	// Project is resolved with ResolveProject when empty.
	Project  string
	Instance string
	// EmulatorHost, or $BIGTABLE_EMULATOR_HOST, switches to an insecure
	// connection to a local emulator.
	EmulatorHost string
	Endpoint     string
	// Timeout is the default deadline of a commit. Zero means DefaultTimeout;
	// a negative value disables the deadline.
	Timeout time.Duration

	ReadOnly bool
	Admin    bool
}

func (c *Config) validate() error {
	var errGrp []error
	if c.Instance == "" {
		errGrp = append(errGrp, fmt.Errorf("instance required"))
	}
	if c.ReadOnly && c.Admin {
		errGrp = append(errGrp, fmt.Errorf("a read-only client cannot also be an admin client"))
	}

	return errors.Join(errGrp...)
}

// Scopes returns the OAuth2 scopes the client asks for.
func (c *Config) Scopes() []string {
	scopes := []string{DataScope}
	if c.ReadOnly {
		scopes = []string{ReadOnlyScope}
	}
	if c.Admin {
		scopes = append(scopes, AdminScope)
	}
	return scopes
}

func (c *Config) emulatorHost() string {
	if c.EmulatorHost != "" {
		return c.EmulatorHost
	}
	return os.Getenv(emulatorHostEnv)
}

func (c *Config) endpoint() string {
	if c.Endpoint != "" {
		return c.Endpoint
	}
	return DefaultEndpoint
}

func (c *Config) timeout() time.Duration {
	switch {
	case c.Timeout == 0:
		return DefaultTimeout
	case c.Timeout < 0:
		return 0
	default:
		return c.Timeout
	}
}

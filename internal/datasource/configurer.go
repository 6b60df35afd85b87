// Package datasource resolves the data connections a converted report binds
// to.
package datasource

import (
	"errors"
	"strings"
)

// Connection describes how a named data source connects to its data.
type Connection struct {
	Name             string `json:"name" yaml:"name"`
	Provider         string `json:"provider,omitempty" yaml:"provider,omitempty"`
	ConnectionString string `json:"connection_string,omitempty" yaml:"connection_string,omitempty"`
	DataMember       string `json:"data_member,omitempty" yaml:"data_member,omitempty"`
}

// Configurer is called once per data source before a conversion starts. It
// may rewrite the connection settings in place; an error aborts the
// conversion.
type Configurer interface {
	ConfigureConnection(conn *Connection) error
}

// ConfigurerFunc adapts a function to Configurer.
type ConfigurerFunc func(conn *Connection) error

// ConfigureConnection implements Configurer.
func (f ConfigurerFunc) ConfigureConnection(conn *Connection) error {
	return f(conn)
}

// RegistryConfigurer fills connections from registered entries. Sources
// without an entry keep their settings.
func RegistryConfigurer(r *Registry) Configurer {
	return ConfigurerFunc(func(conn *Connection) error {
		c, err := r.Get(conn.Name)
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if c.Provider != "" {
			conn.Provider = c.Provider
		}
		if c.ConnectionString != "" {
			conn.ConnectionString = c.ConnectionString
		}
		if c.DataMember != "" {
			conn.DataMember = c.DataMember
		}
		return nil
	})
}

// MaskSecrets hides password-like values of a connection string.
func MaskSecrets(connStr string) string {
	parts := strings.Split(connStr, ";")
	for i, part := range parts {
		key, _, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "password", "pwd", "secret", "token", "apikey", "api_key":
			parts[i] = key + "=****"
		}
	}
	return strings.Join(parts, ";")
}

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// EnvAPIKey overrides the stored API key when set
const EnvAPIKey = "MICROLABS_API_KEY"

// credentialsFile is the on-disk shape of the credential store
type credentialsFile struct {
	APIKey string `json:"api_key"`
}

// Credentials holds the API key for the generation endpoint. It is an
// explicit object passed to the client at construction; Reload replaces
// ambient lazy caching so tests can inject keys deterministically.
type Credentials struct {
	path string
	mu   sync.RWMutex
	key  string
}

// GetCredentialsPath returns the path to the credentials file
func GetCredentialsPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "credentials.json"), nil
}

// LoadCredentials reads the credential store from its default location.
// The environment variable takes precedence over the file. A missing file
// is not an error; the key is simply empty.
func LoadCredentials() (*Credentials, error) {
	path, err := GetCredentialsPath()
	if err != nil {
		return nil, err
	}

	c := &Credentials{path: path}
	if err := c.Reload(); err != nil {
		return nil, err
	}
	return c, nil
}

// StaticCredentials returns a store with a fixed key, for tests
func StaticCredentials(key string) *Credentials {
	return &Credentials{key: key}
}

// Reload re-reads the key from the environment and disk
func (c *Credentials) Reload() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if key := os.Getenv(EnvAPIKey); key != "" {
		c.key = key
		return nil
	}

	if c.path == "" {
		return nil
	}

	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			c.key = ""
			return nil
		}
		return fmt.Errorf("failed to read credentials file: %w", err)
	}

	var f credentialsFile
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("failed to parse credentials file: %w", err)
	}

	c.key = f.APIKey
	return nil
}

// Key returns the current API key, which may be empty
func (c *Credentials) Key() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.key
}

// Save writes the key to disk and updates the in-memory copy
func (c *Credentials) Save(key string) error {
	if _, err := EnsureConfigDir(); err != nil {
		return err
	}

	path := c.path
	if path == "" {
		var err error
		path, err = GetCredentialsPath()
		if err != nil {
			return err
		}
	}

	data, err := json.MarshalIndent(credentialsFile{APIKey: key}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal credentials: %w", err)
	}

	// 0o600: the file holds the API key
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write credentials file: %w", err)
	}

	c.mu.Lock()
	c.key = key
	c.path = path
	c.mu.Unlock()

	return nil
}

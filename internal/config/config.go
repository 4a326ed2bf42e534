package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"encoding/json"
)

// Defaults applied when a field is absent from the config file.
const (
	DefaultTheme      = "dark-purple"
	DefaultDateFormat = "Monday 02 January 2006"
	DefaultTimeFormat = "15:04"
)

// Config holds the application configuration
type Config struct {
	Theme      string `json:"theme,omitempty"`       // UI theme name (e.g., "dark-purple", "nord")
	DateFormat string `json:"date_format,omitempty"` // Go layout for date separators
	TimeFormat string `json:"time_format,omitempty"` // Go layout for message time labels
	DataDir    string `json:"data_dir,omitempty"`    // Directory holding room archives

	// Not omitempty: false must round-trip, the fresh-config default is true.
	NotificationsEnabled bool `json:"notifications_enabled"`

	LastRoom string           `json:"last_room,omitempty"` // Room token to reopen on start
	LastRead map[string]int64 `json:"last_read,omitempty"` // Per-room last read message id

	LastSeenVersion string `json:"last_seen_version,omitempty"` // Last version whose changelog was shown

	mu       sync.RWMutex
	filePath string
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".palaver"), nil
}

// configPath returns the path to the config file
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or creates a new one if it doesn't exist
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Theme:                DefaultTheme,
		DateFormat:           DefaultDateFormat,
		TimeFormat:           DefaultTimeFormat,
		NotificationsEnabled: true,
		LastRead:             make(map[string]int64),
		filePath:             path,
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	// Ensure maps and defaulted fields are initialized after unmarshaling.
	// This must happen before Validate() since Validate() only reads.
	cfg.ensureInitialized()

	// Validate loaded config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ensureInitialized ensures maps are non-nil and empty layout strings fall
// back to their defaults.
//
// Thread-safety: This method is NOT thread-safe and must only be called
// during single-threaded initialization (i.e., from Load() before the Config
// is shared across goroutines).
func (c *Config) ensureInitialized() {
	if c.LastRead == nil {
		c.LastRead = make(map[string]int64)
	}
	if c.Theme == "" {
		c.Theme = DefaultTheme
	}
	if c.DateFormat == "" {
		c.DateFormat = DefaultDateFormat
	}
	if c.TimeFormat == "" {
		c.TimeFormat = DefaultTimeFormat
	}
}

// Validate checks that the config is internally consistent.
// This is a read-only operation - call ensureInitialized() first if needed.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for token, id := range c.LastRead {
		if token == "" {
			return fmt.Errorf("last_read entry with empty room token")
		}
		if id < 0 {
			return fmt.Errorf("last_read for room %s is negative: %d", token, id)
		}
	}

	if c.DateFormat == "" {
		return fmt.Errorf("date_format must not be empty")
	}
	if c.TimeFormat == "" {
		return fmt.Errorf("time_format must not be empty")
	}

	return nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	dir, err := configDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	// Configs built as literals (tests, the demo executor) never went
	// through Load, so derive the path here rather than writing to "".
	path := c.filePath
	if path == "" {
		path, err = configPath()
		if err != nil {
			return err
		}
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// GetTheme returns the current theme name
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme sets the current theme name
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}

// GetDateFormat returns the Go layout used for date separator labels
func (c *Config) GetDateFormat() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.DateFormat == "" {
		return DefaultDateFormat
	}
	return c.DateFormat
}

// SetDateFormat sets the Go layout used for date separator labels.
// An empty layout restores the default.
func (c *Config) SetDateFormat(layout string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if layout == "" {
		layout = DefaultDateFormat
	}
	c.DateFormat = layout
}

// GetTimeFormat returns the Go layout used for message time labels
func (c *Config) GetTimeFormat() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.TimeFormat == "" {
		return DefaultTimeFormat
	}
	return c.TimeFormat
}

// SetTimeFormat sets the Go layout used for message time labels.
// An empty layout restores the default.
func (c *Config) SetTimeFormat(layout string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if layout == "" {
		layout = DefaultTimeFormat
	}
	c.TimeFormat = layout
}

// GetNotificationsEnabled returns whether desktop notifications are enabled
func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.NotificationsEnabled
}

// SetNotificationsEnabled sets whether desktop notifications are enabled
func (c *Config) SetNotificationsEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.NotificationsEnabled = enabled
}

// GetDataDir returns the room archive directory, or empty string if unset
func (c *Config) GetDataDir() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.DataDir
}

// SetDataDir sets the room archive directory
func (c *Config) SetDataDir(dir string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.DataDir = dir
}

// GetLastRoom returns the token of the room that was open when the app
// last exited, or empty string if none.
func (c *Config) GetLastRoom() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.LastRoom
}

// SetLastRoom records the room token to reopen on next start.
// Pass empty string to clear.
func (c *Config) SetLastRoom(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.LastRoom = token
}

// GetLastRead returns the persisted last read message id for a room,
// or 0 if the room has no watermark.
func (c *Config) GetLastRead(token string) int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.LastRead == nil {
		return 0
	}
	return c.LastRead[token]
}

// SetLastRead persists the last read message id for a room.
// An id of 0 removes the watermark.
func (c *Config) SetLastRead(token string, id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.LastRead == nil {
		c.LastRead = make(map[string]int64)
	}
	if id == 0 {
		delete(c.LastRead, token)
	} else {
		c.LastRead[token] = id
	}
}

// GetLastSeenVersion returns the last version the user has seen the
// changelog for, or empty string on a fresh install.
func (c *Config) GetLastSeenVersion() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.LastSeenVersion
}

// SetLastSeenVersion records the version whose changelog has been shown.
func (c *Config) SetLastSeenVersion(version string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.LastSeenVersion = version
}

// AllLastRead returns a copy of the per-room watermark map.
func (c *Config) AllLastRead() map[string]int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string]int64, len(c.LastRead))
	for token, id := range c.LastRead {
		out[token] = id
	}
	return out
}

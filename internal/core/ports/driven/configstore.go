package driven

// ConfigStore provides persistent application configuration.
// Implementations must be safe for concurrent use.
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	Get(key string) (any, bool)

	// GetString retrieves a string value, "" when absent.
	GetString(key string) string

	// GetInt retrieves an integer value, 0 when absent.
	GetInt(key string) int

	// GetBool retrieves a boolean value, false when absent.
	GetBool(key string) bool

	// Set stores a configuration value and persists immediately.
	Set(key string, value any) error

	// Delete removes a configuration key and persists immediately.
	Delete(key string) error

	// Keys returns all configured keys.
	Keys() []string
}

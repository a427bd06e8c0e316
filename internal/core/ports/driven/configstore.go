package driven

// Configuration keys read by the application.
const (
	// ConfigParallelDispatch enables concurrent multi-specialist dispatch.
	ConfigParallelDispatch = "routing.parallel_dispatch"

	// ConfigSpecialistKeywordsPrefix prefixes per-specialist keyword overrides
	// (e.g., "routing.keywords.financial_aid").
	ConfigSpecialistKeywordsPrefix = "routing.keywords."

	// ConfigTopicKeywordsPrefix prefixes per-category scope keyword overrides
	// (e.g., "scope.keywords.career").
	ConfigTopicKeywordsPrefix = "scope.keywords."

	// ConfigDisallowedPrefix prefixes disallowed-topic rules (e.g., "scope.disallowed.travel").
	ConfigDisallowedPrefix = "scope.disallowed."

	// ConfigSessionStore selects the transcript store: "memory" or "sqlite".
	ConfigSessionStore = "session.store"

	// ConfigMCPRate is the sustained MCP tool call rate per second.
	ConfigMCPRate = "mcp.rate_per_second"

	// ConfigMCPBurst is the MCP tool call burst size.
	ConfigMCPBurst = "mcp.burst"
)

// ConfigStore provides access to application configuration.
// Implementations handle persistence (e.g., TOML files) and type conversion.
// Nested tables are addressed with dot-notation keys.
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value.
	// Returns empty string if key doesn't exist or isn't a string.
	GetString(key string) string

	// GetInt retrieves an integer configuration value.
	// Returns 0 if key doesn't exist or isn't an integer.
	GetInt(key string) int

	// GetFloat retrieves a numeric configuration value.
	// Integers are widened. Returns 0 if key doesn't exist or isn't numeric.
	GetFloat(key string) float64

	// GetBool retrieves a boolean configuration value.
	// Returns false if key doesn't exist or isn't a boolean.
	GetBool(key string) bool

	// GetStringSlice retrieves a string slice configuration value.
	// Returns nil if key doesn't exist or isn't a slice.
	GetStringSlice(key string) []string

	// Keys returns all keys starting with prefix, sorted.
	Keys(prefix string) []string

	// Set stores a configuration value.
	// The value is persisted immediately.
	Set(key string, value any) error

	// Save persists the current configuration to storage.
	Save() error

	// Load reads configuration from storage.
	Load() error

	// Path returns the configuration file path.
	// Empty for stores without a backing file.
	Path() string
}

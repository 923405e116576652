package naming

// Media types
const (
	MediaTypeJSON       = "application/json"
	MediaTypeXML        = "application/xml"
	MediaTypeYAML       = "application/yaml"
	MediaTypeText       = "text/plain"
	MediaTypeJavaObject = "application/x-java-object"

	// JavaObjectTypePrefix precedes the boxed type name in a parameterized Java object media type,
	// e.g. application/x-java-object;type=java.lang.Integer
	JavaObjectTypePrefix = MediaTypeJavaObject + ";type=java.lang."

	// MediaTypeUnknown is reported by the server for keys or values without a configured media type.
	MediaTypeUnknown = "application/unknown"
)

// Configuration document sections
const (
	SectionEncoding    = "encoding"
	SectionExpiration  = "expiration"
	SectionMemory      = "memory"
	SectionIndexing    = "indexing"
	SectionSecurity    = "security"
	SectionTransaction = "transaction"
	SectionLocking     = "locking"
	SectionBackups     = "backups"
	SectionPersistence = "persistence"
	SectionTracing     = "tracing"

	// OmittedValue is rendered for a field that must not be written to the document.
	OmittedValue = "null"
)

// REST API
const (
	CachesPath = "rest/v2/caches"

	ActionConfig              = "config"
	ActionSetMutableAttribute = "set-mutable-attribute"

	RequestIDHeader = "X-Request-ID"
)

// Environment variables used for the console configuration
const (
	ConsoleURLEnv           = "CACHE_CONSOLE_URL"
	ConsoleUsernameEnv      = "CACHE_CONSOLE_USERNAME"
	ConsolePasswordEnv      = "CACHE_CONSOLE_PASSWORD"
	DeveloperModeEnabledEnv = "DEVELOPER_MODE_ENABLED"
)

// Defaults
const (
	DefaultConsoleURL     = "http://localhost:11222"
	DefaultNumberOfOwners = 2
	ConsoleName           = "cacheconsole"
)

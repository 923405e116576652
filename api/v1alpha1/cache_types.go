package v1alpha1

// CacheType is the topology of a cache.
type CacheType string

const (
	CacheTypeDistributed CacheType = "Distributed"
	CacheTypeReplicated  CacheType = "Replicated"
	CacheTypeLocal       CacheType = "Local"
	CacheTypeInvalidated CacheType = "Invalidated"
	CacheTypeScattered   CacheType = "Scattered"
)

// CacheTypes lists every topology in the order they are offered by the wizard.
var CacheTypes = []CacheType{
	CacheTypeDistributed,
	CacheTypeReplicated,
	CacheTypeLocal,
	CacheTypeInvalidated,
	CacheTypeScattered,
}

// HasOwners reports whether the topology stores a configurable number of copies per entry.
func (t CacheType) HasOwners() bool {
	return t == CacheTypeDistributed || t == CacheTypeScattered
}

// IsClustered reports whether the topology spans more than one node.
func (t CacheType) IsClustered() bool {
	return t != CacheTypeLocal
}

// CacheMode is the synchrony of the replication between owners.
type CacheMode string

const (
	CacheModeSync  CacheMode = "SYNC"
	CacheModeAsync CacheMode = "ASYNC"
)

// CreateMode selects how the configuration of a new cache is provided.
type CreateMode string

const (
	// CreateModeBuilder builds the configuration step by step.
	CreateModeBuilder CreateMode = "Builder"

	// CreateModeEditor takes a configuration document pasted by the user.
	CreateModeEditor CreateMode = "Editor"
)

// CacheConfiguration is the state of one cache creation wizard or one edit session.
type CacheConfiguration struct {
	// Name and creation mode of the cache.
	Start StartConfig `json:"start" yaml:"start"`

	// Topology, encoding, statistics and expiration.
	Basic BasicConfig `json:"basic" yaml:"basic"`

	// Optional features and the subset currently selected.
	Feature FeatureConfig `json:"feature" yaml:"feature"`

	// Tuning that applies regardless of the selected features.
	// +optional
	Advanced AdvancedConfig `json:"advanced,omitempty" yaml:"advanced,omitempty"`
}

type StartConfig struct {
	// Name of the cache to be created.
	Name string `json:"name" yaml:"name"`

	// Builder or raw document. Defaults to Builder.
	// +optional
	CreateMode CreateMode `json:"createMode,omitempty" yaml:"createMode,omitempty"`

	// Document pasted by the user, only used with the Editor create mode.
	// +optional
	Document string `json:"document,omitempty" yaml:"document,omitempty"`
}

// UseBuilder reports whether the configuration is assembled by the wizard steps.
func (s StartConfig) UseBuilder() bool {
	return s.CreateMode != CreateModeEditor
}

type BasicConfig struct {
	// Topology of the cache.
	Topology CacheType `json:"topology" yaml:"topology"`

	// Synchrony of the replication. Ignored for local caches.
	// +optional
	Mode CacheMode `json:"mode,omitempty" yaml:"mode,omitempty"`

	// Number of copies of each entry. Only used by distributed and scattered caches.
	// +optional
	NumberOfOwners int32 `json:"numberOfOwners,omitempty" yaml:"numberOfOwners,omitempty"`

	// Media type shared by keys and values.
	// +optional
	Encoding EncodingType `json:"encoding,omitempty" yaml:"encoding,omitempty"`

	// Overrides Encoding for keys.
	// +optional
	KeyEncoding EncodingType `json:"keyEncoding,omitempty" yaml:"keyEncoding,omitempty"`

	// Overrides Encoding for values.
	// +optional
	ValueEncoding EncodingType `json:"valueEncoding,omitempty" yaml:"valueEncoding,omitempty"`

	// When true, the cluster collects statistics for the cache.
	// +optional
	Statistics bool `json:"statistics" yaml:"statistics"`

	// Entry expiration.
	// +optional
	Expiration ExpirationConfig `json:"expiration,omitempty" yaml:"expiration,omitempty"`
}

// KeyMediaType returns the encoding used for keys.
func (b BasicConfig) KeyMediaType() EncodingType {
	if b.KeyEncoding != EncodingEmpty {
		return b.KeyEncoding
	}
	return b.Encoding
}

// ValueMediaType returns the encoding used for values.
func (b BasicConfig) ValueMediaType() EncodingType {
	if b.ValueEncoding != EncodingEmpty {
		return b.ValueEncoding
	}
	return b.Encoding
}

type ExpirationConfig struct {
	// Maximum time an entry lives in the cache. Zero leaves it unset, -1 disables it.
	// +optional
	Lifespan TimeQuantity `json:"lifespan,omitempty" yaml:"lifespan,omitempty"`

	// Maximum time an entry stays idle in the cache. Zero leaves it unset, -1 disables it.
	// +optional
	MaxIdle TimeQuantity `json:"maxIdle,omitempty" yaml:"maxIdle,omitempty"`
}

type TimeQuantity struct {
	Value float64  `json:"value" yaml:"value"`
	Unit  TimeUnit `json:"unit,omitempty" yaml:"unit,omitempty"`
}

type AdvancedConfig struct {
	// Tracing of cache operations.
	// +optional
	Tracing TracingConfig `json:"tracing,omitempty" yaml:"tracing,omitempty"`

	// Policy resolving conflicting writes received from backup sites.
	// +optional
	BackupMergePolicy MergePolicy `json:"backupMergePolicy,omitempty" yaml:"backupMergePolicy,omitempty"`

	// Isolation level of transactions and locks.
	// +optional
	TransactionIsolation IsolationLevel `json:"transactionIsolation,omitempty" yaml:"transactionIsolation,omitempty"`

	// Lock table tuning.
	// +optional
	Locking LockingConfig `json:"locking,omitempty" yaml:"locking,omitempty"`
}

type TracingConfig struct {
	// +optional
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Categories of operations to trace. Empty means the server default.
	// +optional
	Categories []TracingCategory `json:"categories,omitempty" yaml:"categories,omitempty"`
}

type LockingConfig struct {
	// When enabled, a shared pool of locks is used instead of one lock per entry.
	// +optional
	Striping bool `json:"striping" yaml:"striping"`

	// Number of concurrent threads expected to access the lock table.
	// +optional
	ConcurrencyLevel int32 `json:"concurrencyLevel,omitempty" yaml:"concurrencyLevel,omitempty"`

	// Maximum time to wait for a lock.
	// +optional
	AcquireTimeout TimeQuantity `json:"acquireTimeout,omitempty" yaml:"acquireTimeout,omitempty"`
}

// IsZero reports whether no lock table tuning is set.
func (l LockingConfig) IsZero() bool {
	return !l.Striping && l.ConcurrencyLevel == 0 && l.AcquireTimeout.Value == 0
}

// EditableConfig is the typed view of a configuration document retrieved from the cluster.
type EditableConfig struct {
	Name     string         `json:"name,omitempty" yaml:"name,omitempty"`
	Basic    BasicConfig    `json:"basic" yaml:"basic"`
	Feature  FeatureConfig  `json:"feature" yaml:"feature"`
	Advanced AdvancedConfig `json:"advanced,omitempty" yaml:"advanced,omitempty"`
}

// Configuration returns a wizard aggregate holding a copy of the editable fields.
func (e *EditableConfig) Configuration() *CacheConfiguration {
	c := &CacheConfiguration{
		Start: StartConfig{
			Name:       e.Name,
			CreateMode: CreateModeBuilder,
		},
		Basic: e.Basic,
	}
	e.Feature.DeepCopyInto(&c.Feature)
	e.Advanced.DeepCopyInto(&c.Advanced)
	return c
}

var (
	// EncodeCacheType maps a topology to its key in a configuration document.
	EncodeCacheType = map[CacheType]string{
		CacheTypeDistributed: "distributed-cache",
		CacheTypeReplicated:  "replicated-cache",
		CacheTypeLocal:       "local-cache",
		CacheTypeInvalidated: "invalidation-cache",
		CacheTypeScattered:   "scattered-cache",
	}
)

// DecodeCacheType returns the topology stored under the given document key.
func DecodeCacheType(key string) (CacheType, bool) {
	for _, t := range CacheTypes {
		if EncodeCacheType[t] == key {
			return t, true
		}
	}
	return "", false
}

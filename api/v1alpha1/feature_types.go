package v1alpha1

import (
	"k8s.io/apimachinery/pkg/util/sets"
)

// FeatureName identifies an optional cache capability.
type FeatureName string

const (
	FeatureBounded       FeatureName = "Bounded"
	FeatureIndexed       FeatureName = "Indexed"
	FeatureAuthorization FeatureName = "Authorization"
	FeaturePersistence   FeatureName = "Persistence"
	FeatureTransactional FeatureName = "Transactional"
	FeatureBackups       FeatureName = "Backups"
)

// FeatureNames lists every feature in the order they are compiled and displayed.
var FeatureNames = []FeatureName{
	FeatureBounded,
	FeatureIndexed,
	FeatureAuthorization,
	FeaturePersistence,
	FeatureTransactional,
	FeatureBackups,
}

type FeatureConfig struct {
	// Features the user turned on. Unselected features keep their fields but are ignored.
	// +optional
	Selected []FeatureName `json:"selected,omitempty" yaml:"selected,omitempty"`

	// +optional
	BoundedCache BoundedCache `json:"boundedCache,omitempty" yaml:"boundedCache,omitempty"`

	// +optional
	IndexedCache IndexedCache `json:"indexedCache,omitempty" yaml:"indexedCache,omitempty"`

	// +optional
	SecuredCache SecuredCache `json:"securedCache,omitempty" yaml:"securedCache,omitempty"`

	// +optional
	PersistentCache PersistentCache `json:"persistentCache,omitempty" yaml:"persistentCache,omitempty"`

	// +optional
	TransactionalCache TransactionalCache `json:"transactionalCache,omitempty" yaml:"transactionalCache,omitempty"`

	// +optional
	BackupsCache BackupsCache `json:"backupsCache,omitempty" yaml:"backupsCache,omitempty"`
}

// IsSelected reports whether the feature is turned on.
func (f *FeatureConfig) IsSelected(name FeatureName) bool {
	for _, s := range f.Selected {
		if s == name {
			return true
		}
	}
	return false
}

// Select turns a feature on. The selection is kept in FeatureNames order without duplicates.
func (f *FeatureConfig) Select(name FeatureName) {
	selected := f.selectedSet()
	selected.Insert(string(name))
	f.Selected = orderedFeatures(selected)
}

// Deselect turns a feature off without clearing its fields.
func (f *FeatureConfig) Deselect(name FeatureName) {
	selected := f.selectedSet()
	selected.Delete(string(name))
	f.Selected = orderedFeatures(selected)
}

// IsValid returns the validity stored on the feature's own record.
func (f *FeatureConfig) IsValid(name FeatureName) bool {
	switch name {
	case FeatureBounded:
		return f.BoundedCache.Valid
	case FeatureIndexed:
		return f.IndexedCache.Valid
	case FeatureAuthorization:
		return f.SecuredCache.Valid
	case FeaturePersistence:
		return f.PersistentCache.Valid
	case FeatureTransactional:
		return f.TransactionalCache.Valid
	case FeatureBackups:
		return f.BackupsCache.Valid
	}
	return false
}

func (f *FeatureConfig) selectedSet() sets.String {
	selected := sets.NewString()
	for _, s := range f.Selected {
		selected.Insert(string(s))
	}
	return selected
}

func orderedFeatures(selected sets.String) []FeatureName {
	if selected.Len() == 0 {
		return nil
	}
	ordered := make([]FeatureName, 0, selected.Len())
	for _, n := range FeatureNames {
		if selected.Has(string(n)) {
			ordered = append(ordered, n)
		}
	}
	return ordered
}

type BoundedCache struct {
	// Which bound is enforced. When empty, exactly one of MaxSize and MaxCount must be set.
	// +optional
	EvictionType EvictionType `json:"evictionType,omitempty" yaml:"evictionType,omitempty"`

	// Maximum amount of memory, in MaxSizeUnit.
	// +optional
	MaxSize float64 `json:"maxSize,omitempty" yaml:"maxSize,omitempty"`

	// +optional
	MaxSizeUnit MaxSizeUnit `json:"maxSizeUnit,omitempty" yaml:"maxSizeUnit,omitempty"`

	// Maximum number of entries.
	// +optional
	MaxCount int64 `json:"maxCount,omitempty" yaml:"maxCount,omitempty"`

	// What happens when the bound is reached.
	// +optional
	EvictionStrategy EvictionStrategy `json:"evictionStrategy,omitempty" yaml:"evictionStrategy,omitempty"`

	Valid bool `json:"valid" yaml:"valid"`
}

type IndexedCache struct {
	// +optional
	IndexedStorage IndexedStorage `json:"indexedStorage,omitempty" yaml:"indexedStorage,omitempty"`

	// +optional
	StartupMode IndexingStartupMode `json:"startupMode,omitempty" yaml:"startupMode,omitempty"`

	// Fully qualified names of the Protobuf messages to index.
	// +optional
	IndexedEntities []string `json:"indexedEntities,omitempty" yaml:"indexedEntities,omitempty"`

	Valid bool `json:"valid" yaml:"valid"`
}

type SecuredCache struct {
	// Roles allowed to access the cache.
	// +optional
	Roles []string `json:"roles,omitempty" yaml:"roles,omitempty"`

	Valid bool `json:"valid" yaml:"valid"`
}

type PersistentCache struct {
	// Backend storing the entries.
	// +optional
	Storage StorageType `json:"storage,omitempty" yaml:"storage,omitempty"`

	// When enabled, entries are written to the store only when evicted from memory.
	// +optional
	Passivation bool `json:"passivation" yaml:"passivation"`

	// Connection parameters of the backend.
	// +optional
	Connection StoreConnection `json:"connection,omitempty" yaml:"connection,omitempty"`

	Valid bool `json:"valid" yaml:"valid"`
}

type StoreConnection struct {
	Path            string `json:"path,omitempty" yaml:"path,omitempty"`
	DataPath        string `json:"dataPath,omitempty" yaml:"dataPath,omitempty"`
	IndexPath       string `json:"indexPath,omitempty" yaml:"indexPath,omitempty"`
	Location        string `json:"location,omitempty" yaml:"location,omitempty"`
	ConnectionURL   string `json:"connectionUrl,omitempty" yaml:"connectionUrl,omitempty"`
	Driver          string `json:"driver,omitempty" yaml:"driver,omitempty"`
	Username        string `json:"username,omitempty" yaml:"username,omitempty"`
	Password        string `json:"password,omitempty" yaml:"password,omitempty"`
	TablePrefix     string `json:"tablePrefix,omitempty" yaml:"tablePrefix,omitempty"`
	Servers         string `json:"servers,omitempty" yaml:"servers,omitempty"`
	RemoteCacheName string `json:"remoteCacheName,omitempty" yaml:"remoteCacheName,omitempty"`
	Class           string `json:"class,omitempty" yaml:"class,omitempty"`
}

// Parameters returns the connection parameters the backend requires, keyed by field name.
// Unknown backends require nothing and yield nil.
func (c StoreConnection) Parameters(storage StorageType) map[string]string {
	switch storage {
	case StorageFileStore:
		return map[string]string{"path": c.Path}
	case StorageSoftIndexFileStore:
		return map[string]string{"dataPath": c.DataPath, "indexPath": c.IndexPath}
	case StorageRocksDB:
		return map[string]string{"location": c.Location}
	case StorageJDBC:
		return map[string]string{"connectionUrl": c.ConnectionURL, "driver": c.Driver, "tablePrefix": c.TablePrefix}
	case StorageRemote:
		return map[string]string{"servers": c.Servers, "remoteCacheName": c.RemoteCacheName}
	case StorageCustom:
		return map[string]string{"class": c.Class}
	}
	return nil
}

type TransactionalCache struct {
	// +optional
	Mode TransactionMode `json:"mode,omitempty" yaml:"mode,omitempty"`

	// +optional
	Locking LockingMode `json:"locking,omitempty" yaml:"locking,omitempty"`

	// Time to wait for ongoing transactions when the cache stops.
	// +optional
	StopTimeout TimeQuantity `json:"stopTimeout,omitempty" yaml:"stopTimeout,omitempty"`

	Valid bool `json:"valid" yaml:"valid"`
}

type BackupsCache struct {
	// Sites receiving a copy of every write.
	// +optional
	Sites []BackupSite `json:"sites,omitempty" yaml:"sites,omitempty"`

	Valid bool `json:"valid" yaml:"valid"`
}

type BackupSite struct {
	// Name of the remote site.
	Name string `json:"name" yaml:"name"`

	// +optional
	Strategy BackupStrategy `json:"strategy,omitempty" yaml:"strategy,omitempty"`

	// +optional
	FailurePolicy BackupFailurePolicy `json:"failurePolicy,omitempty" yaml:"failurePolicy,omitempty"`

	// Time to wait for the remote site to acknowledge a write.
	// +optional
	Timeout TimeQuantity `json:"timeout,omitempty" yaml:"timeout,omitempty"`
}

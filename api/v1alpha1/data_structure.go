package v1alpha1

// MaxSizeUnit scales a byte size. Decimal units are powers of 1000, binary units powers of 1024.
type MaxSizeUnit string

const (
	KB  MaxSizeUnit = "KB"
	MB  MaxSizeUnit = "MB"
	GB  MaxSizeUnit = "GB"
	TB  MaxSizeUnit = "TB"
	KiB MaxSizeUnit = "KiB"
	MiB MaxSizeUnit = "MiB"
	GiB MaxSizeUnit = "GiB"
	TiB MaxSizeUnit = "TiB"
)

// MaxSizeUnits lists every size unit, decimal first.
var MaxSizeUnits = []MaxSizeUnit{KB, MB, GB, TB, KiB, MiB, GiB, TiB}

// TimeUnit scales a duration.
type TimeUnit string

const (
	Milliseconds TimeUnit = "MILLISECONDS"
	Seconds      TimeUnit = "SECONDS"
	Minutes      TimeUnit = "MINUTES"
	Hours        TimeUnit = "HOURS"
	Days         TimeUnit = "DAYS"
)

// TimeUnits lists every time unit, smallest first.
var TimeUnits = []TimeUnit{Milliseconds, Seconds, Minutes, Hours, Days}

// Unbounded is the sentinel meaning "no limit" or "disabled", whatever the unit.
const Unbounded = -1

// EvictionType selects which bound of a bounded cache is enforced.
type EvictionType string

const (
	EvictionTypeSize  EvictionType = "size"
	EvictionTypeCount EvictionType = "count"
)

// EvictionStrategy decides what happens when a bounded cache is full.
type EvictionStrategy string

const (
	EvictionStrategyRemove    EvictionStrategy = "REMOVE"
	EvictionStrategyManual    EvictionStrategy = "MANUAL"
	EvictionStrategyException EvictionStrategy = "EXCEPTION"
	EvictionStrategyNone      EvictionStrategy = "NONE"
)

// IndexedStorage is where indexes are kept.
type IndexedStorage string

const (
	IndexedStorageFilesystem IndexedStorage = "filesystem"
	IndexedStorageLocalHeap  IndexedStorage = "local-heap"
)

// IndexingStartupMode is the action taken on indexes when the cache starts.
type IndexingStartupMode string

const (
	IndexingStartupPurge   IndexingStartupMode = "purge"
	IndexingStartupReindex IndexingStartupMode = "reindex"
	IndexingStartupAuto    IndexingStartupMode = "auto"
	IndexingStartupNone    IndexingStartupMode = "none"
)

// TransactionMode is the kind of transactions a cache takes part in.
type TransactionMode string

const (
	TransactionModeNone         TransactionMode = "NONE"
	TransactionModeBatch        TransactionMode = "BATCH"
	TransactionModeNonXA        TransactionMode = "NON_XA"
	TransactionModeNonDurableXA TransactionMode = "NON_DURABLE_XA"
	TransactionModeFullXA       TransactionMode = "FULL_XA"
)

// LockingMode is the locking scheme of transactions.
type LockingMode string

const (
	LockingOptimistic  LockingMode = "OPTIMISTIC"
	LockingPessimistic LockingMode = "PESSIMISTIC"
)

// IsolationLevel of transactions and locks.
type IsolationLevel string

const (
	IsolationReadCommitted  IsolationLevel = "READ_COMMITTED"
	IsolationRepeatableRead IsolationLevel = "REPEATABLE_READ"
)

// BackupStrategy is how writes are replicated to a backup site.
type BackupStrategy string

const (
	BackupStrategySync  BackupStrategy = "SYNC"
	BackupStrategyAsync BackupStrategy = "ASYNC"
)

// BackupFailurePolicy is the reaction to a failed write on a backup site.
type BackupFailurePolicy string

const (
	BackupFailureIgnore BackupFailurePolicy = "IGNORE"
	BackupFailureWarn   BackupFailurePolicy = "WARN"
	BackupFailureFail   BackupFailurePolicy = "FAIL"
)

// MergePolicy resolves conflicts between sites.
type MergePolicy string

const (
	MergePolicyDefault         MergePolicy = "DEFAULT"
	MergePolicyPreferredAlways MergePolicy = "PREFERRED_ALWAYS"
	MergePolicyPreferNonNull   MergePolicy = "PREFERRED_NON_NULL"
	MergePolicyPreferNull      MergePolicy = "PREFERRED_NULL"
	MergePolicyAlwaysRemove    MergePolicy = "ALWAYS_REMOVE"
)

// TracingCategory of cache operations.
type TracingCategory string

const (
	TracingContainer TracingCategory = "CONTAINER"
	TracingCluster   TracingCategory = "CLUSTER"
	TracingXSite     TracingCategory = "X_SITE"
	TracingPersist   TracingCategory = "PERSISTENCE"
	TracingSecurity  TracingCategory = "SECURITY"
)

// StorageType is the persistence backend of a cache.
type StorageType string

const (
	StorageFileStore          StorageType = "FileStore"
	StorageSoftIndexFileStore StorageType = "SoftIndexFileStore"
	StorageRocksDB            StorageType = "RocksDB"
	StorageJDBC               StorageType = "JDBC"
	StorageRemote             StorageType = "Remote"
	StorageCustom             StorageType = "Custom"
)

// StorageTypes lists every persistence backend.
var StorageTypes = []StorageType{
	StorageFileStore,
	StorageSoftIndexFileStore,
	StorageRocksDB,
	StorageJDBC,
	StorageRemote,
	StorageCustom,
}

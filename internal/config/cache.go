package config

import (
	"github.com/hazelcast/cache-config-engine/api/v1alpha1"
)

// Document is a cache configuration as accepted by the cluster. Exactly one topology is set.
type Document struct {
	Distributed  *Cache `json:"distributed-cache,omitempty" yaml:"distributed-cache,omitempty"`
	Replicated   *Cache `json:"replicated-cache,omitempty" yaml:"replicated-cache,omitempty"`
	Local        *Cache `json:"local-cache,omitempty" yaml:"local-cache,omitempty"`
	Invalidation *Cache `json:"invalidation-cache,omitempty" yaml:"invalidation-cache,omitempty"`
	Scattered    *Cache `json:"scattered-cache,omitempty" yaml:"scattered-cache,omitempty"`
}

// NewDocument returns a document holding a single cache of the given topology.
func NewDocument(t v1alpha1.CacheType, c *Cache) *Document {
	d := &Document{}
	d.Set(t, c)
	return d
}

func (d *Document) slot(t v1alpha1.CacheType) **Cache {
	switch t {
	case v1alpha1.CacheTypeDistributed:
		return &d.Distributed
	case v1alpha1.CacheTypeReplicated:
		return &d.Replicated
	case v1alpha1.CacheTypeLocal:
		return &d.Local
	case v1alpha1.CacheTypeInvalidated:
		return &d.Invalidation
	case v1alpha1.CacheTypeScattered:
		return &d.Scattered
	}
	return nil
}

// Set replaces the cache of the document. Any other topology is cleared.
func (d *Document) Set(t v1alpha1.CacheType, c *Cache) {
	*d = Document{}
	if s := d.slot(t); s != nil {
		*s = c
	}
}

// Cache returns the first topology set, in v1alpha1.CacheTypes order.
func (d *Document) Cache() (v1alpha1.CacheType, *Cache) {
	if d == nil {
		return "", nil
	}
	for _, t := range v1alpha1.CacheTypes {
		if c := *d.slot(t); c != nil {
			return t, c
		}
	}
	return "", nil
}

// IsEmpty reports whether no topology is set.
func (d *Document) IsEmpty() bool {
	_, c := d.Cache()
	return c == nil
}

type Cache struct {
	Name       string `json:"name,omitempty" yaml:"name,omitempty" xml:"name,attr,omitempty"`
	Mode       string `json:"mode,omitempty" yaml:"mode,omitempty" xml:"mode,attr,omitempty"`
	Owners     *Int   `json:"owners,omitempty" yaml:"owners,omitempty" xml:"owners,attr,omitempty"`
	Statistics *bool  `json:"statistics,omitempty" yaml:"statistics,omitempty" xml:"statistics,attr,omitempty"`

	Encoding    *Encoding    `json:"encoding,omitempty" yaml:"encoding,omitempty" xml:"encoding,omitempty"`
	Expiration  *Expiration  `json:"expiration,omitempty" yaml:"expiration,omitempty" xml:"expiration,omitempty"`
	Memory      *Memory      `json:"memory,omitempty" yaml:"memory,omitempty" xml:"memory,omitempty"`
	Indexing    *Indexing    `json:"indexing,omitempty" yaml:"indexing,omitempty" xml:"indexing,omitempty"`
	Security    *Security    `json:"security,omitempty" yaml:"security,omitempty" xml:"security,omitempty"`
	Transaction *Transaction `json:"transaction,omitempty" yaml:"transaction,omitempty" xml:"transaction,omitempty"`
	Locking     *Locking     `json:"locking,omitempty" yaml:"locking,omitempty" xml:"locking,omitempty"`
	Backups     *Backups     `json:"backups,omitempty" yaml:"backups,omitempty" xml:"backups,omitempty"`
	Persistence *Persistence `json:"persistence,omitempty" yaml:"persistence,omitempty" xml:"persistence,omitempty"`
	Tracing     *Tracing     `json:"tracing,omitempty" yaml:"tracing,omitempty" xml:"tracing,omitempty"`
}

// Encoding holds either one media type for keys and values, or one each.
type Encoding struct {
	MediaType string        `json:"media-type,omitempty" yaml:"media-type,omitempty" xml:"media-type,attr,omitempty"`
	Key       *MediaTypeRef `json:"key,omitempty" yaml:"key,omitempty" xml:"key,omitempty"`
	Value     *MediaTypeRef `json:"value,omitempty" yaml:"value,omitempty" xml:"value,omitempty"`
}

type MediaTypeRef struct {
	MediaType string `json:"media-type" yaml:"media-type" xml:"media-type,attr"`
}

type Expiration struct {
	Lifespan Scalar `json:"lifespan,omitempty" yaml:"lifespan,omitempty" xml:"lifespan,attr,omitempty"`
	MaxIdle  Scalar `json:"max-idle,omitempty" yaml:"max-idle,omitempty" xml:"max-idle,attr,omitempty"`
}

type Memory struct {
	MaxSize  Scalar `json:"max-size,omitempty" yaml:"max-size,omitempty" xml:"max-size,attr,omitempty"`
	MaxCount *Int   `json:"max-count,omitempty" yaml:"max-count,omitempty" xml:"max-count,attr,omitempty"`
	WhenFull string `json:"when-full,omitempty" yaml:"when-full,omitempty" xml:"when-full,attr,omitempty"`
}

type Indexing struct {
	Enabled         *bool    `json:"enabled,omitempty" yaml:"enabled,omitempty" xml:"enabled,attr,omitempty"`
	Storage         string   `json:"storage,omitempty" yaml:"storage,omitempty" xml:"storage,attr,omitempty"`
	StartupMode     string   `json:"startup-mode,omitempty" yaml:"startup-mode,omitempty" xml:"startup-mode,attr,omitempty"`
	IndexedEntities []string `json:"indexed-entities,omitempty" yaml:"indexed-entities,omitempty" xml:"indexed-entities>indexed-entity,omitempty"`
}

type Security struct {
	Authorization *Authorization `json:"authorization,omitempty" yaml:"authorization,omitempty" xml:"authorization,omitempty"`
}

type Authorization struct {
	Enabled *bool     `json:"enabled,omitempty" yaml:"enabled,omitempty" xml:"enabled,attr,omitempty"`
	Roles   SpaceList `json:"roles,omitempty" yaml:"roles,omitempty" xml:"roles,attr,omitempty"`
}

type Transaction struct {
	Mode        string `json:"mode,omitempty" yaml:"mode,omitempty" xml:"mode,attr,omitempty"`
	Locking     string `json:"locking,omitempty" yaml:"locking,omitempty" xml:"locking,attr,omitempty"`
	StopTimeout Scalar `json:"stop-timeout,omitempty" yaml:"stop-timeout,omitempty" xml:"stop-timeout,attr,omitempty"`
}

type Locking struct {
	Isolation        string `json:"isolation,omitempty" yaml:"isolation,omitempty" xml:"isolation,attr,omitempty"`
	Striping         *bool  `json:"striping,omitempty" yaml:"striping,omitempty" xml:"striping,attr,omitempty"`
	ConcurrencyLevel *Int   `json:"concurrency-level,omitempty" yaml:"concurrency-level,omitempty" xml:"concurrency-level,attr,omitempty"`
	AcquireTimeout   Scalar `json:"acquire-timeout,omitempty" yaml:"acquire-timeout,omitempty" xml:"acquire-timeout,attr,omitempty"`
}

type Backups struct {
	MergePolicy string   `json:"merge-policy,omitempty" yaml:"merge-policy,omitempty" xml:"merge-policy,attr,omitempty"`
	Backup      []Backup `json:"backup,omitempty" yaml:"backup,omitempty" xml:"backup,omitempty"`
}

type Backup struct {
	Site          string `json:"site" yaml:"site" xml:"site,attr"`
	Strategy      string `json:"strategy,omitempty" yaml:"strategy,omitempty" xml:"strategy,attr,omitempty"`
	FailurePolicy string `json:"failure-policy,omitempty" yaml:"failure-policy,omitempty" xml:"failure-policy,attr,omitempty"`
	Timeout       Scalar `json:"timeout,omitempty" yaml:"timeout,omitempty" xml:"timeout,attr,omitempty"`
}

type Persistence struct {
	Passivation        *bool  `json:"passivation,omitempty" yaml:"passivation,omitempty" xml:"passivation,attr,omitempty"`
	FileStore          *Store `json:"file-store,omitempty" yaml:"file-store,omitempty" xml:"file-store,omitempty"`
	SoftIndexFileStore *Store `json:"soft-index-file-store,omitempty" yaml:"soft-index-file-store,omitempty" xml:"soft-index-file-store,omitempty"`
	RocksDBStore       *Store `json:"rocksdb-store,omitempty" yaml:"rocksdb-store,omitempty" xml:"rocksdb-store,omitempty"`
	JDBCStore          *Store `json:"string-keyed-jdbc-store,omitempty" yaml:"string-keyed-jdbc-store,omitempty" xml:"string-keyed-jdbc-store,omitempty"`
	RemoteStore        *Store `json:"remote-store,omitempty" yaml:"remote-store,omitempty" xml:"remote-store,omitempty"`
	CustomStore        *Store `json:"store,omitempty" yaml:"store,omitempty" xml:"store,omitempty"`
}

// Store is the union of the attributes of every store element. Each backend uses its own subset.
type Store struct {
	Path           string          `json:"path,omitempty" yaml:"path,omitempty" xml:"path,attr,omitempty"`
	Cache          string          `json:"cache,omitempty" yaml:"cache,omitempty" xml:"cache,attr,omitempty"`
	Class          string          `json:"class,omitempty" yaml:"class,omitempty" xml:"class,attr,omitempty"`
	Data           *StorePath      `json:"data,omitempty" yaml:"data,omitempty" xml:"data,omitempty"`
	Index          *StorePath      `json:"index,omitempty" yaml:"index,omitempty" xml:"index,omitempty"`
	ConnectionPool *ConnectionPool `json:"connection-pool,omitempty" yaml:"connection-pool,omitempty" xml:"connection-pool,omitempty"`
	Table          *Table          `json:"string-keyed-table,omitempty" yaml:"string-keyed-table,omitempty" xml:"string-keyed-table,omitempty"`
	RemoteServers  []RemoteServer  `json:"remote-server,omitempty" yaml:"remote-server,omitempty" xml:"remote-server,omitempty"`
}

type StorePath struct {
	Path string `json:"path" yaml:"path" xml:"path,attr"`
}

type ConnectionPool struct {
	ConnectionURL string `json:"connection-url,omitempty" yaml:"connection-url,omitempty" xml:"connection-url,attr,omitempty"`
	Driver        string `json:"driver,omitempty" yaml:"driver,omitempty" xml:"driver,attr,omitempty"`
	Username      string `json:"username,omitempty" yaml:"username,omitempty" xml:"username,attr,omitempty"`
	Password      string `json:"password,omitempty" yaml:"password,omitempty" xml:"password,attr,omitempty"`
}

type Table struct {
	Prefix string `json:"prefix,omitempty" yaml:"prefix,omitempty" xml:"prefix,attr,omitempty"`
}

type RemoteServer struct {
	Host string `json:"host" yaml:"host" xml:"host,attr"`
	Port *Int   `json:"port,omitempty" yaml:"port,omitempty" xml:"port,attr,omitempty"`
}

type Tracing struct {
	Enabled    *bool     `json:"enabled,omitempty" yaml:"enabled,omitempty" xml:"enabled,attr,omitempty"`
	Categories SpaceList `json:"categories,omitempty" yaml:"categories,omitempty" xml:"categories,attr,omitempty"`
}

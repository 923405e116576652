package compiler

import (
	"fmt"

	"github.com/hazelcast/cache-config-engine/api/v1alpha1"
	"github.com/hazelcast/cache-config-engine/internal/config"
	"github.com/hazelcast/cache-config-engine/internal/mediatype"
	n "github.com/hazelcast/cache-config-engine/internal/naming"
	"github.com/hazelcast/cache-config-engine/internal/units"
	"github.com/hazelcast/cache-config-engine/internal/validation"
)

// Decompile extracts the editable fields of a configuration document. Sections and values the
// console does not model are ignored, as are values that cannot be parsed. It fails only when the
// document holds no cache.
func Decompile(doc *config.Document) (*v1alpha1.EditableConfig, error) {
	t, c := doc.Cache()
	if c == nil {
		return nil, config.ErrNoTopology
	}

	e := &v1alpha1.EditableConfig{
		Name:  c.Name,
		Basic: decompileBasic(t, c),
	}
	f := &e.Feature

	if c.Memory != nil {
		if b, ok := decompileMemory(c.Memory); ok {
			f.BoundedCache = b
			f.Select(v1alpha1.FeatureBounded)
		}
	}
	if ix := c.Indexing; ix != nil {
		f.IndexedCache = v1alpha1.IndexedCache{
			IndexedStorage:  v1alpha1.IndexedStorage(ix.Storage),
			StartupMode:     v1alpha1.IndexingStartupMode(ix.StartupMode),
			IndexedEntities: append([]string(nil), ix.IndexedEntities...),
		}
		if (ix.Enabled != nil && *ix.Enabled) || (ix.Enabled == nil && len(ix.IndexedEntities) > 0) {
			f.Select(v1alpha1.FeatureIndexed)
		}
	}
	if c.Security != nil && c.Security.Authorization != nil {
		a := c.Security.Authorization
		f.SecuredCache.Roles = append([]string(nil), a.Roles...)
		if a.Enabled == nil || *a.Enabled {
			f.Select(v1alpha1.FeatureAuthorization)
		}
	}
	if c.Persistence != nil {
		if p, ok := decompilePersistence(c.Persistence); ok {
			f.PersistentCache = p
			f.Select(v1alpha1.FeaturePersistence)
		}
	}
	if tx := c.Transaction; tx != nil {
		f.TransactionalCache = v1alpha1.TransactionalCache{
			Mode:        v1alpha1.TransactionMode(tx.Mode),
			Locking:     v1alpha1.LockingMode(tx.Locking),
			StopTimeout: parseTime(tx.StopTimeout),
		}
		if tx.Mode != "" && v1alpha1.TransactionMode(tx.Mode) != v1alpha1.TransactionModeNone {
			f.Select(v1alpha1.FeatureTransactional)
		}
	}
	if c.Backups != nil {
		e.Advanced.BackupMergePolicy = v1alpha1.MergePolicy(c.Backups.MergePolicy)
		for _, b := range c.Backups.Backup {
			f.BackupsCache.Sites = append(f.BackupsCache.Sites, v1alpha1.BackupSite{
				Name:          b.Site,
				Strategy:      v1alpha1.BackupStrategy(b.Strategy),
				FailurePolicy: v1alpha1.BackupFailurePolicy(b.FailurePolicy),
				Timeout:       parseTime(b.Timeout),
			})
		}
		if len(f.BackupsCache.Sites) > 0 {
			f.Select(v1alpha1.FeatureBackups)
		}
	}
	if l := c.Locking; l != nil {
		e.Advanced.TransactionIsolation = v1alpha1.IsolationLevel(l.Isolation)
		concurrencyLevel, _ := l.ConcurrencyLevel.Int32()
		e.Advanced.Locking = v1alpha1.LockingConfig{
			Striping:         l.Striping != nil && *l.Striping,
			ConcurrencyLevel: concurrencyLevel,
			AcquireTimeout:   parseTime(l.AcquireTimeout),
		}
	}
	if tr := c.Tracing; tr != nil {
		e.Advanced.Tracing.Enabled = tr.Enabled != nil && *tr.Enabled
		for _, cat := range tr.Categories {
			e.Advanced.Tracing.Categories = append(e.Advanced.Tracing.Categories, v1alpha1.TracingCategory(cat))
		}
	}

	cfg := validation.RecomputeValidity(e.Configuration())
	e.Feature = cfg.Feature
	return e, nil
}

// DecompileBytes reads a document in the given format and decompiles it.
func DecompileBytes(data []byte, f config.Format) (*v1alpha1.EditableConfig, error) {
	doc, err := config.Unmarshal(data, f)
	if err != nil {
		return nil, err
	}
	e, err := Decompile(doc)
	if err != nil {
		return nil, fmt.Errorf("could not decompile %s document: %w", f, err)
	}
	return e, nil
}

func decompileBasic(t v1alpha1.CacheType, c *config.Cache) v1alpha1.BasicConfig {
	b := v1alpha1.BasicConfig{
		Topology:   t,
		Mode:       v1alpha1.CacheMode(c.Mode),
		Statistics: c.Statistics != nil && *c.Statistics,
	}
	if b.Mode == "" {
		b.Mode = v1alpha1.CacheModeSync
	}
	if t.HasOwners() {
		b.NumberOfOwners = n.DefaultNumberOfOwners
		if owners, ok := c.Owners.Int32(); ok {
			b.NumberOfOwners = owners
		}
	}

	if enc := c.Encoding; enc != nil {
		b.Encoding = mediatype.EncodingFromMediaType(enc.MediaType)
		if enc.Key != nil {
			b.KeyEncoding = mediatype.EncodingFromMediaType(enc.Key.MediaType)
		}
		if enc.Value != nil {
			b.ValueEncoding = mediatype.EncodingFromMediaType(enc.Value.MediaType)
		}
		if key, value := b.KeyMediaType(), b.ValueMediaType(); key == value {
			b.Encoding, b.KeyEncoding, b.ValueEncoding = key, v1alpha1.EncodingEmpty, v1alpha1.EncodingEmpty
		} else {
			b.Encoding, b.KeyEncoding, b.ValueEncoding = v1alpha1.EncodingEmpty, key, value
		}
	}

	if exp := c.Expiration; exp != nil {
		b.Expiration = v1alpha1.ExpirationConfig{
			Lifespan: parseTime(exp.Lifespan),
			MaxIdle:  parseTime(exp.MaxIdle),
		}
	}
	return b
}

func decompileMemory(m *config.Memory) (v1alpha1.BoundedCache, bool) {
	b := v1alpha1.BoundedCache{EvictionStrategy: v1alpha1.EvictionStrategy(m.WhenFull)}
	if m.MaxSize != "" {
		if size, unit, err := units.ParseSize(string(m.MaxSize)); err == nil && size != v1alpha1.Unbounded {
			b.EvictionType = v1alpha1.EvictionTypeSize
			b.MaxSize, b.MaxSizeUnit = size, unit
			return b, true
		}
	}
	if count := m.MaxCount.Value(); count > 0 {
		b.EvictionType = v1alpha1.EvictionTypeCount
		b.MaxCount = count
		return b, true
	}
	return b, false
}

func parseTime(s config.Scalar) v1alpha1.TimeQuantity {
	if s == "" {
		return v1alpha1.TimeQuantity{}
	}
	v, unit, err := units.ParseTime(string(s))
	if err != nil {
		return v1alpha1.TimeQuantity{}
	}
	return v1alpha1.TimeQuantity{Value: v, Unit: unit}
}

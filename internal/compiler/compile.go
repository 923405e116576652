package compiler

import (
	"bytes"
	"strings"

	"k8s.io/utils/pointer"

	"github.com/hazelcast/cache-config-engine/api/v1alpha1"
	"github.com/hazelcast/cache-config-engine/internal/config"
	"github.com/hazelcast/cache-config-engine/internal/mediatype"
	n "github.com/hazelcast/cache-config-engine/internal/naming"
	"github.com/hazelcast/cache-config-engine/internal/units"
	"github.com/hazelcast/cache-config-engine/internal/validation"
)

// Compile builds the configuration document of the cache. Only selected features get a section,
// and fields without a value are left out. The same configuration always yields the same document.
func Compile(cfg *v1alpha1.CacheConfiguration) *config.Document {
	b := cfg.Basic
	c := &config.Cache{
		Statistics: pointer.BoolPtr(b.Statistics),
		Encoding:   compileEncoding(b),
		Expiration: compileExpiration(b.Expiration),
		Locking:    compileLocking(cfg.Advanced),
		Tracing:    compileTracing(cfg.Advanced.Tracing),
	}
	if b.Topology.IsClustered() {
		c.Mode = string(b.Mode)
		if b.Mode == "" {
			c.Mode = string(v1alpha1.CacheModeSync)
		}
	}
	if b.Topology.HasOwners() && b.NumberOfOwners > 0 {
		c.Owners = config.NewInt(int64(b.NumberOfOwners))
	}

	f := &cfg.Feature
	if f.IsSelected(v1alpha1.FeatureBounded) {
		c.Memory = compileMemory(f.BoundedCache)
	}
	if f.IsSelected(v1alpha1.FeatureIndexed) {
		c.Indexing = &config.Indexing{
			Enabled:         pointer.BoolPtr(true),
			Storage:         string(f.IndexedCache.IndexedStorage),
			StartupMode:     string(f.IndexedCache.StartupMode),
			IndexedEntities: trimmed(f.IndexedCache.IndexedEntities),
		}
	}
	if f.IsSelected(v1alpha1.FeatureAuthorization) {
		c.Security = &config.Security{Authorization: &config.Authorization{
			Enabled: pointer.BoolPtr(true),
			Roles:   config.SpaceList(trimmed(f.SecuredCache.Roles)),
		}}
	}
	if f.IsSelected(v1alpha1.FeaturePersistence) {
		c.Persistence = compilePersistence(f.PersistentCache)
	}
	if f.IsSelected(v1alpha1.FeatureTransactional) {
		c.Transaction = compileTransaction(f.TransactionalCache)
	}
	c.Backups = compileBackups(f, cfg.Advanced.BackupMergePolicy)

	return config.NewDocument(b.Topology, c)
}

// Render compiles the configuration and writes it in the given format.
func Render(cfg *v1alpha1.CacheConfiguration, f config.Format) ([]byte, error) {
	return config.Marshal(Compile(cfg), f)
}

// PendingChange reports whether a newly rendered document differs from the previous one.
func PendingChange(previous, next []byte) bool {
	return !bytes.Equal(previous, next)
}

func compileEncoding(b v1alpha1.BasicConfig) *config.Encoding {
	key, value := b.KeyMediaType(), b.ValueMediaType()
	if key == value {
		if key == v1alpha1.EncodingEmpty {
			return nil
		}
		return &config.Encoding{MediaType: mediatype.MediaType(key)}
	}
	return &config.Encoding{Key: mediaTypeRef(key), Value: mediaTypeRef(value)}
}

func mediaTypeRef(enc v1alpha1.EncodingType) *config.MediaTypeRef {
	if enc == v1alpha1.EncodingEmpty {
		return nil
	}
	return &config.MediaTypeRef{MediaType: mediatype.MediaType(enc)}
}

func compileExpiration(e v1alpha1.ExpirationConfig) *config.Expiration {
	lifespan, hasLifespan := renderTime(e.Lifespan)
	maxIdle, hasMaxIdle := renderTime(e.MaxIdle)
	if !hasLifespan && !hasMaxIdle {
		return nil
	}
	return &config.Expiration{Lifespan: lifespan, MaxIdle: maxIdle}
}

func renderTime(q v1alpha1.TimeQuantity) (config.Scalar, bool) {
	s, ok := units.RenderTime(q.Value, q.Unit)
	return config.Scalar(s), ok
}

func compileMemory(b v1alpha1.BoundedCache) *config.Memory {
	m := &config.Memory{WhenFull: string(b.EvictionStrategy)}
	switch validation.EnforcedBound(b) {
	case v1alpha1.EvictionTypeSize:
		size := b.MaxSize
		if s := units.RenderSize(&size, b.MaxSizeUnit); s != n.OmittedValue {
			m.MaxSize = config.Scalar(s)
		}
	case v1alpha1.EvictionTypeCount:
		if b.MaxCount > 0 {
			m.MaxCount = config.NewInt(b.MaxCount)
		}
	}
	return m
}

func compileTransaction(t v1alpha1.TransactionalCache) *config.Transaction {
	mode := t.Mode
	if mode == "" || mode == v1alpha1.TransactionModeNone {
		mode = v1alpha1.TransactionModeNonXA
	}
	stop, _ := renderTime(t.StopTimeout)
	return &config.Transaction{
		Mode:        string(mode),
		Locking:     string(t.Locking),
		StopTimeout: stop,
	}
}

func compileLocking(a v1alpha1.AdvancedConfig) *config.Locking {
	if a.TransactionIsolation == "" && a.Locking.IsZero() {
		return nil
	}
	l := &config.Locking{Isolation: string(a.TransactionIsolation)}
	if a.Locking.Striping {
		l.Striping = pointer.BoolPtr(true)
	}
	if a.Locking.ConcurrencyLevel > 0 {
		l.ConcurrencyLevel = config.NewInt(int64(a.Locking.ConcurrencyLevel))
	}
	l.AcquireTimeout, _ = renderTime(a.Locking.AcquireTimeout)
	return l
}

func compileTracing(t v1alpha1.TracingConfig) *config.Tracing {
	if !t.Enabled && len(t.Categories) == 0 {
		return nil
	}
	tr := &config.Tracing{Enabled: pointer.BoolPtr(t.Enabled)}
	for _, c := range t.Categories {
		tr.Categories = append(tr.Categories, string(c))
	}
	return tr
}

func compileBackups(f *v1alpha1.FeatureConfig, policy v1alpha1.MergePolicy) *config.Backups {
	selected := f.IsSelected(v1alpha1.FeatureBackups)
	if !selected && policy == "" {
		return nil
	}
	b := &config.Backups{MergePolicy: string(policy)}
	if !selected {
		return b
	}
	for _, s := range f.BackupsCache.Sites {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			continue
		}
		timeout, _ := renderTime(s.Timeout)
		b.Backup = append(b.Backup, config.Backup{
			Site:          name,
			Strategy:      string(s.Strategy),
			FailurePolicy: string(s.FailurePolicy),
			Timeout:       timeout,
		})
	}
	return b
}

func trimmed(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

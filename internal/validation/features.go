package validation

import (
	"math"
	"strings"

	"github.com/hazelcast/cache-config-engine/api/v1alpha1"
	"github.com/hazelcast/cache-config-engine/internal/units"
)

// IsBoundedValid reports whether exactly one bound is a positive finite number. When the eviction
// type is set, only the bound it names is considered.
func IsBoundedValid(b v1alpha1.BoundedCache) bool {
	switch b.EvictionType {
	case v1alpha1.EvictionTypeSize:
		return hasMaxSize(b)
	case v1alpha1.EvictionTypeCount:
		return hasMaxCount(b)
	}
	return hasMaxSize(b) != hasMaxCount(b)
}

// EnforcedBound returns the bound a bounded cache enforces. Without an explicit eviction type the
// size is enforced when it is a valid quantity, otherwise the count.
func EnforcedBound(b v1alpha1.BoundedCache) v1alpha1.EvictionType {
	if b.EvictionType != "" {
		return b.EvictionType
	}
	if hasMaxSize(b) {
		return v1alpha1.EvictionTypeSize
	}
	return v1alpha1.EvictionTypeCount
}

func hasMaxSize(b v1alpha1.BoundedCache) bool {
	if b.MaxSize <= 0 || math.IsInf(b.MaxSize, 0) || math.IsNaN(b.MaxSize) {
		return false
	}
	bytes, err := units.Bytes(b.MaxSize, b.MaxSizeUnit)
	return err == nil && bytes > 0
}

func hasMaxCount(b v1alpha1.BoundedCache) bool {
	return b.MaxCount > 0
}

// IsIndexedValid reports whether at least one entity is indexed and values are Protobuf encoded.
func IsIndexedValid(i v1alpha1.IndexedCache, basic v1alpha1.BasicConfig) bool {
	return len(nonBlank(i.IndexedEntities)) > 0 && basic.ValueMediaType() == v1alpha1.EncodingProtobuf
}

// IsSecuredValid reports whether at least one role is granted access.
func IsSecuredValid(s v1alpha1.SecuredCache) bool {
	return len(nonBlank(s.Roles)) > 0
}

// IsTransactionalValid reports whether the cache replicates synchronously.
func IsTransactionalValid(_ v1alpha1.TransactionalCache, basic v1alpha1.BasicConfig) bool {
	return basic.Mode == v1alpha1.CacheModeSync
}

// IsBackupsValid reports whether at least one named backup site is configured.
func IsBackupsValid(b v1alpha1.BackupsCache) bool {
	for _, s := range b.Sites {
		if strings.TrimSpace(s.Name) != "" {
			return true
		}
	}
	return false
}

// IsPersistentValid reports whether a storage backend is chosen and all of its connection
// parameters are filled in.
func IsPersistentValid(p v1alpha1.PersistentCache) bool {
	params := p.Connection.Parameters(p.Storage)
	if params == nil {
		return false
	}
	for _, v := range params {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

// IsFeatureValid evaluates the predicate of one feature against the whole configuration.
func IsFeatureValid(cfg *v1alpha1.CacheConfiguration, name v1alpha1.FeatureName) bool {
	f := &cfg.Feature
	switch name {
	case v1alpha1.FeatureBounded:
		return IsBoundedValid(f.BoundedCache)
	case v1alpha1.FeatureIndexed:
		return IsIndexedValid(f.IndexedCache, cfg.Basic)
	case v1alpha1.FeatureAuthorization:
		return IsSecuredValid(f.SecuredCache)
	case v1alpha1.FeaturePersistence:
		return IsPersistentValid(f.PersistentCache)
	case v1alpha1.FeatureTransactional:
		return IsTransactionalValid(f.TransactionalCache, cfg.Basic)
	case v1alpha1.FeatureBackups:
		return IsBackupsValid(f.BackupsCache)
	}
	return false
}

// RecomputeValidity refreshes the valid flag of every feature, selected or not, and returns cfg.
func RecomputeValidity(cfg *v1alpha1.CacheConfiguration) *v1alpha1.CacheConfiguration {
	if cfg == nil {
		return nil
	}
	f := &cfg.Feature
	f.BoundedCache.Valid = IsFeatureValid(cfg, v1alpha1.FeatureBounded)
	f.IndexedCache.Valid = IsFeatureValid(cfg, v1alpha1.FeatureIndexed)
	f.SecuredCache.Valid = IsFeatureValid(cfg, v1alpha1.FeatureAuthorization)
	f.PersistentCache.Valid = IsFeatureValid(cfg, v1alpha1.FeaturePersistence)
	f.TransactionalCache.Valid = IsFeatureValid(cfg, v1alpha1.FeatureTransactional)
	f.BackupsCache.Valid = IsFeatureValid(cfg, v1alpha1.FeatureBackups)
	return cfg
}

// AllFeaturesValid reports whether every selected feature holds a valid flag. The flags are read,
// not recomputed. Unselected features are ignored.
func AllFeaturesValid(cfg *v1alpha1.CacheConfiguration) bool {
	for _, name := range cfg.Feature.Selected {
		if !cfg.Feature.IsValid(name) {
			return false
		}
	}
	return true
}

func nonBlank(values []string) []string {
	var out []string
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}

package validation

import (
	"k8s.io/apimachinery/pkg/util/validation/field"

	"github.com/hazelcast/cache-config-engine/api/v1alpha1"
	"github.com/hazelcast/cache-config-engine/internal/units"
)

// Explain lists why the selected features are invalid. Unselected features are skipped.
// Error paths double as message keys, e.g. feature.indexedCache.indexedEntities.
func Explain(cfg *v1alpha1.CacheConfiguration) field.ErrorList {
	var allErrs field.ErrorList
	for _, name := range cfg.Feature.Selected {
		if IsFeatureValid(cfg, name) {
			continue
		}
		allErrs = append(allErrs, explainFeature(cfg, name)...)
	}
	return allErrs
}

func explainFeature(cfg *v1alpha1.CacheConfiguration, name v1alpha1.FeatureName) field.ErrorList {
	f := &cfg.Feature
	switch name {
	case v1alpha1.FeatureBounded:
		return explainBounded(f.BoundedCache, featurePath.Child("boundedCache"))

	case v1alpha1.FeatureIndexed:
		p := featurePath.Child("indexedCache")
		var allErrs field.ErrorList
		if len(nonBlank(f.IndexedCache.IndexedEntities)) == 0 {
			allErrs = append(allErrs, field.Required(p.Child("indexedEntities"), "at least one entity must be indexed"))
		}
		if enc := cfg.Basic.ValueMediaType(); enc != v1alpha1.EncodingProtobuf {
			allErrs = append(allErrs, field.Invalid(basicPath.Child("encoding"), enc, "indexing requires the Protobuf encoding"))
		}
		return allErrs

	case v1alpha1.FeatureAuthorization:
		return field.ErrorList{field.Required(featurePath.Child("securedCache", "roles"), "at least one role must be selected")}

	case v1alpha1.FeaturePersistence:
		p := featurePath.Child("persistentCache")
		params := f.PersistentCache.Connection.Parameters(f.PersistentCache.Storage)
		if params == nil {
			return field.ErrorList{field.Required(p.Child("storage"), "a storage backend must be chosen")}
		}
		var allErrs field.ErrorList
		for _, key := range sortedKeys(params) {
			if isBlank(params[key]) {
				allErrs = append(allErrs, field.Required(p.Child("connection", key), "required by "+string(f.PersistentCache.Storage)))
			}
		}
		return allErrs

	case v1alpha1.FeatureTransactional:
		return field.ErrorList{field.Invalid(basicPath.Child("mode"), cfg.Basic.Mode, "transactions require synchronous replication")}

	case v1alpha1.FeatureBackups:
		return field.ErrorList{field.Required(featurePath.Child("backupsCache", "sites"), "at least one named backup site must be configured")}
	}
	return field.ErrorList{field.NotSupported(featurePath.Child("selected"), name, nil)}
}

func explainBounded(b v1alpha1.BoundedCache, p *field.Path) field.ErrorList {
	size, count := p.Child("maxSize"), p.Child("maxCount")
	switch b.EvictionType {
	case v1alpha1.EvictionTypeSize:
		return field.ErrorList{explainMaxSize(b, size)}
	case v1alpha1.EvictionTypeCount:
		return field.ErrorList{field.Invalid(count, b.MaxCount, "must be a positive number")}
	}
	if hasMaxSize(b) && hasMaxCount(b) {
		return field.ErrorList{field.Forbidden(count, "max-size and max-count are mutually exclusive")}
	}
	return field.ErrorList{field.Required(size, "one of max-size or max-count must be set")}
}

func explainMaxSize(b v1alpha1.BoundedCache, p *field.Path) *field.Error {
	if _, err := units.Bytes(b.MaxSize, b.MaxSizeUnit); err != nil {
		return field.Invalid(p, b.MaxSize, err.Error())
	}
	return field.Invalid(p, b.MaxSize, "must be a positive number")
}

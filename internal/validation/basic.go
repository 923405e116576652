package validation

import (
	"strings"

	"k8s.io/apimachinery/pkg/util/sets"
	"k8s.io/apimachinery/pkg/util/validation/field"

	"github.com/hazelcast/cache-config-engine/api/v1alpha1"
)

var (
	startPath    = field.NewPath("start")
	basicPath    = field.NewPath("basic")
	featurePath  = field.NewPath("feature")
	cacheTypeSet = func() sets.String {
		s := sets.NewString()
		for _, t := range v1alpha1.CacheTypes {
			s.Insert(string(t))
		}
		return s
	}()
)

// ValidateBasic checks the fields of the start and basic steps. existing holds the names of the
// caches already present on the cluster.
func ValidateBasic(cfg *v1alpha1.CacheConfiguration, existing []string) field.ErrorList {
	var allErrs field.ErrorList

	name := strings.TrimSpace(cfg.Start.Name)
	switch {
	case name == "":
		allErrs = append(allErrs, field.Required(startPath.Child("name"), "cache name must not be empty"))
	case sets.NewString(existing...).Has(name):
		allErrs = append(allErrs, field.Duplicate(startPath.Child("name"), name))
	}

	if !cfg.Start.UseBuilder() {
		if strings.TrimSpace(cfg.Start.Document) == "" {
			allErrs = append(allErrs, field.Required(startPath.Child("document"), "configuration document must not be empty"))
		}
		return allErrs
	}

	if !cacheTypeSet.Has(string(cfg.Basic.Topology)) {
		allErrs = append(allErrs, field.NotSupported(basicPath.Child("topology"), cfg.Basic.Topology, cacheTypeSet.List()))
		return allErrs
	}
	if cfg.Basic.Topology.HasOwners() && cfg.Basic.NumberOfOwners < 1 {
		allErrs = append(allErrs, field.Invalid(basicPath.Child("numberOfOwners"), cfg.Basic.NumberOfOwners, "must be at least 1"))
	}
	return allErrs
}

// CanSubmit reports whether the wizard may submit the configuration.
func CanSubmit(cfg *v1alpha1.CacheConfiguration, existing []string) bool {
	if len(ValidateBasic(cfg, existing)) > 0 {
		return false
	}
	return !cfg.Start.UseBuilder() || AllFeaturesValid(cfg)
}

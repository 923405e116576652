package wizard

import (
	"fmt"
	"strings"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"k8s.io/apimachinery/pkg/util/validation/field"

	"github.com/hazelcast/cache-config-engine/api/v1alpha1"
	"github.com/hazelcast/cache-config-engine/internal/mediatype"
	n "github.com/hazelcast/cache-config-engine/internal/naming"
	"github.com/hazelcast/cache-config-engine/internal/validation"
)

// Session owns the configuration edited by one wizard or one edit form. It is not safe for
// concurrent use. Every mutation recomputes the validity of all features before returning.
type Session struct {
	ID string

	log      logr.Logger
	config   *v1alpha1.CacheConfiguration
	step     Step
	existing []string
}

// IncompleteStepError is returned when leaving a step whose fields are not valid.
type IncompleteStepError struct {
	Step   Step
	Errors field.ErrorList
}

func (e *IncompleteStepError) Error() string {
	return fmt.Sprintf("step %s is incomplete: %v", e.Step, e.Errors.ToAggregate())
}

// NewSession starts a wizard for a new distributed, synchronous, Protobuf encoded cache.
func NewSession(logger logr.Logger) *Session {
	return newSession(logger, &v1alpha1.CacheConfiguration{
		Start: v1alpha1.StartConfig{CreateMode: v1alpha1.CreateModeBuilder},
		Basic: v1alpha1.BasicConfig{
			Topology:       v1alpha1.CacheTypeDistributed,
			Mode:           v1alpha1.CacheModeSync,
			NumberOfOwners: n.DefaultNumberOfOwners,
			Encoding:       v1alpha1.EncodingProtobuf,
			Statistics:     true,
		},
	})
}

// FromEditable starts an edit session on a configuration retrieved from the cluster.
func FromEditable(logger logr.Logger, e *v1alpha1.EditableConfig) *Session {
	return newSession(logger, e.Configuration())
}

// Resume continues a wizard from a saved configuration. A nil configuration starts a new wizard.
func Resume(logger logr.Logger, cfg *v1alpha1.CacheConfiguration) *Session {
	if cfg == nil {
		return NewSession(logger)
	}
	return newSession(logger, cfg.DeepCopy())
}

func newSession(logger logr.Logger, cfg *v1alpha1.CacheConfiguration) *Session {
	id := uuid.New().String()
	s := &Session{
		ID:     id,
		log:    logger.WithName("wizard").WithValues("session", id),
		config: validation.RecomputeValidity(cfg),
		step:   StepStart,
	}
	s.log.V(1).Info("Session started", "cache", cfg.Start.Name, "topology", cfg.Basic.Topology)
	return s
}

// Configuration returns a copy of the current configuration.
func (s *Session) Configuration() *v1alpha1.CacheConfiguration {
	return s.config.DeepCopy()
}

// Step returns the step the wizard is showing.
func (s *Session) Step() Step {
	return s.step
}

// SetExistingNames records the caches already present on the cluster, used by the name check.
func (s *Session) SetExistingNames(names []string) {
	s.existing = append([]string(nil), names...)
}

// Replace swaps the whole configuration for one reloaded from the cluster. The step is kept.
func (s *Session) Replace(e *v1alpha1.EditableConfig) {
	s.config = validation.RecomputeValidity(e.Configuration())
	s.log.Info("Configuration replaced", "cache", e.Name)
}

func (s *Session) mutate(what string, fn func(cfg *v1alpha1.CacheConfiguration)) {
	fn(s.config)
	validation.RecomputeValidity(s.config)
	s.log.V(1).Info("Configuration updated", "field", what, "step", s.step.String())
}

func (s *Session) SetName(name string) {
	s.mutate("start.name", func(c *v1alpha1.CacheConfiguration) { c.Start.Name = name })
}

func (s *Session) SetCreateMode(mode v1alpha1.CreateMode) {
	s.mutate("start.createMode", func(c *v1alpha1.CacheConfiguration) { c.Start.CreateMode = mode })
}

func (s *Session) SetDocument(document string) {
	s.mutate("start.document", func(c *v1alpha1.CacheConfiguration) { c.Start.Document = document })
}

func (s *Session) SetCacheType(t v1alpha1.CacheType) {
	s.mutate("basic.topology", func(c *v1alpha1.CacheConfiguration) { c.Basic.Topology = t })
}

func (s *Session) SetMode(mode v1alpha1.CacheMode) {
	s.mutate("basic.mode", func(c *v1alpha1.CacheConfiguration) { c.Basic.Mode = mode })
}

func (s *Session) SetNumberOfOwners(owners int32) {
	s.mutate("basic.numberOfOwners", func(c *v1alpha1.CacheConfiguration) { c.Basic.NumberOfOwners = owners })
}

// SetEncoding sets the encoding shared by keys and values and drops any override.
func (s *Session) SetEncoding(enc v1alpha1.EncodingType) {
	s.mutate("basic.encoding", func(c *v1alpha1.CacheConfiguration) {
		c.Basic.Encoding = enc
		c.Basic.KeyEncoding = v1alpha1.EncodingEmpty
		c.Basic.ValueEncoding = v1alpha1.EncodingEmpty
	})
}

// SetKeyValueEncoding overrides the encoding separately for keys and values.
func (s *Session) SetKeyValueEncoding(key, value v1alpha1.EncodingType) {
	s.mutate("basic.encoding", func(c *v1alpha1.CacheConfiguration) {
		c.Basic.KeyEncoding = key
		c.Basic.ValueEncoding = value
	})
}

func (s *Session) SetStatistics(enabled bool) {
	s.mutate("basic.statistics", func(c *v1alpha1.CacheConfiguration) { c.Basic.Statistics = enabled })
}

func (s *Session) SetExpiration(lifespan, maxIdle v1alpha1.TimeQuantity) {
	s.mutate("basic.expiration", func(c *v1alpha1.CacheConfiguration) {
		c.Basic.Expiration = v1alpha1.ExpirationConfig{Lifespan: lifespan, MaxIdle: maxIdle}
	})
}

// SelectFeature turns a feature on. Its fields are kept from any earlier selection.
func (s *Session) SelectFeature(name v1alpha1.FeatureName) {
	s.mutate("feature.selected", func(c *v1alpha1.CacheConfiguration) { c.Feature.Select(name) })
}

func (s *Session) DeselectFeature(name v1alpha1.FeatureName) {
	s.mutate("feature.selected", func(c *v1alpha1.CacheConfiguration) { c.Feature.Deselect(name) })
}

func (s *Session) UpdateBounded(fn func(*v1alpha1.BoundedCache)) {
	s.mutate("feature.boundedCache", func(c *v1alpha1.CacheConfiguration) { fn(&c.Feature.BoundedCache) })
}

func (s *Session) UpdateIndexed(fn func(*v1alpha1.IndexedCache)) {
	s.mutate("feature.indexedCache", func(c *v1alpha1.CacheConfiguration) { fn(&c.Feature.IndexedCache) })
}

func (s *Session) UpdateSecured(fn func(*v1alpha1.SecuredCache)) {
	s.mutate("feature.securedCache", func(c *v1alpha1.CacheConfiguration) { fn(&c.Feature.SecuredCache) })
}

func (s *Session) UpdatePersistent(fn func(*v1alpha1.PersistentCache)) {
	s.mutate("feature.persistentCache", func(c *v1alpha1.CacheConfiguration) { fn(&c.Feature.PersistentCache) })
}

func (s *Session) UpdateTransactional(fn func(*v1alpha1.TransactionalCache)) {
	s.mutate("feature.transactionalCache", func(c *v1alpha1.CacheConfiguration) { fn(&c.Feature.TransactionalCache) })
}

func (s *Session) UpdateBackups(fn func(*v1alpha1.BackupsCache)) {
	s.mutate("feature.backupsCache", func(c *v1alpha1.CacheConfiguration) { fn(&c.Feature.BackupsCache) })
}

func (s *Session) UpdateAdvanced(fn func(*v1alpha1.AdvancedConfig)) {
	s.mutate("advanced", func(c *v1alpha1.CacheConfiguration) { fn(&c.Advanced) })
}

// ContentTypeOptions returns the content types offered for the shared encoding.
func (s *Session) ContentTypeOptions() []v1alpha1.ContentType {
	return mediatype.ContentTypeOptionsFor(s.config.Basic.Encoding)
}

// KeyContentTypeOptions returns the content types offered for keys.
func (s *Session) KeyContentTypeOptions() []v1alpha1.ContentType {
	return mediatype.ContentTypeOptionsFor(s.config.Basic.KeyMediaType())
}

// ValueContentTypeOptions returns the content types offered for values.
func (s *Session) ValueContentTypeOptions() []v1alpha1.ContentType {
	return mediatype.ContentTypeOptionsFor(s.config.Basic.ValueMediaType())
}

// AllFeaturesValid reports whether every selected feature is valid.
func (s *Session) AllFeaturesValid() bool {
	return validation.AllFeaturesValid(s.config)
}

// Explain lists the problems of the selected features.
func (s *Session) Explain() field.ErrorList {
	return validation.Explain(s.config)
}

// CanSubmit reports whether the configuration may be submitted to the cluster.
func (s *Session) CanSubmit() bool {
	return validation.CanSubmit(s.config, s.existing)
}

// Problems lists everything preventing a submission.
func (s *Session) Problems() field.ErrorList {
	errs := validation.ValidateBasic(s.config, s.existing)
	if s.config.Start.UseBuilder() {
		errs = append(errs, validation.Explain(s.config)...)
	}
	return errs
}

// CanProceed reports whether the given step is complete.
func (s *Session) CanProceed(step Step) bool {
	return len(s.stepErrors(step)) == 0
}

func (s *Session) stepErrors(step Step) field.ErrorList {
	switch step {
	case StepStart:
		var errs field.ErrorList
		for _, e := range validation.ValidateBasic(s.config, s.existing) {
			if strings.HasPrefix(e.Field, "start.") {
				errs = append(errs, e)
			}
		}
		return errs
	case StepBasic:
		return validation.ValidateBasic(s.config, s.existing)
	case StepFeatures:
		if !validation.AllFeaturesValid(s.config) {
			return validation.Explain(s.config)
		}
	case StepReview:
		if errs := validation.ValidateBasic(s.config, s.existing); len(errs) > 0 {
			return errs
		}
		if s.config.Start.UseBuilder() && !validation.AllFeaturesValid(s.config) {
			return validation.Explain(s.config)
		}
	}
	return nil
}

// Next moves to the following step when the current one is complete. Sessions pasting a raw
// document go from Start straight to Review.
func (s *Session) Next() error {
	if errs := s.stepErrors(s.step); len(errs) > 0 {
		s.log.V(1).Info("Step incomplete", "step", s.step.String(), "errors", len(errs))
		return &IncompleteStepError{Step: s.step, Errors: errs}
	}
	switch {
	case s.step == StepReview:
		return nil
	case s.step == StepStart && !s.config.Start.UseBuilder():
		s.step = StepReview
	default:
		s.step++
	}
	s.log.V(1).Info("Moved to step", "step", s.step.String())
	return nil
}

// Back moves to the previous step. Fields are never reset. It returns false on the first step.
func (s *Session) Back() bool {
	switch {
	case s.step == StepStart:
		return false
	case s.step == StepReview && !s.config.Start.UseBuilder():
		s.step = StepStart
	default:
		s.step--
	}
	s.log.V(1).Info("Moved to step", "step", s.step.String())
	return true
}

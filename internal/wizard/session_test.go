package wizard

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/hazelcast/cache-config-engine/api/v1alpha1"
)

var _ = Describe("Wizard session", func() {
	var s *Session

	BeforeEach(func() {
		s = NewSession(testLogger())
	})

	Context("Indexed feature", func() {
		It("should become valid once an entity is indexed", func() {
			s.SetEncoding(v1alpha1.EncodingProtobuf)
			s.SelectFeature(v1alpha1.FeatureIndexed)
			Expect(s.AllFeaturesValid()).Should(BeFalse())

			s.UpdateIndexed(func(i *v1alpha1.IndexedCache) {
				i.IndexedEntities = append(i.IndexedEntities, "library.Book")
			})
			Expect(s.AllFeaturesValid()).Should(BeTrue())
		})

		It("should follow the encoding", func() {
			s.SelectFeature(v1alpha1.FeatureIndexed)
			s.UpdateIndexed(func(i *v1alpha1.IndexedCache) { i.IndexedEntities = []string{"library.Book"} })
			Expect(s.AllFeaturesValid()).Should(BeTrue())

			s.SetEncoding(v1alpha1.EncodingJSON)
			Expect(s.AllFeaturesValid()).Should(BeFalse())
			Expect(s.Explain()).Should(HaveLen(1))
			Expect(s.Explain()[0].Field).Should(Equal("basic.encoding"))
		})
	})

	Context("Transactional feature", func() {
		It("should become valid when switching to synchronous replication", func() {
			s.SetEncoding(v1alpha1.EncodingProtobuf)
			s.SelectFeature(v1alpha1.FeatureTransactional)
			s.SetMode(v1alpha1.CacheModeAsync)
			Expect(s.Configuration().Feature.TransactionalCache.Valid).Should(BeFalse())

			s.SetMode(v1alpha1.CacheModeSync)
			Expect(s.Configuration().Feature.TransactionalCache.Valid).Should(BeTrue())
			Expect(s.AllFeaturesValid()).Should(BeTrue())
		})
	})

	Context("Feature selection", func() {
		It("should keep fields of a deselected feature", func() {
			s.SelectFeature(v1alpha1.FeatureAuthorization)
			s.UpdateSecured(func(sc *v1alpha1.SecuredCache) { sc.Roles = []string{"admin"} })
			s.DeselectFeature(v1alpha1.FeatureAuthorization)
			Expect(s.Configuration().Feature.Selected).Should(BeEmpty())

			s.SelectFeature(v1alpha1.FeatureAuthorization)
			Expect(s.Configuration().Feature.SecuredCache.Roles).Should(Equal([]string{"admin"}))
			Expect(s.AllFeaturesValid()).Should(BeTrue())
		})

		It("should ignore invalid unselected features", func() {
			s.UpdateBackups(func(b *v1alpha1.BackupsCache) { b.Sites = nil })
			Expect(s.Configuration().Feature.BackupsCache.Valid).Should(BeFalse())
			Expect(s.AllFeaturesValid()).Should(BeTrue())
		})
	})

	Context("Content type options", func() {
		It("should be derived from the encoding", func() {
			s.SetEncoding(v1alpha1.EncodingProtobuf)
			Expect(s.ContentTypeOptions()).Should(HaveLen(16))

			s.SetEncoding(v1alpha1.EncodingJSON)
			Expect(s.ContentTypeOptions()).Should(Equal([]v1alpha1.ContentType{v1alpha1.ContentTypeJSON}))

			s.SetKeyValueEncoding(v1alpha1.EncodingText, v1alpha1.EncodingJava)
			Expect(s.KeyContentTypeOptions()).Should(Equal([]v1alpha1.ContentType{v1alpha1.ContentTypeString}))
			Expect(s.ValueContentTypeOptions()).Should(HaveLen(7))
		})
	})

	Context("Steps", func() {
		It("should not leave the start step without a name", func() {
			err := s.Next()
			var incomplete *IncompleteStepError
			Expect(errors.As(err, &incomplete)).Should(BeTrue())
			Expect(incomplete.Step).Should(Equal(StepStart))
			Expect(s.Step()).Should(Equal(StepStart))
		})

		It("should reject a name already used on the cluster", func() {
			s.SetExistingNames([]string{"books"})
			s.SetName("books")
			Expect(s.CanProceed(StepStart)).Should(BeFalse())

			s.SetName("authors")
			Expect(s.CanProceed(StepStart)).Should(BeTrue())
		})

		It("should walk through every step and back without resetting fields", func() {
			s.SetName("books")
			Expect(s.Next()).Should(Succeed())
			Expect(s.Step()).Should(Equal(StepBasic))

			s.SetNumberOfOwners(3)
			Expect(s.Next()).Should(Succeed())
			Expect(s.Step()).Should(Equal(StepFeatures))

			s.SelectFeature(v1alpha1.FeatureBounded)
			Expect(s.Next()).ShouldNot(Succeed())
			s.UpdateBounded(func(b *v1alpha1.BoundedCache) {
				b.EvictionType = v1alpha1.EvictionTypeCount
				b.MaxCount = 1000
			})
			Expect(s.Next()).Should(Succeed())
			Expect(s.Step()).Should(Equal(StepAdvanced))
			Expect(s.Next()).Should(Succeed())
			Expect(s.Step()).Should(Equal(StepReview))
			Expect(s.CanSubmit()).Should(BeTrue())

			Expect(s.Back()).Should(BeTrue())
			Expect(s.Back()).Should(BeTrue())
			Expect(s.Back()).Should(BeTrue())
			Expect(s.Step()).Should(Equal(StepBasic))
			Expect(s.Configuration().Basic.NumberOfOwners).Should(Equal(int32(3)))
			Expect(s.Configuration().Feature.BoundedCache.MaxCount).Should(Equal(int64(1000)))

			Expect(s.Back()).Should(BeTrue())
			Expect(s.Back()).Should(BeFalse())
		})

		It("should go straight to review when pasting a document", func() {
			s.SetName("books")
			s.SetCreateMode(v1alpha1.CreateModeEditor)
			Expect(s.Next()).ShouldNot(Succeed())

			s.SetDocument(`{"local-cache":{}}`)
			Expect(s.Next()).Should(Succeed())
			Expect(s.Step()).Should(Equal(StepReview))
			Expect(s.CanSubmit()).Should(BeTrue())

			Expect(s.Back()).Should(BeTrue())
			Expect(s.Step()).Should(Equal(StepStart))
		})
	})

	Context("Edit session", func() {
		It("should start from a decompiled configuration and be replaced on reload", func() {
			editable := &v1alpha1.EditableConfig{
				Name:  "books",
				Basic: v1alpha1.BasicConfig{Topology: v1alpha1.CacheTypeReplicated, Mode: v1alpha1.CacheModeSync, Encoding: v1alpha1.EncodingProtobuf},
				Feature: v1alpha1.FeatureConfig{
					Selected:     []v1alpha1.FeatureName{v1alpha1.FeatureIndexed},
					IndexedCache: v1alpha1.IndexedCache{IndexedEntities: []string{"library.Book"}},
				},
			}
			e := FromEditable(testLogger(), editable)
			Expect(e.Configuration().Start.Name).Should(Equal("books"))
			Expect(e.AllFeaturesValid()).Should(BeTrue())

			e.UpdateIndexed(func(i *v1alpha1.IndexedCache) { i.IndexedEntities = nil })
			Expect(editable.Feature.IndexedCache.IndexedEntities).Should(HaveLen(1))
			Expect(e.AllFeaturesValid()).Should(BeFalse())

			e.Replace(editable)
			Expect(e.AllFeaturesValid()).Should(BeTrue())
		})
	})

	Context("Resumed session", func() {
		It("should recompute validity without sharing the saved configuration", func() {
			saved := &v1alpha1.CacheConfiguration{
				Start: v1alpha1.StartConfig{Name: "books"},
				Basic: v1alpha1.BasicConfig{Topology: v1alpha1.CacheTypeLocal, Mode: v1alpha1.CacheModeSync},
				Feature: v1alpha1.FeatureConfig{
					Selected:     []v1alpha1.FeatureName{v1alpha1.FeatureAuthorization},
					SecuredCache: v1alpha1.SecuredCache{Roles: []string{"admin"}},
				},
			}
			r := Resume(testLogger(), saved)
			Expect(saved.Feature.SecuredCache.Valid).Should(BeFalse())
			Expect(r.AllFeaturesValid()).Should(BeTrue())
			Expect(r.CanSubmit()).Should(BeTrue())

			r.UpdateSecured(func(sc *v1alpha1.SecuredCache) { sc.Roles[0] = "reader" })
			Expect(saved.Feature.SecuredCache.Roles).Should(Equal([]string{"admin"}))
		})

		It("should start a new wizard without a saved configuration", func() {
			r := Resume(testLogger(), nil)
			Expect(r.Step()).Should(Equal(StepStart))
			Expect(r.Configuration().Basic.Topology).Should(Equal(v1alpha1.CacheTypeDistributed))
		})
	})
})

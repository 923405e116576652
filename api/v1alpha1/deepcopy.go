package v1alpha1

// DeepCopyInto copies the receiver into out. in must be non-nil.
func (in *BackupsCache) DeepCopyInto(out *BackupsCache) {
	*out = *in
	if in.Sites != nil {
		in, out := &in.Sites, &out.Sites
		*out = make([]BackupSite, len(*in))
		copy(*out, *in)
	}
}

// DeepCopy creates a new BackupsCache.
func (in *BackupsCache) DeepCopy() *BackupsCache {
	if in == nil {
		return nil
	}
	out := new(BackupsCache)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyInto copies the receiver into out. in must be non-nil.
func (in *FeatureConfig) DeepCopyInto(out *FeatureConfig) {
	*out = *in
	if in.Selected != nil {
		in, out := &in.Selected, &out.Selected
		*out = make([]FeatureName, len(*in))
		copy(*out, *in)
	}
	if in.IndexedCache.IndexedEntities != nil {
		in, out := &in.IndexedCache.IndexedEntities, &out.IndexedCache.IndexedEntities
		*out = make([]string, len(*in))
		copy(*out, *in)
	}
	if in.SecuredCache.Roles != nil {
		in, out := &in.SecuredCache.Roles, &out.SecuredCache.Roles
		*out = make([]string, len(*in))
		copy(*out, *in)
	}
	in.BackupsCache.DeepCopyInto(&out.BackupsCache)
}

// DeepCopy creates a new FeatureConfig.
func (in *FeatureConfig) DeepCopy() *FeatureConfig {
	if in == nil {
		return nil
	}
	out := new(FeatureConfig)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyInto copies the receiver into out. in must be non-nil.
func (in *TracingConfig) DeepCopyInto(out *TracingConfig) {
	*out = *in
	if in.Categories != nil {
		in, out := &in.Categories, &out.Categories
		*out = make([]TracingCategory, len(*in))
		copy(*out, *in)
	}
}

// DeepCopyInto copies the receiver into out. in must be non-nil.
func (in *AdvancedConfig) DeepCopyInto(out *AdvancedConfig) {
	*out = *in
	in.Tracing.DeepCopyInto(&out.Tracing)
}

// DeepCopy creates a new AdvancedConfig.
func (in *AdvancedConfig) DeepCopy() *AdvancedConfig {
	if in == nil {
		return nil
	}
	out := new(AdvancedConfig)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyInto copies the receiver into out. in must be non-nil.
func (in *CacheConfiguration) DeepCopyInto(out *CacheConfiguration) {
	*out = *in
	in.Feature.DeepCopyInto(&out.Feature)
	in.Advanced.DeepCopyInto(&out.Advanced)
}

// DeepCopy creates a new CacheConfiguration.
func (in *CacheConfiguration) DeepCopy() *CacheConfiguration {
	if in == nil {
		return nil
	}
	out := new(CacheConfiguration)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyInto copies the receiver into out. in must be non-nil.
func (in *EditableConfig) DeepCopyInto(out *EditableConfig) {
	*out = *in
	in.Feature.DeepCopyInto(&out.Feature)
	in.Advanced.DeepCopyInto(&out.Advanced)
}

// DeepCopy creates a new EditableConfig.
func (in *EditableConfig) DeepCopy() *EditableConfig {
	if in == nil {
		return nil
	}
	out := new(EditableConfig)
	in.DeepCopyInto(out)
	return out
}

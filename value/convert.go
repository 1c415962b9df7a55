package value

// ShallowConvertFunc resolves a Pointer-kind Value to the underlying Value
// it stands for, without recursing into nested structures. The field
// matcher applies this to every record lookup result of Pointer kind,
// mirroring literal_matcher.c's shallow_convert hook.
type ShallowConvertFunc func(ptr any) *Value

// DeepConvertFunc recursively converts an entire host value (arbitrary
// nested maps/slices/scalars) into a Value tree in one call. The registry
// stores it (registry.SetDeepConvert); nothing in this module calls it, and
// the encoding package builds its Values directly.
type DeepConvertFunc func(in any) *Value

// RecoverFunc reconstructs a host-native value from a Value, the inverse of
// DeepConvertFunc, used when a host needs a matched record back in its own
// representation (for example, to log or re-serialize it).
type RecoverFunc func(v *Value) any

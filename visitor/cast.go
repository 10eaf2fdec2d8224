package visitor

import "github.com/hupe1980/visitmesh/typeid"

// Cast attempts to view target as a mutable T. It returns the T sub-object's
// address on a match and nil otherwise; it never fails loudly. The mechanism
// is a one-shot recursive visitor whose only capability is T.
func Cast[T any](target Visitable) *T {
	var result *T
	v := NewRecursive(Recurse[T](func(t *T) (bool, error) {
		result = t
		return true, nil
	}))
	// The handler never errors and a non-match is silent success.
	_ = defaultEngine.DispatchRecursive(target, v)
	return result
}

// CastRef is the failing form of Cast: it returns IncompatibleVisitorError
// (carrying the target type's name) when target has no T ancestor.
func CastRef[T any](target Visitable) (*T, error) {
	if t := Cast[T](target); t != nil {
		return t, nil
	}
	return nil, NewIncompatibleVisitorError(typeid.Name[T]())
}

// CastReadOnly attempts to view target as a read-only T. Only the read-only
// ancestor table is probed, so a mutable-only declaration never matches.
func CastReadOnly[T any](target Visitable) *T {
	var result *T
	v := NewRecursive(RecurseReadOnly[T](func(t *T) (bool, error) {
		result = t
		return true, nil
	}))
	_ = defaultEngine.DispatchRecursiveReadOnly(target, v)
	return result
}

// CastRefReadOnly is the failing form of CastReadOnly.
func CastRefReadOnly[T any](target Visitable) (*T, error) {
	if t := CastReadOnly[T](target); t != nil {
		return t, nil
	}
	return nil, NewIncompatibleVisitorError(typeid.Name[T]())
}

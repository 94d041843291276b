package util

// Must takes a function call's return tuple, whose last element is an error,
// and panics if the error is not nil.  Upon no error, it returns the tuple
// minus the error element at the end.
func Must[R any](r R, err error) R {
	if err != nil {
		panic(err)
	}
	return r
}

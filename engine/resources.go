package engine

// Disposable is a resource with explicit release
type Disposable interface {
	Dispose()
}

// ResourceSet owns disposables created during a mount and releases them in reverse order
type ResourceSet struct {
	items []Disposable
}

// Track registers a resource and returns it for inline use
func Track[T Disposable](s *ResourceSet, d T) T {
	s.items = append(s.items, d)
	return d
}

// Release disposes every tracked resource, last tracked first, and empties the set
func (s *ResourceSet) Release() int {
	n := len(s.items)
	for i := n - 1; i >= 0; i-- {
		s.items[i].Dispose()
		s.items[i] = nil
	}
	s.items = s.items[:0]
	return n
}

// Len returns the number of live resources
func (s *ResourceSet) Len() int {
	return len(s.items)
}

// DisposeFunc adapts a plain function to Disposable
type DisposeFunc func()

func (f DisposeFunc) Dispose() {
	f()
}

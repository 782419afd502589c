package toolcall

// Step is one hop into a decoded JSON tree. ok is false when the hop cannot
// be taken, which ends the walk.
type Step func(node any) (next any, ok bool)

// Key steps into an object member.
func Key(name string) Step {
	return func(node any) (any, bool) {
		obj, ok := node.(map[string]any)
		if !ok {
			return nil, false
		}
		next, ok := obj[name]
		if !ok || next == nil {
			return nil, false
		}
		return next, true
	}
}

// Index steps into an array element.
func Index(i int) Step {
	return func(node any) (any, bool) {
		arr, ok := node.([]any)
		if !ok || i < 0 || i >= len(arr) || arr[i] == nil {
			return nil, false
		}
		return arr[i], true
	}
}

// Walk applies steps in order and reports whether every hop succeeded.
func Walk(root any, steps ...Step) (any, bool) {
	node := root
	for _, step := range steps {
		next, ok := step(node)
		if !ok {
			return nil, false
		}
		node = next
	}
	return node, true
}

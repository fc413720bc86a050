package plugin

// Resolve computes an application order for the requested names: every
// plugin appears after all of its transitive dependencies and each name
// appears at most once. Names unknown to the registry are skipped here;
// reporting them is the caller's concern. A dependency cycle reachable
// from a requested name fails with a CycleError naming the re-entered
// plugin; the check distinguishes names on the current traversal path
// from names already fully resolved, so shared dependencies do not
// trigger false cycles.
func (r *Registry) Resolve(requested []string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	done := make(map[string]bool, len(requested))
	onPath := make(map[string]bool, len(requested))
	order := make([]string, 0, len(requested))

	var visit func(name string, path []string) error
	visit = func(name string, path []string) error {
		if done[name] {
			return nil
		}
		if onPath[name] {
			return &CycleError{Name: name, Path: append(path, name)}
		}
		p, ok := r.plugins[name]
		if !ok {
			return nil
		}

		onPath[name] = true
		for _, dep := range p.Dependencies() {
			if err := visit(dep, append(path, name)); err != nil {
				return err
			}
		}
		delete(onPath, name)

		done[name] = true
		order = append(order, name)
		return nil
	}

	for _, name := range requested {
		if err := visit(name, nil); err != nil {
			return nil, err
		}
	}
	return order, nil
}

// ValidateDependencies checks that the named plugin and all of its
// transitive dependencies are registered. It is a pure check, invocable
// independently of ordering, for fail-fast diagnostics before any Apply
// runs. Traversal tracks visited names so cyclic graphs terminate.
func (r *Registry) ValidateDependencies(name string) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	root, ok := r.plugins[name]
	if !ok {
		return &NotFoundError{Name: name}
	}

	visited := map[string]bool{name: true}
	stack := []Plugin{root}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, dep := range p.Dependencies() {
			if visited[dep] {
				continue
			}
			visited[dep] = true
			next, ok := r.plugins[dep]
			if !ok {
				return &MissingDependencyError{Plugin: p.Name(), Dependency: dep}
			}
			stack = append(stack, next)
		}
	}
	return nil
}

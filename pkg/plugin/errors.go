package plugin

import (
	"fmt"
	"strings"
)

// DuplicateError reports an attempt to register a name that is already
// taken. The registry is left unchanged.
type DuplicateError struct {
	Name string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("plugin: %q already registered", e.Name)
}

// NotFoundError reports a lookup for an unregistered plugin name.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("plugin: %q not registered", e.Name)
}

// CycleError reports a dependency cycle discovered during resolution.
// Path holds the traversal chain ending at the re-entered name.
type CycleError struct {
	Name string
	Path []string
}

func (e *CycleError) Error() string {
	if len(e.Path) == 0 {
		return fmt.Sprintf("plugin: dependency cycle involving %q", e.Name)
	}
	return fmt.Sprintf("plugin: dependency cycle involving %q (%s)", e.Name, strings.Join(e.Path, " -> "))
}

// MissingDependencyError reports a dependency name that no registered
// plugin carries. An ordering computed over a graph with missing edges is
// meaningless, so this is always fatal.
type MissingDependencyError struct {
	Plugin     string
	Dependency string
}

func (e *MissingDependencyError) Error() string {
	return fmt.Sprintf("plugin: %q depends on %q, which is not registered", e.Plugin, e.Dependency)
}

package template

import "fmt"

// FetchError reports a failure retrieving or preparing a template. It is
// always fatal to the run.
type FetchError struct {
	Template string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("template: fetch %q: %v", e.Template, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// NotFoundError reports a request for a path the template does not
// contain.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("template: file %q not found", e.Path)
}

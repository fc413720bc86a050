package template

import "context"

// Source produces a template's file tree. Load prepares the template
// (clone, stat, unpack); Files enumerates relative forward-slash paths
// and may be called repeatedly; Content returns the raw bytes of one
// file. Cleanup releases any staging resources and is best-effort:
// callers log its error rather than propagate it.
type Source interface {
	Load(ctx context.Context) error
	Files(ctx context.Context) ([]string, error)
	Content(ctx context.Context, path string) ([]byte, error)
	Cleanup() error
}

// Package template exposes the public contracts for template retrieval:
// the Source interface, its typed failure modes, and the optional
// scaffold.yaml manifest. Concrete sources (directory, fs.FS, git) live
// under internal/source to keep retrieval mechanics hidden from
// consumers.
package template

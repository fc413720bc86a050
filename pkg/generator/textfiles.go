package generator

import (
	"path"
	"strings"
)

// textExtensions lists extensions whose content goes through the
// placeholder engine. Anything not matched here or in wellKnownNames is
// copied verbatim as binary.
var textExtensions = map[string]bool{
	".bat":        true,
	".c":          true,
	".cfg":        true,
	".conf":       true,
	".cpp":        true,
	".css":        true,
	".csv":        true,
	".env":        true,
	".go":         true,
	".gradle":     true,
	".groovy":     true,
	".h":          true,
	".hpp":        true,
	".html":       true,
	".ini":        true,
	".java":       true,
	".js":         true,
	".json":       true,
	".jsx":        true,
	".kt":         true,
	".kts":        true,
	".md":         true,
	".mod":        true,
	".properties": true,
	".proto":      true,
	".ps1":        true,
	".py":         true,
	".rb":         true,
	".rs":         true,
	".scss":       true,
	".sh":         true,
	".sql":        true,
	".sum":        true,
	".svg":        true,
	".toml":       true,
	".ts":         true,
	".tsx":        true,
	".txt":        true,
	".xml":        true,
	".yaml":       true,
	".yml":        true,
}

// wellKnownNames lists extensionless (or dotfile) basenames that are
// textual: build, ignore, readme and license files.
var wellKnownNames = map[string]bool{
	".dockerignore":  true,
	".editorconfig":  true,
	".env":           true,
	".gitattributes": true,
	".gitignore":     true,
	".npmrc":         true,
	".nvmrc":         true,
	"AUTHORS":        true,
	"CHANGELOG":      true,
	"Dockerfile":     true,
	"Gemfile":        true,
	"Jenkinsfile":    true,
	"LICENSE":        true,
	"Makefile":       true,
	"NOTICE":         true,
	"Procfile":       true,
	"README":         true,
	"Vagrantfile":    true,
}

// IsTextFile classifies a forward-slash relative path as text or binary
// using the static tables above.
func IsTextFile(relPath string) bool {
	base := path.Base(relPath)
	if wellKnownNames[base] {
		return true
	}
	ext := strings.ToLower(path.Ext(base))
	if ext == "" || ext == base {
		return false
	}
	return textExtensions[ext]
}

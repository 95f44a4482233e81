package domain

import (
	"path/filepath"
	"regexp"
	"strings"
)

// GitStatusClean is the status reported for a repository with no pending
// changes; any other value is appended to notification messages.
const GitStatusClean = "clean"

// ProjectContext describes the working repository a hook event came from
type ProjectContext struct {
	Name      string
	Branch    string
	GitStatus string
}

// Dirty reports whether the repository has uncommitted changes
func (p ProjectContext) Dirty() bool {
	return p.GitStatus != "" && p.GitStatus != GitStatusClean
}

var projectSanitizer = regexp.MustCompile(`[^a-zA-Z0-9 ._-]`)

// ProjectName derives a project name from the event's working directory
func ProjectName(cwd string) string {
	name := filepath.Base(cwd)
	if name == "" || name == "." || name == "/" {
		name = "claude"
	}
	return strings.TrimSpace(projectSanitizer.ReplaceAllString(name, ""))
}

// ProjectTitle is the human-facing project name used in notification titles
func ProjectTitle(name string) string {
	if name == "" {
		return "Claude"
	}
	return name
}

// ProjectTag is the ntfy tag identifying the project. Tags are plain
// lowercase identifiers, so spaces and dots collapse to dashes.
func ProjectTag(name string) string {
	tag := strings.ToLower(name)
	tag = strings.NewReplacer(" ", "-", ".", "-").Replace(tag)
	tag = strings.Trim(tag, "-")
	if tag == "" {
		return "claude"
	}
	return tag
}

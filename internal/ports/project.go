package ports

import (
	"context"

	"toasty/internal/domain"
)

// ProjectReader reads repository context for the directory a hook fired in
type ProjectReader interface {
	// Read returns the project context for cwd. Non-git directories are not
	// an error; they report a clean status.
	Read(ctx context.Context, cwd string) (domain.ProjectContext, error)
}

// Package git reads repository context for the directory a hook fired in.
package git

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"toasty/internal/domain"
	"toasty/internal/logging"
	"toasty/internal/ports"
)

const commandTimeout = 5 * time.Second

// Reader implements ports.ProjectReader using the git CLI
type Reader struct{}

var _ ports.ProjectReader = (*Reader)(nil)

// NewReader creates a new Reader
func NewReader() *Reader {
	return &Reader{}
}

// Read fetches status and branch concurrently. Failures of individual git
// commands are non-fatal: a directory without git reports a clean status so
// notifications degrade instead of breaking.
func (r *Reader) Read(ctx context.Context, cwd string) (domain.ProjectContext, error) {
	pc := domain.ProjectContext{
		Name:      domain.ProjectName(cwd),
		GitStatus: domain.GitStatusClean,
	}

	if cwd == "" {
		return pc, nil
	}

	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		status, err := getStatus(ctx, cwd)
		if err != nil {
			logging.Logger.Debug("Failed to get git status", "cwd", cwd, "error", err)
			return nil
		}
		pc.GitStatus = status
		return nil
	})

	g.Go(func() error {
		branch, err := getBranch(ctx, cwd)
		if err != nil {
			logging.Logger.Debug("Failed to get git branch", "cwd", cwd, "error", err)
			return nil
		}
		pc.Branch = branch
		return nil
	})

	if err := g.Wait(); err != nil {
		return pc, err
	}

	logging.Logger.Debug("Project context read",
		"name", pc.Name,
		"branch", pc.Branch,
		"status", pc.GitStatus)

	return pc, nil
}

// getStatus returns "clean" or a short dirty-state description
func getStatus(ctx context.Context, path string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "status", "--porcelain")
	cmd.Dir = path

	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git status failed: %w", err)
	}

	return summarizeStatus(string(output)), nil
}

// summarizeStatus turns porcelain output into the status string used in
// notification messages
func summarizeStatus(porcelain string) string {
	var count int
	for _, line := range strings.Split(strings.TrimSpace(porcelain), "\n") {
		if line != "" {
			count++
		}
	}

	if count == 0 {
		return domain.GitStatusClean
	}
	if count == 1 {
		return "1 file changed"
	}
	return fmt.Sprintf("%d files changed", count)
}

// getBranch returns the current branch name
func getBranch(ctx context.Context, path string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "rev-parse", "--abbrev-ref", "HEAD")
	cmd.Dir = path

	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git rev-parse failed: %w", err)
	}

	return strings.TrimSpace(string(output)), nil
}

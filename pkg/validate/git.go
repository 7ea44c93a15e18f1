package validate

import (
	"context"
	"strings"

	"github.com/arthur-debert/dotctl/pkg/errors"
	"github.com/arthur-debert/dotctl/pkg/executor"
	"github.com/arthur-debert/dotctl/pkg/types"
)

// git answers tracking questions about the checkout
type git struct {
	dir       string
	commander types.Commander

	files   []string
	fetched bool
}

func (g *git) run(ctx context.Context, args ...string) (string, int, error) {
	return executor.Output(ctx, g.commander, types.Command{Name: "git", Args: args, Dir: g.dir})
}

// Tracked reports whether path is in the index
func (g *git) Tracked(ctx context.Context, path string) bool {
	_, code, err := g.run(ctx, "ls-files", "--error-unmatch", "--", path)
	return err == nil && code == 0
}

// Ignored reports whether path matches an ignore rule
func (g *git) Ignored(ctx context.Context, path string) bool {
	_, code, err := g.run(ctx, "check-ignore", "-q", "--", path)
	return err == nil && code == 0
}

// Files lists tracked files. Outside a repository the list is empty. The
// result is cached for the lifetime of the run.
func (g *git) Files(ctx context.Context) ([]string, error) {
	if g.fetched {
		return g.files, nil
	}
	out, code, err := g.run(ctx, "ls-files", "-z")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrValidation, "failed to run git ls-files")
	}
	g.fetched = true
	if code != 0 {
		return nil, nil
	}
	for _, name := range strings.Split(out, "\x00") {
		if name != "" {
			g.files = append(g.files, name)
		}
	}
	return g.files, nil
}

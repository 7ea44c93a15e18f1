package validate

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/dotctl/pkg/types"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"github.com/tidwall/jsonc"
)

// DotterDir holds dotter's configuration inside the checkout
const DotterDir = ".dotter"

// checkout is what rules inspect
type checkout struct {
	dir     string
	fs      types.FS
	git     *git
	configs []string
	jsonc   []string
	logger  zerolog.Logger
}

func (c *checkout) path(rel string) string {
	return filepath.Join(c.dir, rel)
}

// rule is one validation check
type rule func(ctx context.Context, c *checkout) (Result, error)

var rules = []rule{
	dotterConfigsExist,
	dotterFilesTracked,
	noBrokenSymlinks,
	tomlFilesValid,
	jsonFilesValid,
}

// dotterConfigsExist requires the first configured dotter file, global.toml
// by default
func dotterConfigsExist(_ context.Context, c *checkout) (Result, error) {
	var issues []Issue
	if len(c.configs) > 0 {
		path := c.path(filepath.Join(DotterDir, c.configs[0]))
		if _, err := c.fs.Stat(path); err != nil {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Message:  fmt.Sprintf("Dotter %s not found", c.configs[0]),
				File:     path,
			})
		}
	}
	return newResult("Dotter configuration files exist", issues), nil
}

// dotterFiles collects the source paths of every [<package>.files] table
func dotterFiles(c *checkout) ([]string, []Issue) {
	var issues []Issue
	seen := make(map[string]bool)

	for _, name := range c.configs {
		path := c.path(filepath.Join(DotterDir, name))
		data, err := c.fs.ReadFile(path)
		if err != nil {
			continue
		}

		var doc map[string]interface{}
		if err := toml.Unmarshal(data, &doc); err != nil {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Message:  fmt.Sprintf("Cannot parse dotter config: %s", name),
				File:     filepath.Join(DotterDir, name),
				Detail:   err.Error(),
			})
			continue
		}

		for _, value := range doc {
			pkg, ok := value.(map[string]interface{})
			if !ok {
				continue
			}
			files, ok := pkg["files"].(map[string]interface{})
			if !ok {
				continue
			}
			for source := range files {
				seen[source] = true
			}
		}
	}

	sources := make([]string, 0, len(seen))
	for s := range seen {
		sources = append(sources, s)
	}
	sort.Strings(sources)
	return sources, issues
}

func dotterFilesTracked(ctx context.Context, c *checkout) (Result, error) {
	sources, issues := dotterFiles(c)
	c.logger.Info().Int("files", len(sources)).Msg("Found files referenced in dotter configs")

	for _, source := range sources {
		if _, err := c.fs.Stat(c.path(source)); err != nil {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Message:  "File missing: " + source,
				File:     source,
			})
			continue
		}

		if c.git.Tracked(ctx, source) {
			continue
		}
		if c.git.Ignored(ctx, source) {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Message:  "File ignored by git: " + source,
				File:     source,
				Fix:      "Add to .gitignore: !" + source,
				FixKind:  FixGitignore,
			})
			continue
		}
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Message:  "File not tracked: " + source,
			File:     source,
			Fix:      "Run: git add " + source,
			FixKind:  FixGitAdd,
		})
	}

	return newResult("Dotter files exist and are tracked", issues), nil
}

func noBrokenSymlinks(ctx context.Context, c *checkout) (Result, error) {
	tracked, err := c.git.Files(ctx)
	if err != nil {
		return Result{}, err
	}

	var issues []Issue
	for _, file := range tracked {
		path := c.path(file)
		info, err := c.fs.Lstat(path)
		if err != nil || info.Mode()&os.ModeSymlink == 0 {
			continue
		}
		if _, err := c.fs.Stat(path); err != nil {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Message:  "Broken symlink: " + file,
				File:     file,
			})
		}
	}
	return newResult("No broken symlinks", issues), nil
}

func tomlFilesValid(ctx context.Context, c *checkout) (Result, error) {
	tracked, err := c.git.Files(ctx)
	if err != nil {
		return Result{}, err
	}

	var files []string
	for _, f := range tracked {
		if strings.HasSuffix(f, ".toml") {
			files = append(files, f)
		}
	}

	var issues []Issue
	for _, file := range files {
		data, err := c.fs.ReadFile(c.path(file))
		if err != nil {
			continue
		}
		var doc map[string]interface{}
		if err := toml.Unmarshal(data, &doc); err != nil {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Message:  "Invalid TOML syntax: " + file,
				File:     file,
				Detail:   err.Error(),
			})
		}
	}
	return newResult(fmt.Sprintf("All %d TOML files are valid", len(files)), issues), nil
}

// allowsComments reports whether a JSON file is parsed as JSON with comments
func (c *checkout) allowsComments(file string) bool {
	if strings.HasSuffix(file, ".jsonc") {
		return true
	}
	rooted := "/" + file
	for _, fragment := range c.jsonc {
		if fragment != "" && strings.Contains(rooted, fragment) {
			return true
		}
	}
	return false
}

func jsonFilesValid(ctx context.Context, c *checkout) (Result, error) {
	tracked, err := c.git.Files(ctx)
	if err != nil {
		return Result{}, err
	}

	var files []string
	for _, f := range tracked {
		if strings.HasSuffix(f, ".json") || strings.HasSuffix(f, ".jsonc") {
			files = append(files, f)
		}
	}

	var issues []Issue
	for _, file := range files {
		data, err := c.fs.ReadFile(c.path(file))
		if err != nil {
			continue
		}
		if c.allowsComments(file) {
			data = jsonc.ToJSON(data)
		}
		var v interface{}
		if err := json.Unmarshal(data, &v); err != nil {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Message:  "Invalid JSON syntax: " + file,
				File:     file,
				Detail:   err.Error(),
			})
		}
	}
	return newResult(fmt.Sprintf("All %d JSON files are valid", len(files)), issues), nil
}

package recipes

import (
	"sort"

	"github.com/arthur-debert/dotctl/pkg/config"
	"github.com/arthur-debert/dotctl/pkg/errors"
	"github.com/arthur-debert/dotctl/pkg/registry"
)

// Directory keywords for Recipe.Dir
const (
	DirDotfiles = "dotfiles"
	DirConfig   = "config"
	DirCurrent  = "."
)

// Recipe is a named list of shell lines
type Recipe struct {
	Name        string
	Description string
	Aliases     []string
	Run         []string
	Dir         string
	Env         map[string]string
}

// Book is the set of known recipes
type Book struct {
	reg registry.Registry[Recipe]
}

// NewBook registers recipes and their aliases
func NewBook(recipes ...Recipe) (*Book, error) {
	b := &Book{reg: registry.New[Recipe]()}
	for _, r := range recipes {
		if len(r.Run) == 0 {
			return nil, errors.Newf(errors.ErrRecipeInvalid, "recipe %q has no commands", r.Name)
		}
		if err := b.reg.Register(r.Name, r); err != nil {
			return nil, errors.Wrapf(err, errors.ErrRecipeInvalid, "cannot register recipe %q", r.Name)
		}
	}
	for _, r := range recipes {
		for _, alias := range r.Aliases {
			if err := b.reg.Alias(alias, r.Name); err != nil {
				return nil, errors.Wrapf(err, errors.ErrRecipeInvalid, "cannot alias recipe %q", r.Name)
			}
		}
	}
	return b, nil
}

// FromConfig builds a book from the recipes table of the configuration
func FromConfig(cfg map[string]config.RecipeConfig) (*Book, error) {
	names := make([]string, 0, len(cfg))
	for name := range cfg {
		names = append(names, name)
	}
	sort.Strings(names)

	recipes := make([]Recipe, 0, len(names))
	for _, name := range names {
		rc := cfg[name]
		recipes = append(recipes, Recipe{
			Name:        name,
			Description: rc.Description,
			Aliases:     rc.Aliases,
			Run:         rc.Run,
			Dir:         rc.Dir,
			Env:         rc.Env,
		})
	}
	return NewBook(recipes...)
}

// Lookup finds a recipe by name or alias
func (b *Book) Lookup(name string) (Recipe, bool) {
	r, err := b.reg.Get(name)
	return r, err == nil
}

// Has reports whether name or alias is known
func (b *Book) Has(name string) bool {
	return b.reg.Has(name)
}

// List returns all recipes sorted by name
func (b *Book) List() []Recipe {
	names := b.reg.List()
	out := make([]Recipe, 0, len(names))
	for _, name := range names {
		if r, err := b.reg.Get(name); err == nil {
			out = append(out, r)
		}
	}
	return out
}

// Package skills loads the library of prose skill documents kept in the
// dotfiles checkout. A skill guides an AI coding assistant through one kind
// of task (search strategy, version control workflow, documentation lookup).
//
// Skills are markdown files with optional YAML frontmatter:
//
//	---
//	name: jj-workflow
//	description: Commit and rebase with jujutsu instead of git.
//	---
//
//	# Jujutsu workflow
//	...
//
// A skill lives either in its own directory as <dir>/<name>/SKILL.md or as a
// single file <dir>/<name>.md. Without frontmatter the name comes from the
// directory or file name and the description from the first paragraph.
package skills

// Package validate checks a dotfiles checkout for the mistakes that break a
// deploy: missing dotter configuration, files referenced by dotter that are
// missing or not tracked by git, broken symlinks, and TOML or JSON files that
// do not parse.
//
// Each rule returns a Result listing its issues. Errors fail the run;
// warnings are reported but do not change the exit status. Issues can carry
// a fix suggestion, and Summarize groups them into one .gitignore snippet
// and one git add command.
package validate

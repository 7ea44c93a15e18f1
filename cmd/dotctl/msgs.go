package dotctl

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Drive a dotfiles checkout and its declarative system configuration"
	MsgPackagesShort   = "Print the composed package lists"
	MsgModulesShort    = "Print the aggregated module settings"
	MsgActivateShort   = "Run the activation steps"
	MsgRunShort        = "Run a recipe"
	MsgRecipesShort    = "List available recipes"
	MsgValidateShort   = "Validate the dotfiles checkout"
	MsgSkillsShort     = "List skill documents"
	MsgSkillsShowShort = "Render a skill document"
	MsgConfigShort     = "Print the merged configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man page"
	MsgHelpShort       = "Help about any command, recipe or skill"

	// Status messages
	MsgDryRunNotice      = "DRY RUN MODE - No changes were made"
	MsgActivationDone    = "Activation complete: %d change(s)"
	MsgActivationNoop    = "Activation complete: nothing to do"
	MsgActivationPending = "%d step(s) would make changes"
	MsgActivationFailed  = "Activation failed at %s"
	MsgNoRecipes         = "No recipes defined."
	MsgNoSkills          = "No skills found in %s"
	MsgExplainHeader     = "%s is set by:"
	MsgExplainNone       = "%s is not set by any fragment"
	MsgVersionFormat     = "dotctl %s (commit %s, built %s)\n"

	// Error messages
	MsgErrInitPaths    = "failed to initialize paths: %w"
	MsgErrLoadConfig   = "failed to load configuration: %w"
	MsgErrCompose      = "failed to compose packages: %w"
	MsgErrLoadModules  = "failed to load modules: %w"
	MsgErrActivate     = "activation failed: %w"
	MsgErrValidate     = "validation failed: %w"
	MsgErrLoadSkills   = "failed to load skills: %w"
	MsgErrInvalidShell = "invalid shell type: %s"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun     = "Preview changes without executing them"
	MsgFlagPkgFormat  = "Output format: nix, json, yaml or toml"
	MsgFlagPlatform   = "Platform to compose for (default: the running platform)"
	MsgFlagTarget     = "Only print one list: system or user"
	MsgFlagModFormat  = "Output format: toml, yaml, json or plist"
	MsgFlagPlist      = "Render the table at this key as a property list"
	MsgFlagExplain    = "Show which fragments set a key"
	MsgFlagFix        = "Print the commands that would fix the problems found"
	MsgFlagOutFormat  = "Output format: auto, terminal, text or json"
	MsgFlagWidth      = "Wrap width for rendered markdown"
	MsgFlagCfgFormat  = "Output format: toml or yaml"
	MsgFlagRecipeJSON = "Print recipes as JSON"
)

// Long messages embedded from files
var (
	//go:embed msgs/root-long.txt
	msgRootLong string

	//go:embed msgs/usage-template.txt
	msgUsageTemplate string

	//go:embed msgs/completion-long.txt
	msgCompletionLong string

	//go:embed msgs/recipes-long.txt
	msgRecipesLong string

	//go:embed msgs/validate-long.txt
	msgValidateLong string
)

// Exported long messages, trimmed
var (
	MsgRootLong       = strings.TrimSpace(msgRootLong)
	MsgUsageTemplate  = strings.TrimSpace(msgUsageTemplate) + "\n"
	MsgCompletionLong = strings.TrimSpace(msgCompletionLong)
	MsgRecipesLong    = strings.TrimSpace(msgRecipesLong)
	MsgValidateLong   = strings.TrimSpace(msgValidateLong)
)

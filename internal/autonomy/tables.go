package autonomy

// ShellExecutionCommands are programs that evaluate arbitrary shell code
// given to them as arguments; always High regardless of subcommand.
var ShellExecutionCommands = set("eval", "exec", "source", ".")

// MinimalCommands is the canonical read-only program list (spec.md §4.3).
var MinimalCommands = set(
	// file viewers
	"cat", "less", "more", "head", "tail", "bat", "tac",
	// listing
	"ls", "tree", "pwd", "dir", "cd", "pushd", "popd", "dirs",
	// search
	"grep", "egrep", "fgrep", "rg", "ag", "ack", "fd", "locate", "which", "whereis",
	// info
	"echo", "printf", "whoami", "id", "date", "cal", "uname", "hostname", "uptime",
	"type", "file", "stat", "wc", "du", "df", "free",
	// process
	"ps", "top", "htop", "pgrep",
	// env
	"env", "printenv", "set",
	// docs
	"man", "help", "info",
	// pipeline utilities
	"sort", "uniq", "cut", "awk", "sed", "tr", "column", "paste", "join", "comm", "diff", "cmp", "patch",
	// shell test
	"test", "[", "[[", "true", "false",
)

// ShortcutCommands is the hardcoded "always-allow" shortcut list used by the
// decision engine (spec.md §4.8 step 3). It is a literal subset of
// MinimalCommands (see DESIGN.md Open Question 2): the shortcut's extra
// safety comes from the caller's no-chaining-characters guard, not from a
// narrower table.
var ShortcutCommands = set(
	"ls", "pwd", "echo", "cat", "head", "tail", "wc", "which", "whoami",
	"date", "uname", "env", "printenv", "type", "file", "stat", "df", "du",
	"free", "uptime",
)

// DangerousFixedCommands are programs that are always dangerous regardless
// of arguments (spec.md §4.3 is_dangerous, minus the argument-dependent
// rules for rm/chmod/dd which package classify evaluates directly).
var DangerousFixedCommands = set("sudo", "fdisk", "parted", "format", "shutdown", "reboot", "halt", "poweroff", "init")

// HighFixedCommands are programs that are always High with no further
// inspection needed (spec.md §4.3 is_high).
var HighFixedCommands = set("kubectl", "helm", "terraform", "pulumi", "ansible", "ssh", "scp", "rsync")

// PipelineUpgradeShells trigger the pipeline-upgrade rule when they are the
// program on the right side of a `|` (spec.md §4.3 step 5).
var PipelineUpgradeShells = set("bash", "sh", "zsh", "node", "python", "python3", "ruby", "perl")

// GitMinimalSubcommands are always Minimal (list/inspect only).
var GitMinimalSubcommands = set(
	"status", "log", "diff", "show", "ls-files", "ls-tree", "cat-file",
	"rev-parse", "describe", "shortlog", "blame", "annotate", "whatchanged",
	"reflog", "fetch",
)

// GitListOnlySubcommands are Minimal only in list mode (no non-flag args).
var GitListOnlySubcommands = set("branch", "tag", "remote")

// GitMediumSubcommands are Medium except for the explicit high-overrides
// handled in package classify (reset --hard, push).
var GitMediumSubcommands = set(
	"add", "commit", "pull", "checkout", "switch", "branch", "merge",
	"rebase", "cherry-pick", "stash", "revert", "tag", "rm", "mv", "reset", "clone",
)

// ConditionalWriteCommands are read-only unless their arguments make them
// write or execute (find, xargs, tee).
var ConditionalWriteCommands = set("find", "xargs", "tee")

// LocalFileOpsCommands are Medium local file operations.
var LocalFileOpsCommands = set("mkdir", "touch", "cp", "mv", "ln")

// Linters, test runners: Medium.
var LintersAndTestRunners = set(
	"eslint", "prettier", "black", "flake8", "mypy", "pyright", "tsc", "rubocop",
	"jest", "mocha", "vitest", "pytest", "rspec", "phpunit",
)

// DBMigrationTools are Medium.
var DBMigrationTools = set("prisma", "sequelize", "typeorm")

// PackageManagerInstallCommands lists the package-manager programs whose
// install/build/test subcommands package classify treats as Medium (spec.md
// §4.3 is_medium); each entry's actual safe-subcommand set is enumerated in
// classify's medium.go next to its handler, since the subcommand vocabulary
// differs per tool.
var PackageManagerInstallCommands = set(
	"npm", "yarn", "pnpm", "bun", "pip", "pip3", "poetry", "conda", "uv",
	"cargo", "go", "gem", "bundle", "composer", "mvn", "gradle", "dotnet",
	"flutter", "dart", "swift", "mix", "cabal", "stack",
)

// SafeNpmScripts are run-script names considered Medium (spec.md §4.3).
var SafeNpmScripts = set(
	"build", "compile", "test", "lint", "format", "fmt", "check", "typecheck",
	"type-check", "types", "validate", "verify", "prepare", "prepublish",
	"prepublishOnly", "prepack", "postpack", "clean",
)

// SafeNpmScriptPrefixes: scripts beginning with one of these are also Medium.
var SafeNpmScriptPrefixes = []string{"build", "test", "lint", "format", "check", "type"}

// UnsafeNpmScripts force High.
var UnsafeNpmScripts = set("start", "dev", "develop", "serve", "server", "watch", "preview")

// UnsafeNpmScriptPrefixes: scripts beginning with one of these force High.
var UnsafeNpmScriptPrefixes = []string{"start", "dev", "serve", "watch"}

func set(items ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(items))
	for _, it := range items {
		m[it] = struct{}{}
	}
	return m
}

// Has reports whether name is in the table.
func Has(table map[string]struct{}, name string) bool {
	_, ok := table[name]
	return ok
}

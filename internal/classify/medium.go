package classify

import (
	"strings"

	"github.com/vrslev/pi-guard/internal/autonomy"
)

// toolchainReadSubcommands are the list/info/outdated/audit/search-style
// subcommands that keep a package-manager invocation Minimal instead of
// Medium (spec.md §4.3: "Package-manager read subcommands: per-tool sets
// covering list/info/outdated/audit/search").
var toolchainReadSubcommands = map[string]map[string]bool{
	"npm":      {"list": true, "ls": true, "info": true, "view": true, "outdated": true, "audit": true, "search": true, "config": true, "why": true},
	"yarn":     {"list": true, "info": true, "outdated": true, "audit": true, "why": true},
	"pnpm":     {"list": true, "ls": true, "outdated": true, "audit": true, "why": true},
	"bun":      {"outdated": true, "pm": true},
	"pip":      {"list": true, "show": true, "freeze": true, "check": true, "search": true, "config": true, "cache": true},
	"pip3":     {"list": true, "show": true, "freeze": true, "check": true, "search": true, "config": true, "cache": true},
	"poetry":   {"show": true, "check": true, "list": true, "search": true},
	"conda":    {"list": true, "info": true, "search": true},
	"cargo":    {"search": true, "tree": true, "metadata": true, "verify-project": true},
	"go":       {"list": true, "env": true, "version": true, "doc": true},
	"gem":      {"list": true, "search": true, "outdated": true, "dependency": true},
	"bundle":   {"list": true, "outdated": true, "check": true, "info": true},
	"composer": {"show": true, "outdated": true, "licenses": true, "audit": true},
	"mvn":      {"dependency:list": true, "dependency:tree": true},
	"gradle":   {"dependencies": true, "properties": true},
	"dotnet":   {"list": true, "--info": true},
	"brew":     {"list": true, "info": true, "outdated": true, "search": true, "deps": true, "leaves": true, "uses": true},
	"apt":      {"list": true, "show": true, "search": true},
	"apt-get":  {"check": true},
	"yum":      {"list": true, "info": true, "search": true, "deplist": true},
	"pacman":   {"-Q": true, "-Qi": true, "-Ss": true, "-Si": true},
}

// isMedium implements spec.md §4.3 is_medium.
func isMedium(cmd string, args []string) bool {
	if cmd == "git" {
		return gitIsMedium(args)
	}
	switch cmd {
	case "npm", "yarn", "pnpm", "bun":
		return nodePkgIsMedium(cmd, args)
	}
	if autonomy.Has(autonomy.LocalFileOpsCommands, cmd) {
		return true
	}
	if autonomy.Has(autonomy.LintersAndTestRunners, cmd) {
		return true
	}
	if autonomy.Has(autonomy.DBMigrationTools, cmd) {
		return true
	}
	if autonomy.Has(autonomy.PackageManagerInstallCommands, cmd) {
		return toolchainIsMediumAction(cmd, args)
	}
	switch cmd {
	case "brew", "apt", "apt-get", "yum", "pacman":
		return toolchainIsMediumAction(cmd, args)
	}
	return false
}

// toolchainMediumSubcommands lists the install/build/test-style actions
// that are Medium for toolchains without a dedicated handler; each table
// is grounded on the corresponding evaluate* function in the teacher's
// rules.go (evaluateGo, evaluateCargo, evaluatePip, evaluatePackageManager),
// generalized to the wider tool list spec.md §4.3 names.
var toolchainMediumSubcommands = map[string]map[string]bool{
	"pip":      {"install": true, "uninstall": true, "download": true, "wheel": true, "hash": true, "inspect": true, "debug": true},
	"pip3":     {"install": true, "uninstall": true, "download": true, "wheel": true, "hash": true, "inspect": true, "debug": true},
	"poetry":   {"install": true, "add": true, "remove": true, "update": true, "build": true, "lock": true},
	"conda":    {"install": true, "create": true, "update": true, "remove": true},
	"uv":       {"pip": true, "add": true, "remove": true, "sync": true, "lock": true, "run": true, "build": true, "venv": true},
	"cargo":    {"build": true, "test": true, "check": true, "clippy": true, "fmt": true, "doc": true, "clean": true, "update": true, "bench": true, "run": true, "new": true, "init": true, "add": true, "remove": true, "install": true, "vendor": true, "fix": true, "fetch": true},
	"go":       {"build": true, "test": true, "vet": true, "fmt": true, "mod": true, "generate": true, "install": true, "get": true, "clean": true, "tool": true, "work": true, "run": true, "fix": true},
	"gem":      {"install": true, "uninstall": true, "build": true, "update": true},
	"bundle":   {"install": true, "update": true, "add": true, "exec": true, "clean": true},
	"composer": {"install": true, "update": true, "require": true, "remove": true, "dump-autoload": true},
	"mvn":      {"compile": true, "test": true, "package": true, "install": true, "clean": true, "verify": true},
	"gradle":   {"build": true, "test": true, "assemble": true, "clean": true, "check": true},
	"dotnet":   {"build": true, "test": true, "restore": true, "run": true, "clean": true, "format": true},
	"flutter":  {"build": true, "test": true, "pub": true, "analyze": true, "clean": true, "run": true, "format": true},
	"dart":     {"pub": true, "test": true, "analyze": true, "format": true, "compile": true, "fix": true},
	"swift":    {"build": true, "test": true, "package": true},
	"mix":      {"compile": true, "test": true, "deps.get": true, "deps.update": true, "format": true},
	"cabal":    {"build": true, "test": true, "update": true, "install": true},
	"stack":    {"build": true, "test": true, "install": true, "update": true},
	"brew":     {"install": true, "uninstall": true, "update": true, "upgrade": true, "cleanup": true, "autoremove": true, "tap": true, "untap": true, "cache": true, "config": true, "doctor": true},
	"apt":      {"install": true, "remove": true, "update": true, "upgrade": true, "autoremove": true},
	"apt-get":  {"install": true, "remove": true, "update": true, "upgrade": true, "autoremove": true},
	"yum":      {"install": true, "remove": true, "update": true, "upgrade": true},
	"pacman":   {"-S": true, "-Syu": true, "-R": true, "-Rs": true},
}

func toolchainIsMediumAction(cmd string, args []string) bool {
	if len(args) == 0 {
		return true
	}
	subs, ok := toolchainMediumSubcommands[cmd]
	if !ok {
		return false
	}
	return subs[args[0]]
}

// gitIsMedium implements the §4.3 git-medium rule, with the two explicit
// high-overrides (push, reset --hard) excluded.
func gitIsMedium(args []string) bool {
	if len(args) == 0 {
		return false
	}
	sub := args[0]
	if sub == "reset" {
		return !hasHardFlag(args[1:])
	}
	if sub == "push" {
		return false
	}
	return autonomy.Has(autonomy.GitMediumSubcommands, sub)
}

func hasHardFlag(args []string) bool {
	for _, a := range args {
		if a == "--hard" {
			return true
		}
	}
	return false
}

// nodePkgMediumSubcommands lists the install/add/build/test-style actions
// that are Medium for npm/yarn/pnpm/bun, mirroring toolchainMediumSubcommands
// for the other package managers.
var nodePkgMediumSubcommands = map[string]map[string]bool{
	"npm":  {"install": true, "i": true, "ci": true, "uninstall": true, "update": true, "rebuild": true, "link": true, "prune": true, "dedupe": true, "build": true, "test": true},
	"yarn": {"install": true, "add": true, "remove": true, "upgrade": true, "build": true, "test": true, "dedupe": true},
	"pnpm": {"install": true, "i": true, "add": true, "remove": true, "update": true, "rebuild": true, "prune": true, "dedupe": true, "build": true, "test": true},
	"bun":  {"install": true, "i": true, "add": true, "remove": true, "update": true, "build": true, "test": true},
}

// nodePkgIsMedium implements the `npm|yarn|pnpm|bun run <script>` rule
// (spec.md §4.3) plus the install/build/test-style actions in
// nodePkgMediumSubcommands. Any other subcommand falls through to unknown
// (High).
func nodePkgIsMedium(cmd string, args []string) bool {
	if len(args) == 0 {
		return false
	}
	if args[0] != "run" {
		return nodePkgMediumSubcommands[cmd][args[0]]
	}
	if len(args) < 2 {
		return false
	}
	script := args[1]
	if autonomy.Has(autonomy.UnsafeNpmScripts, script) {
		return false
	}
	for _, p := range autonomy.UnsafeNpmScriptPrefixes {
		if strings.HasPrefix(script, p) {
			return false
		}
	}
	if autonomy.Has(autonomy.SafeNpmScripts, script) {
		return true
	}
	for _, p := range autonomy.SafeNpmScriptPrefixes {
		if strings.HasPrefix(script, p) {
			return true
		}
	}
	return false
}

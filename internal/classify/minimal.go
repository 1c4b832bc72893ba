package classify

import (
	"strings"

	"github.com/vrslev/pi-guard/internal/autonomy"
)

// isMinimal implements spec.md §4.3 is_minimal.
func isMinimal(cmd string, args []string) bool {
	if hasVersionFlag(args) {
		return true
	}
	if autonomy.Has(autonomy.MinimalCommands, cmd) {
		return true
	}
	if cmd == "git" {
		return gitIsMinimal(args)
	}
	if readSubs, ok := toolchainReadSubcommands[cmd]; ok {
		return len(args) > 0 && readSubs[args[0]]
	}
	if autonomy.Has(autonomy.ConditionalWriteCommands, cmd) {
		return conditionalWriteIsMinimal(cmd, args)
	}
	return false
}

// gitIsMinimal covers the always-minimal subcommands plus the list-mode
// rule for branch/tag/remote (spec.md §4.3).
func gitIsMinimal(args []string) bool {
	if len(args) == 0 {
		return false
	}
	sub := args[0]
	if autonomy.Has(autonomy.GitMinimalSubcommands, sub) {
		return true
	}
	if autonomy.Has(autonomy.GitListOnlySubcommands, sub) {
		return !hasNonFlagArgs(args[1:])
	}
	return false
}

func hasNonFlagArgs(args []string) bool {
	for _, a := range args {
		if !strings.HasPrefix(a, "-") {
			return true
		}
	}
	return false
}

// conditionalWriteIsMinimal covers find/xargs/tee (spec.md §4.3).
func conditionalWriteIsMinimal(cmd string, args []string) bool {
	switch cmd {
	case "find":
		return !findWillWrite(args)
	case "xargs":
		return xargsIsMinimal(args)
	case "tee":
		return teeIsMinimal(args)
	}
	return false
}

func findWillWrite(args []string) bool {
	for _, a := range args {
		switch a {
		case "-exec", "-execdir", "-ok", "-okdir", "-delete":
			return true
		}
	}
	return false
}

// xargsFlagsWithValue are xargs options that consume the following argument
// (spec.md §4.3: "-I, -d, -E, -L, -n, -P, -s, -a consume an argument").
var xargsFlagsWithValue = map[string]bool{
	"-I": true, "-d": true, "-E": true, "-L": true,
	"-n": true, "-P": true, "-s": true, "-a": true,
}

func xargsIsMinimal(args []string) bool {
	i := 0
	for i < len(args) {
		a := args[i]
		if !strings.HasPrefix(a, "-") {
			break
		}
		if xargsFlagsWithValue[a] {
			i += 2
			continue
		}
		i++
	}
	if i >= len(args) {
		// no command given: defaults to echo, which is minimal.
		return true
	}
	runCmd := args[i]
	return autonomy.Has(autonomy.MinimalCommands, runCmd)
}

func teeIsMinimal(args []string) bool {
	for _, a := range args {
		if strings.HasPrefix(a, "-") {
			continue
		}
		if a != "/dev/null" {
			return false
		}
	}
	return true
}

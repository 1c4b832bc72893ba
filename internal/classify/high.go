package classify

import (
	"strings"

	"github.com/vrslev/pi-guard/internal/autonomy"
)

// isHigh implements spec.md §4.3 is_high. Programs that fall through every
// check here (and every check in isMinimal/isMedium) are still High, via
// classifySegment's own unknown-command default — the explicit cases below
// exist for fidelity with the specification's categories, not because
// omitting them would change the outcome.
func isHigh(cmd string, args []string) bool {
	if cmd == "git" {
		return gitIsHigh(args)
	}
	if cmd == "curl" || cmd == "wget" {
		return true
	}
	if (cmd == "bash" || cmd == "sh" || cmd == "zsh") && argsContainURL(args) {
		return true
	}
	if cmd == "docker" && len(args) > 0 {
		switch args[0] {
		case "push", "login", "logout":
			return true
		}
	}
	return autonomy.Has(autonomy.HighFixedCommands, cmd)
}

func gitIsHigh(args []string) bool {
	if len(args) == 0 {
		return false
	}
	switch args[0] {
	case "push":
		return true
	case "reset":
		return hasHardFlag(args[1:])
	}
	return false
}

func argsContainURL(args []string) bool {
	for _, a := range args {
		if strings.Contains(a, "http://") || strings.Contains(a, "https://") {
			return true
		}
	}
	return false
}

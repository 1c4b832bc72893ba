package classify

import (
	"strings"

	"github.com/vrslev/pi-guard/internal/autonomy"
)

// isDangerous implements spec.md §4.3 is_dangerous.
func isDangerous(cmd string, args []string) bool {
	switch {
	case cmd == "sudo":
		return true
	case cmd == "rm" && rmForceAndRecursive(args):
		return true
	case cmd == "chmod" && chmodWideOpen(args):
		return true
	case cmd == "dd" && ddWritesDevice(args):
		return true
	case autonomy.Has(autonomy.DangerousFixedCommands, cmd):
		return true
	case strings.HasPrefix(cmd, "mkfs"):
		return true
	}
	return false
}

// rmForceAndRecursive expands bundled short flags (-rf, -fr) so that both a
// force and a recursive option are detected regardless of how they were
// combined (spec.md §4.3: "short-flag bundling ... MUST be expanded").
func rmForceAndRecursive(args []string) bool {
	force, recursive := false, false
	for _, a := range args {
		switch {
		case a == "--force":
			force = true
		case a == "--recursive":
			recursive = true
		case strings.HasPrefix(a, "--"):
			// other long flag, not force/recursive
		case strings.HasPrefix(a, "-") && len(a) > 1:
			for _, c := range a[1:] {
				switch c {
				case 'f':
					force = true
				case 'r', 'R':
					recursive = true
				}
			}
		}
	}
	return force && recursive
}

func chmodWideOpen(args []string) bool {
	joined := strings.Join(args, " ")
	return strings.Contains(joined, "777") || strings.Contains(joined, "a+rwx")
}

func ddWritesDevice(args []string) bool {
	for _, a := range args {
		if strings.HasPrefix(a, "of=/dev/") {
			return true
		}
	}
	return false
}

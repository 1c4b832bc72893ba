package shellword

import "testing"

func TestTokenizeSegments(t *testing.T) {
	tests := []struct {
		name string
		cmd  string
		want [][]string
	}{
		{"simple", "ls -la", [][]string{{"ls", "-la"}}},
		{"pipe", "cat f | grep pat | head -10", [][]string{{"cat", "f"}, {"grep", "pat"}, {"head", "-10"}}},
		{"and", "ls && cat f", [][]string{{"ls"}, {"cat", "f"}}},
		{"or", "ls || echo fail", [][]string{{"ls"}, {"echo", "fail"}}},
		{"semi", "ls ; pwd", [][]string{{"ls"}, {"pwd"}}},
		{"single-quote-literal", "echo '$(whoami)'", [][]string{{"echo", "$(whoami)"}}},
		{"double-quote-var", `echo "$HOME"`, [][]string{{"echo", "$HOME"}}},
		{"backslash-escape", `echo foo\ bar`, [][]string{{"echo", "foo bar"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Tokenize(tt.cmd)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(p.Segments) != len(tt.want) {
				t.Fatalf("got %d segments, want %d (%v)", len(p.Segments), len(tt.want), p)
			}
			for i, seg := range p.Segments {
				if len(seg.Words) != len(tt.want[i]) {
					t.Fatalf("segment %d: got %v, want %v", i, seg.Words, tt.want[i])
				}
				for j, w := range seg.Words {
					if w != tt.want[i][j] {
						t.Fatalf("segment %d word %d: got %q, want %q", i, j, w, tt.want[i][j])
					}
				}
			}
		})
	}
}

func TestTokenizeRedirection(t *testing.T) {
	tests := []struct {
		name string
		cmd  string
		want bool
	}{
		{"redirect to file", "echo hi > out.txt", true},
		{"redirect to devnull", "echo hi > /dev/null", false},
		{"redirect to stdout", "make build 2>&1 1>/dev/stdout", false},
		{"append to file", "echo hi >> out.txt", true},
		{"fd dup", "cmd 2>&1", false},
		{"no redirect", "ls -la", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Tokenize(tt.cmd)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.WritesFiles != tt.want {
				t.Fatalf("WritesFiles = %v, want %v", p.WritesFiles, tt.want)
			}
		})
	}
}

func TestTokenizeUnterminatedQuote(t *testing.T) {
	_, err := Tokenize(`echo "unterminated`)
	if err == nil {
		t.Fatal("expected ParseError for unterminated quote")
	}
	var pe *ParseError
	if !asParseError(err, &pe) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
}

func asParseError(err error, target **ParseError) bool {
	if pe, ok := err.(*ParseError); ok {
		*target = pe
		return true
	}
	return false
}

func TestSegmentProgram(t *testing.T) {
	tests := []struct {
		words []string
		want  string
	}{
		{[]string{"/usr/bin/ls", "-la"}, "ls"},
		{[]string{"\\ls"}, "ls"},
		{[]string{"Git", "status"}, "git"},
		{[]string{}, ""},
	}
	for _, tt := range tests {
		s := Segment{Words: tt.words}
		if got := s.Program(); got != tt.want {
			t.Errorf("Program() for %v = %q, want %q", tt.words, got, tt.want)
		}
	}
}

func TestHasTricks(t *testing.T) {
	tests := []struct {
		name string
		cmd  string
		want bool
	}{
		{"command substitution", "echo $(whoami)", true},
		{"backtick substitution", "echo `whoami`", true},
		{"process substitution in", "diff <(ls a) <(ls b)", true},
		{"process substitution out", "tee >(cat)", true},
		{"nested brace with cmd sub", "echo ${FOO:-$(whoami)}", true},
		{"plain brace expansion", "echo ${FOO:-bar}", false},
		{"plain command", "ls -la", false},
		{"single-quoted literal dollar-paren", "echo '$(not evaluated but still flagged)'", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasTricks(tt.cmd, nil); got != tt.want {
				t.Errorf("HasTricks(%q) = %v, want %v", tt.cmd, got, tt.want)
			}
		})
	}
}

func TestHasTricksParseError(t *testing.T) {
	if !HasTricks("echo hi", &ParseError{Msg: "boom"}) {
		t.Error("a ParseError must always be treated as a trick")
	}
}

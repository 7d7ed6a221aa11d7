package runners

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/reusee/dscope"
	"github.com/reusee/lox/logs"
	"github.com/reusee/lox/loxconfigs"
	"github.com/reusee/lox/loxlang"
	"github.com/reusee/lox/modes"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func newScope(t *testing.T, stdout, stderr *bytes.Buffer) dscope.Scope {
	return dscope.New(new(Module), modes.ForTest(t)).Fork(
		func() Stdout {
			return stdout
		},
		func() Stderr {
			return stderr
		},
		func() logs.Writer {
			return io.Discard
		},
		func() loxconfigs.ConfigPaths {
			return nil
		},
	)
}

func TestRunSource(t *testing.T) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	newScope(t, stdout, stderr).Call(func(
		runSource RunSource,
	) {
		result, err := runSource(t.Context(), loxlang.NewSource("", "1 + 2 * 3"))
		if err != nil {
			t.Fatal(err)
		}
		if result.Expr == nil {
			t.Fatal()
		}
		if stdout.String() != "( + 1 ( * 2 3 ) )\n" {
			t.Fatalf("got %q", stdout.String())
		}
		if stderr.Len() != 0 {
			t.Fatalf("got %q", stderr.String())
		}
	})
}

func TestRunSourceSyntaxError(t *testing.T) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	newScope(t, stdout, stderr).Call(func(
		runSource RunSource,
	) {
		_, err := runSource(t.Context(), loxlang.NewSource("", "(1 + 2"))
		if !errors.Is(err, loxlang.ErrUnclosedGroup) {
			t.Fatalf("got %v", err)
		}
		if !Reported(err) {
			t.Fatal()
		}
		expected := `[line: 1 column: 6] Error: reached end of input, expected ")" to close expression` + "\n" +
			"(1 + 2\n" +
			"      ^\n"
		if stderr.String() != expected {
			t.Fatalf("got %q", stderr.String())
		}
		if stdout.Len() != 0 {
			t.Fatalf("got %q", stdout.String())
		}
	})
}

func TestRunSourceLexicalErrors(t *testing.T) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	newScope(t, stdout, stderr).Call(func(
		runSource RunSource,
	) {
		_, err := runSource(t.Context(), loxlang.NewSource("", "1 # 2"))
		if !errors.Is(err, loxlang.ErrLexical) {
			t.Fatalf("got %v", err)
		}
		if !Reported(err) {
			t.Fatal()
		}
		if !strings.Contains(stderr.String(), "[line: 1 column: 2] Error: unexpected character") {
			t.Fatalf("got %q", stderr.String())
		}
		if !strings.HasSuffix(stderr.String(), "1 # 2\n  ^\n") {
			t.Fatalf("got %q", stderr.String())
		}
		if stdout.Len() != 0 {
			t.Fatalf("got %q", stdout.String())
		}
	})
}

func TestRunSourcePrintTokens(t *testing.T) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	newScope(t, stdout, stderr).Fork(
		func() loxconfigs.PrintTokens {
			return true
		},
	).Call(func(
		runSource RunSource,
	) {
		if _, err := runSource(t.Context(), loxlang.NewSource("", "1 + 2")); err != nil {
			t.Fatal(err)
		}
		lines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
		if len(lines) != 5 {
			t.Fatalf("got %q", stdout.String())
		}
		if !strings.HasPrefix(lines[3], "Eof") {
			t.Fatalf("got %q", lines[3])
		}
		if lines[4] != "( + 1 2 )" {
			t.Fatalf("got %q", lines[4])
		}
	})
}

func TestRunSourceAllowTrailing(t *testing.T) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	newScope(t, stdout, stderr).Fork(
		func() loxconfigs.AllowTrailing {
			return true
		},
	).Call(func(
		runSource RunSource,
	) {
		if _, err := runSource(t.Context(), loxlang.NewSource("", "1 2")); err != nil {
			t.Fatal(err)
		}
		if stdout.String() != "1\n" {
			t.Fatalf("got %q", stdout.String())
		}
	})
}

func TestRunFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.lox")
	if err := os.WriteFile(good, []byte("-(1)"), 0644); err != nil {
		t.Fatal(err)
	}
	bad := filepath.Join(dir, "bad.lox")
	if err := os.WriteFile(bad, []byte("1 +"), 0644); err != nil {
		t.Fatal(err)
	}

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	newScope(t, stdout, stderr).Call(func(
		runFile RunFile,
	) {
		if err := runFile(t.Context(), good); err != nil {
			t.Fatal(err)
		}
		if stdout.String() != "( - ( group 1 ) )\n" {
			t.Fatalf("got %q", stdout.String())
		}

		err := runFile(t.Context(), bad)
		if !errors.Is(err, loxlang.ErrExpectedExpression) {
			t.Fatalf("got %v", err)
		}
		if !strings.Contains(stderr.String(), "  --> "+bad+":1\n") {
			t.Fatalf("got %q", stderr.String())
		}

		err = runFile(t.Context(), filepath.Join(dir, "foo.txt"))
		if !errors.Is(err, ErrNotLoxFile) {
			t.Fatalf("got %v", err)
		}
		if Reported(err) {
			t.Fatal()
		}

		err = runFile(t.Context(), filepath.Join(dir, "missing.lox"))
		if err == nil {
			t.Fatal()
		}
		if Reported(err) {
			t.Fatal()
		}
	})
}

func TestRunReader(t *testing.T) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	newScope(t, stdout, stderr).Call(func(
		runReader RunReader,
	) {
		if err := runReader(t.Context(), "<stdin>", strings.NewReader("!true\n")); err != nil {
			t.Fatal(err)
		}
		if stdout.String() != "( ! true )\n" {
			t.Fatalf("got %q", stdout.String())
		}
	})
}

type linesReader struct {
	lines  []string
	closed bool
}

func (l *linesReader) Readline() (string, error) {
	if len(l.lines) == 0 {
		return "", io.EOF
	}
	line := l.lines[0]
	l.lines = l.lines[1:]
	return line, nil
}

func (l *linesReader) Close() error {
	l.closed = true
	return nil
}

func TestRunREPL(t *testing.T) {
	for _, c := range []struct {
		lines    []string
		expected string
	}{
		{
			lines:    []string{"1 + 2", "", "(", "  3  ", "quit", "4"},
			expected: "( + 1 2 )\n3\n",
		},
		{
			lines:    []string{"nil", "exit", "4"},
			expected: "nil\n",
		},
		{
			lines:    []string{"\"a\" == \"b\""},
			expected: "( == a b )\n",
		},
	} {
		stdout := new(bytes.Buffer)
		stderr := new(bytes.Buffer)
		reader := &linesReader{
			lines: c.lines,
		}
		newScope(t, stdout, stderr).Fork(
			func() NewLineReader {
				return func() (LineReader, error) {
					return reader, nil
				}
			},
		).Call(func(
			runREPL RunREPL,
		) {
			if err := runREPL(t.Context()); err != nil {
				t.Fatal(err)
			}
		})
		if stdout.String() != c.expected {
			t.Fatalf("got %q, want %q", stdout.String(), c.expected)
		}
		if !reader.closed {
			t.Fatal()
		}
	}
}

func TestRunREPLReportsAndContinues(t *testing.T) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	reader := &linesReader{
		lines: []string{"1 @", "2"},
	}
	newScope(t, stdout, stderr).Fork(
		func() NewLineReader {
			return func() (LineReader, error) {
				return reader, nil
			}
		},
	).Call(func(
		runREPL RunREPL,
	) {
		if err := runREPL(t.Context()); err != nil {
			t.Fatal(err)
		}
	})
	if stdout.String() != "2\n" {
		t.Fatalf("got %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "unexpected character") {
		t.Fatalf("got %q", stderr.String())
	}
}

func TestTapEnabledNeedsTerminal(t *testing.T) {
	*tapFlag = true
	defer func() {
		*tapFlag = false
	}()
	for _, c := range []struct {
		terminal StdinTerminal
		expected TapEnabled
	}{
		{false, false},
		{true, true},
	} {
		newScope(t, new(bytes.Buffer), new(bytes.Buffer)).Fork(
			func() StdinTerminal {
				return c.terminal
			},
		).Call(func(
			enabled TapEnabled,
		) {
			if enabled != c.expected {
				t.Fatalf("terminal %v: got %v", c.terminal, enabled)
			}
		})
	}
}

package cmds_test

import (
	"strings"
	"testing"

	"lesiw.io/shr3/cmds"
)

func run(t *testing.T, argv ...string) string {
	t.Helper()
	outw := &strings.Builder{}
	errw := &strings.Builder{}
	cmd := cmds.Command(argv...)
	cmd.Stdout = outw
	cmd.Stderr = errw
	if code := cmd.Run(); code != 0 {
		t.Errorf("code: got %d, want 0; stderr: %s", code, errw)
	}
	out := outw.String()
	if !strings.HasSuffix(out, "\n") {
		t.Errorf("out: missing trailing newline")
	}
	return strings.TrimSuffix(out, "\n")
}

func runN(t *testing.T, argv ...string) []string {
	t.Helper()
	return strings.Split(run(t, argv...), "\n")
}

func fail(t *testing.T, argv ...string) string {
	t.Helper()
	errw := &strings.Builder{}
	cmd := cmds.Command(argv...)
	cmd.Stdout = &strings.Builder{}
	cmd.Stderr = errw
	if code := cmd.Run(); code != 1 {
		t.Errorf("code: got %d, want 1", code)
	}
	err := errw.String()
	if !strings.HasSuffix(err, "\n") {
		t.Errorf("err: missing trailing newline")
	}
	return strings.TrimSuffix(err, "\n")
}

func failN(t *testing.T, argv ...string) []string {
	t.Helper()
	return strings.Split(fail(t, argv...), "\n")
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/qstack/qstacktest"
	"github.com/ava-labs/qstack/script"
)

func TestMain(m *testing.M) {
	qstacktest.NoLeak(m)
}

func execute(t *testing.T, stdin string, args ...string) (stdout, stderr string, _ error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestStackFromStdin(t *testing.T) {
	out, _, err := execute(t, "push 1 2 3\npop\npop\npop\npop\nempty\n", "stack")
	require.NoError(t, err)
	require.Equal(t, "3\n2\n1\nempty\ntrue\n", out)
}

func TestHeapFromFiles(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.txt")
	second := filepath.Join(dir, "second.txt")
	require.NoError(t, os.WriteFile(first, []byte("add 4 2 9 11\nnext\n"), 0o600))
	require.NoError(t, os.WriteFile(second, []byte("next\nlen\n"), 0o600))

	tests := []struct {
		order string
		want  string
	}{
		{"min", "2\n4\n2\n"},
		{"max", "11\n9\n2\n"},
	}
	for _, tt := range tests {
		out, _, err := execute(t, "", "heap", "--order", tt.order, first, second)
		require.NoErrorf(t, err, "heap --order %s", tt.order)
		require.Equalf(t, tt.want, out, "heap --order %s", tt.order)
	}
}

func TestMetricsFlag(t *testing.T) {
	out, _, err := execute(t, "pop\npush 1\npop", "--metrics", "stack")
	require.NoError(t, err)
	require.Contains(t, out, `qstack_ops_total{op="pop",target="stack"} 2`)
	require.Contains(t, out, `qstack_underflows_total{target="stack"} 1`)
}

func TestLogLevel(t *testing.T) {
	_, stderr, err := execute(t, "push 1\npop", "--log-level", "debug", "stack")
	require.NoError(t, err)
	require.Contains(t, stderr, "Operation result")

	_, stderr, err = execute(t, "push 1\npop", "--log-level", "warn", "stack")
	require.NoError(t, err)
	require.NotContains(t, stderr, "Script complete")
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name    string
		stdin   string
		args    []string
		wantErr error
	}{
		{
			name:    "syntax",
			stdin:   "push\n",
			args:    []string{"stack"},
			wantErr: script.ErrSyntax,
		},
		{
			name:    "unsupported",
			stdin:   "push 1\n",
			args:    []string{"heap"},
			wantErr: script.ErrUnsupported,
		},
		{
			name:    "missing_file",
			args:    []string{"stack", filepath.Join(t.TempDir(), "missing")},
			wantErr: os.ErrNotExist,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.stdin, tt.args...)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, _, err := execute(t, "", "heap", "--order", "median")
	require.Error(t, err, "unknown order")
	_, _, err = execute(t, "", "--log-level", "loud", "stack")
	require.Error(t, err, "unknown log level")
}

func TestLoggerWritesToCommandStderr(t *testing.T) {
	var buf bytes.Buffer
	log, err := newLogger("info", nopCloser{&buf})
	require.NoError(t, err)
	log.Info("captured")
	require.Contains(t, buf.String(), "captured")
}

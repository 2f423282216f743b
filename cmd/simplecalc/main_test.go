package main

import (
	"bytes"
	"context"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simplecalc/internal/calculator"
	"simplecalc/internal/config"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestComputePrintsResult(t *testing.T) {
	out, err := runCLI(t, "compute", "--op", "add", "4", "2")
	require.NoError(t, err)
	assert.Equal(t, "6.0\n", out)
}

func TestComputeAcceptsSymbols(t *testing.T) {
	out, err := runCLI(t, "compute", "-o", "/", "--", "-9", "3")
	require.NoError(t, err)
	assert.Equal(t, "-3.0\n", out)
}

func TestComputeFailures(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"division by zero", []string{"compute", "--op", "divide", "4", "0"}, calculator.ErrDivisionByZero},
		{"empty operand", []string{"compute", "--op", "multiply", "", "2"}, calculator.ErrEmptyInput},
		{"bad operand", []string{"compute", "abc", "2"}, calculator.ErrFormat},
		{"bad operator", []string{"compute", "--op", "pow", "2", "3"}, calculator.ErrUnsupportedOperator},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := runCLI(t, tc.args...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			assert.Equal(t, calculator.ComputationError+"\n", out)
		})
	}
}

func TestComputeRequiresTwoOperands(t *testing.T) {
	_, err := runCLI(t, "compute", "4")
	assert.Error(t, err)
}

func TestOperatorsListsAll(t *testing.T) {
	out, err := runCLI(t, "operators")
	require.NoError(t, err)
	assert.Contains(t, out, "add")
	assert.Contains(t, out, "subtract")
	assert.Contains(t, out, "multiply")
	assert.Contains(t, out, "divide")
}

func TestInvalidLogLevelFlag(t *testing.T) {
	_, err := runCLI(t, "--log-level", "loud", "operators")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.level")
}

func TestExplicitConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "calc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: nope\n"), 0o644))

	_, err := runCLI(t, "--config", path, "operators")
	require.Error(t, err)
}

func TestServeShutsDownOnCancel(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	a := &app{cfg: &config.Config{
		Addr:            addr,
		ServiceName:     "simplecalc-test",
		Log:             config.LogConfig{Level: "info"},
		ShutdownTimeout: time.Second,
	}}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.serve(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/health")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after cancel")
	}
}

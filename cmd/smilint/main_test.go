package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLintReaderTextOutput(t *testing.T) {
	var out bytes.Buffer
	cfg := config{Format: "text"}
	err := lintReader(&out, zap.NewNop(), cfg, "<test>", strings.NewReader("CC\n[,*]\n"))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[0], "OK")
	require.Contains(t, lines[1], "ERROR")
}

func TestLintReaderJSONOutput(t *testing.T) {
	var out bytes.Buffer
	cfg := config{Format: "json", Descriptors: true}
	err := lintReader(&out, zap.NewNop(), cfg, "<test>", strings.NewReader("CC\n"))
	require.NoError(t, err)
	require.Contains(t, out.String(), `"formula":"C2H6"`)
}

func TestLoadConfigDefaultsWithoutFile(t *testing.T) {
	cmd := newRootCmd()
	cfg, err := loadConfig(cmd.Flags(), "")
	require.NoError(t, err)
	require.Equal(t, "text", cfg.Format)
	require.False(t, cfg.Descriptors)
}

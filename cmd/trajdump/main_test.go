package main

import (
	"bytes"
	"strings"
	"testing"

	"projectile/trajectory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDump_CSV(t *testing.T) {
	tr, err := trajectory.Compute(20, 45, trajectory.WithTotalDuration(0.03))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, dump(&buf, tr, "csv"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "t,x,y", lines[0])
	assert.Equal(t, "0,0,0", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "0.01,0.1414"), lines[2])
}

func TestDump_WKT(t *testing.T) {
	tr, err := trajectory.Compute(20, 45, trajectory.WithTotalDuration(0.03))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, dump(&buf, tr, "WKT"))
	assert.True(t, strings.HasPrefix(buf.String(), "LINESTRING"), buf.String())
}

func TestDump_UnknownFormat(t *testing.T) {
	tr, err := trajectory.Compute(20, 45, trajectory.WithTotalDuration(0.03))
	require.NoError(t, err)

	err = dump(&bytes.Buffer{}, tr, "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

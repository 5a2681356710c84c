package main

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	src := rand.New(rand.NewSource(17))

	t.Run("Prints a maze", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		code := run([]string{"3", "5"}, src, &stdout, &stderr)

		require.Equal(t, 0, code)
		lines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
		require.Len(t, lines, 2+2*3)
		assert.Equal(t, "3 5", lines[0])
		assert.True(t, strings.HasPrefix(lines[2], "| S "))
		assert.True(t, strings.HasSuffix(lines[6], " E |"))
	})

	t.Run("Prints the single cell maze", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		code := run([]string{"1", "1"}, src, &stdout, &stderr)

		require.Equal(t, 0, code)
		assert.Equal(t, "1 1\n+---+\n| S |\n+---+\n", stdout.String())
	})

	t.Run("Wrong argument count prints usage", func(t *testing.T) {
		for _, args := range [][]string{{}, {"3"}, {"3", "4", "5"}} {
			var stdout, stderr bytes.Buffer
			code := run(args, src, &stdout, &stderr)

			assert.Equal(t, 1, code)
			assert.Empty(t, stdout.String())
			assert.True(t, strings.HasPrefix(stderr.String(), "usage: genmaze numRows numCols\n"))
		}
	})

	t.Run("Invalid dimensions print usage", func(t *testing.T) {
		for _, args := range [][]string{{"x", "4"}, {"4", "4.5"}, {"0", "4"}, {"4", "-1"}} {
			var stdout, stderr bytes.Buffer
			code := run(args, src, &stdout, &stderr)

			assert.Equal(t, 1, code, args)
			assert.Empty(t, stdout.String(), args)
			assert.Contains(t, stderr.String(), "usage: genmaze numRows numCols", args)
		}
	})
}

package render

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalafut/chunkopt"
)

func init() {
	color.NoColor = true
}

func TestLines(t *testing.T) {
	d, err := chunkopt.CompareLines(context.Background(), "a\nb\nc\n", "a\nc\nd\n")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Lines(&buf, d))
	assert.Equal(t, "  a\n- b\n  c\n+ d\n", buf.String())
}

func TestSideBySide(t *testing.T) {
	d, err := chunkopt.CompareLines(context.Background(), "a\nb\nabcdefghijklmnop\n", "a\nc\n")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, SideBySide(&buf, d, 23))

	pad := func(s string) string { return s + strings.Repeat(" ", 10-len(s)) }
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, pad("a")+"   a", lines[0])
	assert.Equal(t, pad("b")+" | c", lines[1])
	assert.Equal(t, "abcdefghi… < ", lines[2])
}

func TestWords(t *testing.T) {
	type TestCase struct {
		Name string
		A, B string

		Expected string
	}

	for _, tc := range []TestCase{
		{"replace", "ab c d", "ab cd", "ab [-c d-]{+cd+}"},
		{"insert", "one three", "one two three", "one {+two+} three"},
		{"delete", "a x b", "a b", "a[-x-] b"},
		{"trailing text", "a b\n", "a c\n", "a [-b-]{+c+}\n"},
		{"identical", "same  text", "same  text", "same  text"},
	} {
		t.Run(tc.Name, func(t *testing.T) {
			d, err := chunkopt.CompareWords(context.Background(), tc.A, tc.B)
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, Words(&buf, d))
			assert.Equal(t, tc.Expected, buf.String())
		})
	}
}

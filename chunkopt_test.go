package chunkopt

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_chunkopt(t *testing.T) {
	ctx := context.Background()

	t.Run("version numbers", func(t *testing.T) {
		d, err := CompareWords(ctx, "1.0.123 1.0.155", "1.0.123 1.0.134 1.0.155")
		require.NoError(t, err)

		require.Len(t, d.Changed(), 1)
		c := d.Changed()[0]
		assert.Equal(t, 0, c.LenA())
		assert.Equal(t, "1.0.134", d.B[c.StartB].Text)
	})

	t.Run("inserted block keeps empty line at its edge", func(t *testing.T) {
		a := "header\nalpha\nbeta\n\ntail\n"
		b := "header\nalpha\nbeta\n\nalpha\nbeta\n\ntail\n"

		d, err := CompareLines(ctx, a, b)
		require.NoError(t, err)

		require.Len(t, d.Changed(), 1)
		c := d.Changed()[0]
		assert.Equal(t, 0, c.LenA())
		assert.Equal(t, 3, c.LenB())
		edges := d.B[c.StartB].Text == "" || d.B[c.EndB-1].Text == ""
		assert.True(t, edges, "inserted %v", d.B[c.StartB:c.EndB])
	})

	t.Run("coverage", func(t *testing.T) {
		a := "The quick brown fox\njumped over\n\nthe lazy dog.\n"
		b := "The quick brown cat\njumped over\nthe\n\nlazy dog!\n"

		raw, err := CompareWords(ctx, a, b, WithRaw())
		require.NoError(t, err)
		opt, err := CompareWords(ctx, a, b)
		require.NoError(t, err)
		assert.Equal(t, raw.MatchedCount(), opt.MatchedCount())

		rawLines, err := CompareLines(ctx, a, b, WithRaw())
		require.NoError(t, err)
		optLines, err := CompareLines(ctx, a, b, WithThreshold(0))
		require.NoError(t, err)
		assert.Equal(t, rawLines.MatchedCount(), optLines.MatchedCount())

		n := 0
		for _, c := range optLines.Chunks() {
			n += c.LenA()
		}
		assert.Equal(t, len(optLines.A), n)
	})

	t.Run("identical", func(t *testing.T) {
		d, err := CompareLines(ctx, "a\nb\n", "a\nb\n")
		require.NoError(t, err)
		assert.True(t, d.Identical())
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(ctx)
		cancel()

		d, err := CompareLines(ctx, "a\nb\n", "a\nc\n")
		assert.Nil(t, d)
		assert.True(t, errors.Is(err, ErrAborted))

		w, err := CompareWords(ctx, "a b", "a c")
		assert.Nil(t, w)
		assert.True(t, errors.Is(err, context.Canceled))
	})

	t.Run("options", func(t *testing.T) {
		cfg := newConfig(nil)
		assert.Equal(t, DefaultUnimportantLineCharCount, cfg.threshold)
		assert.Equal(t, DefaultTimeout, cfg.timeout)
		assert.False(t, cfg.raw)

		cfg = newConfig([]FuncOption{WithThreshold(0), WithTimeout(0), WithRaw()})
		assert.Equal(t, 0, cfg.threshold)
		assert.Equal(t, 0, int(cfg.timeout))
		assert.True(t, cfg.raw)
	})

	t.Run("large input", func(t *testing.T) {
		var a, b strings.Builder
		for i := 0; i < 500; i++ {
			a.WriteString("line\n\n")
			b.WriteString("line\n\n")
			if i%7 == 0 {
				b.WriteString("extra\nline\n\n")
			}
		}

		raw, err := CompareLines(ctx, a.String(), b.String(), WithRaw())
		require.NoError(t, err)
		d, err := CompareLines(ctx, a.String(), b.String())
		require.NoError(t, err)
		assert.Equal(t, raw.MatchedCount(), d.MatchedCount())
		assert.LessOrEqual(t, len(d.Chunks()), len(raw.Chunks()))
	})
}

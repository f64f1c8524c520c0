// Package render prints chunkopt alignments for a terminal.
package render

import (
	"bytes"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/kalafut/chunkopt"
)

var (
	deleted  = color.New(color.FgRed)
	inserted = color.New(color.FgGreen)
)

const tabWidth = 4

// widths ignores the locale so that output does not depend on the terminal
// running the command.
var widths = func() *runewidth.Condition {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = false
	cond.StrictEmojiNeutral = true
	return cond
}()

// Lines writes d in a unified style: unchanged lines prefixed by two spaces,
// removed lines by "- " and added lines by "+ ".
func Lines(w io.Writer, d *chunkopt.LineDiff) error {
	var b bytes.Buffer

	for _, c := range d.Chunks() {
		if c.Equal {
			for _, l := range d.A[c.StartA:c.EndA] {
				b.WriteString("  " + l.Text + "\n")
			}
			continue
		}
		for _, l := range d.A[c.StartA:c.EndA] {
			b.WriteString(deleted.Sprint("- "+l.Text) + "\n")
		}
		for _, l := range d.B[c.StartB:c.EndB] {
			b.WriteString(inserted.Sprint("+ "+l.Text) + "\n")
		}
	}

	_, err := w.Write(b.Bytes())
	return err
}

// SideBySide writes d in two columns that together fit in width cells. The
// gutter shows "|" for changed pairs, "<" for removed and ">" for added lines.
func SideBySide(w io.Writer, d *chunkopt.LineDiff, width int) error {
	var b bytes.Buffer
	col := (width - 3) / 2

	row := func(left, right string, gutter byte, changed bool) {
		l := widths.FillRight(fit(left, col), col)
		r := fit(right, col)
		if changed {
			l, r = deleted.Sprint(l), inserted.Sprint(r)
		}
		b.WriteString(l + " " + string(gutter) + " " + r)
		b.WriteString("\n")
	}

	for _, c := range d.Chunks() {
		if c.Equal {
			for i := 0; i < c.LenA(); i++ {
				row(d.A[c.StartA+i].Text, d.B[c.StartB+i].Text, ' ', false)
			}
			continue
		}

		for i := 0; i < max(c.LenA(), c.LenB()); i++ {
			var left, right string
			gutter := byte('|')
			switch {
			case i >= c.LenA():
				right, gutter = d.B[c.StartB+i].Text, '>'
			case i >= c.LenB():
				left, gutter = d.A[c.StartA+i].Text, '<'
			default:
				left, right = d.A[c.StartA+i].Text, d.B[c.StartB+i].Text
			}
			row(left, right, gutter, true)
		}
	}

	_, err := w.Write(b.Bytes())
	return err
}

// Words writes the second text of d with changes marked inline: removed
// words as [-old-] and added words as {+new+}.
func Words(w io.Writer, d *chunkopt.WordDiff) error {
	var b bytes.Buffer
	pos := 0

	for _, c := range d.Chunks() {
		if c.Equal {
			end := d.B[c.EndB-1].End
			b.WriteString(d.TextB[pos:end])
			pos = end
			continue
		}

		if c.LenB() > 0 {
			b.WriteString(d.TextB[pos:d.B[c.StartB].Start])
			pos = d.B[c.StartB].Start
		}
		if c.LenA() > 0 {
			text := d.TextA[d.A[c.StartA].Start:d.A[c.EndA-1].End]
			b.WriteString(deleted.Sprint("[-" + text + "-]"))
		}
		if c.LenB() > 0 {
			end := d.B[c.EndB-1].End
			b.WriteString(inserted.Sprint("{+" + d.TextB[pos:end] + "+}"))
			pos = end
		}
	}
	b.WriteString(d.TextB[pos:])

	_, err := w.Write(b.Bytes())
	return err
}

func fit(s string, cells int) string {
	s = strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
	return widths.Truncate(s, cells, "…")
}

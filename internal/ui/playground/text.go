package playground

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// graphemeCount returns the number of grapheme clusters in s.
func graphemeCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// cellWidthBefore returns the display width in cells of the first n
// grapheme clusters of s.
func cellWidthBefore(s string, n int) int {
	width := 0
	g := uniseg.NewGraphemes(s)
	for i := 0; i < n && g.Next(); i++ {
		width += runewidth.StringWidth(g.Str())
	}
	return width
}

// graphemeAtCell returns the grapheme index whose cell span contains the
// given cell column, clamped to the cluster count for columns past the end.
func graphemeAtCell(s string, cell int) int {
	if cell <= 0 {
		return 0
	}
	width := 0
	index := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w := runewidth.StringWidth(g.Str())
		if cell < width+w {
			return index
		}
		width += w
		index++
	}
	return index
}

// splitGraphemes cuts s at grapheme index n.
func splitGraphemes(s string, n int) (string, string) {
	if n <= 0 {
		return "", s
	}
	g := uniseg.NewGraphemes(s)
	consumed := 0
	for i := 0; i < n && g.Next(); i++ {
		_, to := g.Positions()
		consumed = to
	}
	return s[:consumed], s[consumed:]
}

// truncateCells trims s so it fits within the given cell width.
func truncateCells(s string, cells int) string {
	if runewidth.StringWidth(s) <= cells {
		return s
	}
	width := 0
	end := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w := runewidth.StringWidth(g.Str())
		if width+w > cells {
			break
		}
		width += w
		_, end = g.Positions()
	}
	return s[:end]
}

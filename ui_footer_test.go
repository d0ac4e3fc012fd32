package main

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRenderFooterFitsWidth(t *testing.T) {
	st := footerState{
		Mode:          ActZoomed,
		FileName:      "weather.csv",
		RangeLabel:    "2018-03-12 - 2018-10-08",
		Visible:       31,
		Total:         335,
		StatusMessage: "Saved weather.json",
	}
	for _, width := range []int{80, 120} {
		out := renderFooter(width, st, defaultFooterStyles())
		lines := strings.Split(out, "\n")
		if len(lines) != 2 {
			t.Fatalf("footer has %d lines", len(lines))
		}
		for i, line := range lines {
			if w := lipgloss.Width(line); w != width {
				t.Errorf("width %d: line %d is %d cells", width, i, w)
			}
		}
		if !strings.Contains(lines[0], "ZOOMED") || !strings.Contains(lines[0], "Points 31/335") {
			t.Errorf("control bar missing mode or count: %q", lines[0])
		}
	}
}

func TestTruncatePlainCountsCells(t *testing.T) {
	if got := truncatePlain("日本語テキスト", 6); runeWidth(got) > 6 {
		t.Errorf("truncated to %q (%d cells)", got, runeWidth(got))
	}
	if got := truncatePlain("abc", 0); got != "" {
		t.Errorf("zero width = %q", got)
	}
	if got := padRightPlain("ab", 4); got != "ab  " {
		t.Errorf("padRightPlain = %q", got)
	}
}

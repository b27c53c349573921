package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestRenderHeader(t *testing.T) {
	h := RenderHeader("平家物語 · 祇園精舎", "正解 2 / 5", 80)
	for _, want := range []string{brand, "平家物語 · 祇園精舎", "正解 2 / 5"} {
		if !strings.Contains(h, want) {
			t.Errorf("header missing %q", want)
		}
	}
}

func TestRenderHeader_LongTitle(t *testing.T) {
	title := strings.Repeat("長", 40)
	h := RenderHeader(title, "正解 0 / 5", 80)
	if !strings.Contains(h, brand) || !strings.Contains(h, "正解 0 / 5") {
		t.Error("brand and status must survive a long title")
	}
}

func TestRenderFooter(t *testing.T) {
	f := RenderFooter([]KeyHint{{Key: "Enter", Description: "Select"}, {Key: "Esc", Description: "Back"}}, 80)
	if !strings.Contains(f, "Enter") || !strings.Contains(f, "Back") {
		t.Errorf("footer missing hints: %q", f)
	}
}

func TestRenderFrame_Height(t *testing.T) {
	header := RenderHeader("t", "", 80)
	footer := RenderFooter(nil, 80)
	frame := RenderFrame(header, "body", footer, 80, 30)
	if h := lipgloss.Height(frame); h != 30 {
		t.Errorf("frame height = %d, want 30", h)
	}
}

func TestSizes(t *testing.T) {
	if !IsTooSmall(79, 30) || !IsTooSmall(100, 23) || IsTooSmall(80, 24) {
		t.Error("IsTooSmall thresholds")
	}
	if !IsCompact(99, 30) || !IsCompact(120, 20) || IsCompact(120, 30) {
		t.Error("IsCompact thresholds")
	}
	if !strings.Contains(RenderMinSizeMessage(60, 20), "60 x 20") {
		t.Error("expected current size in message")
	}
}

package commands

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

func TestRenderNameListTruncation(t *testing.T) {
	items := make([]any, 75)
	for i := range items {
		items[i] = fmt.Sprintf("Creator %02d", i)
	}

	var buf bytes.Buffer
	renderNameList(&buf, "Available creators", items)
	out := buf.String()

	if !strings.Contains(out, "✓ Available creators (75):") {
		t.Errorf("output missing header with total count:\n%s", out)
	}
	if got := strings.Count(out, "  - "); got != 50 {
		t.Errorf("rendered %d entries, want 50", got)
	}
	if !strings.Contains(out, "... and 25 more") {
		t.Errorf("output missing truncation note:\n%s", out)
	}
	if strings.Contains(out, "Creator 50") {
		t.Errorf("entry past the cutoff was rendered:\n%s", out)
	}
}

func TestRenderNameListNoTruncation(t *testing.T) {
	items := make([]any, 30)
	for i := range items {
		items[i] = fmt.Sprintf("Category %02d", i)
	}

	var buf bytes.Buffer
	renderNameList(&buf, "Available categories", items)
	out := buf.String()

	if got := strings.Count(out, "  - "); got != 30 {
		t.Errorf("rendered %d entries, want all 30", got)
	}
	if strings.Contains(out, "more") {
		t.Errorf("unexpected truncation note for a short list:\n%s", out)
	}
}

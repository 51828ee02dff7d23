package viewmodel

import (
	"testing"

	"tableflip.dev/prompter/pkg/collection"
	"tableflip.dev/prompter/pkg/notation"
)

func TestBuildRows(t *testing.T) {
	tags := collection.New("sky", "{{sunset}}", "1.50::castle::", "[blur]")
	rows := Build(tags, notation.StyleColon)
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}

	if rows[0].Weight != "1.00" || !rows[0].Has(ClassNeutral) {
		t.Fatalf("unexpected plain row: %+v", rows[0])
	}
	if rows[1].Text != "sunset" || rows[1].Positive != 2 || !rows[1].Has(ClassPositive) {
		t.Fatalf("unexpected bracket row: %+v", rows[1])
	}
	if rows[1].Rendered != "1.10::sunset::" {
		t.Fatalf("expected colon rendering, got %q", rows[1].Rendered)
	}
	if !rows[2].Has(ClassColon) || rows[2].Has(ClassPositive) {
		t.Fatalf("1.50 has no exact level, got %+v", rows[2])
	}
	if rows[3].Weight != "0.95" || !rows[3].Has(ClassNegative) {
		t.Fatalf("unexpected negative row: %+v", rows[3])
	}
	for i, r := range rows {
		if r.Index != i {
			t.Fatalf("row %d has index %d", i, r.Index)
		}
	}
}

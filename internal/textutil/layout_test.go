package textutil

import (
	"reflect"
	"strings"
	"testing"

	"pgregory.net/rapid"
)

func TestLayoutWrap(t *testing.T) {
	text := Text{Line{Raw("abcdef")}, Line{Raw("gh")}}
	got := Layout(text, 3, true, 0)
	want := []string{"abc", "def", "gh"}
	if !reflect.DeepEqual(rowStrings(got), want) {
		t.Fatalf("Layout = %q, want %q", rowStrings(got), want)
	}
}

func TestLayoutWrapCropsEachRow(t *testing.T) {
	text := Text{Line{Raw("abcdef")}}
	got := Layout(text, 3, true, 1)
	want := []string{"bc", "ef"}
	if !reflect.DeepEqual(rowStrings(got), want) {
		t.Fatalf("Layout = %q, want %q", rowStrings(got), want)
	}
}

func TestLayoutWrapNeverAddsEllipsis(t *testing.T) {
	got := Layout(Text{Line{Raw(strings.Repeat("x", 20))}}, 6, true, 0)
	for _, row := range got {
		if strings.Contains(row.String(), Ellipsis) {
			t.Fatalf("unexpected ellipsis in %q", row.String())
		}
	}
}

func TestLayoutNoWrapEllipsis(t *testing.T) {
	text := Text{Line{Styled("abc", styleA), Styled("defgh", styleB)}}
	got := Layout(text, 5, false, 0)
	if len(got) != 1 {
		t.Fatalf("expected one row, got %d", len(got))
	}
	row := got[0]
	if row.String() != "abcd…" {
		t.Fatalf("row = %q, want %q", row.String(), "abcd…")
	}
	if row.Width() != 5 {
		t.Fatalf("row width = %d, want 5", row.Width())
	}
	last := row[len(row)-1]
	if !strings.HasSuffix(last.Content, Ellipsis) || last.Style != styleB {
		t.Fatalf("ellipsis should keep the replaced cluster's style, got %#v", last)
	}
}

func TestLayoutNoWrapFitsUnchanged(t *testing.T) {
	got := Layout(Text{Line{Raw("abc")}}, 5, false, 0)
	if got[0].String() != "abc" {
		t.Fatalf("row = %q, want %q", got[0].String(), "abc")
	}
}

func TestLayoutNoWrapWideClusterAtEdge(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"wide cluster replaced", "ab中文", "ab …"},
		{"wide cluster straddles edge", "abc中", "abc…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Layout(Text{Line{Raw(tt.line)}}, 4, false, 0)
			if got[0].String() != tt.want || got[0].Width() != 4 {
				t.Fatalf("row = %q (width %d), want %q", got[0].String(), got[0].Width(), tt.want)
			}
		})
	}
}

func TestLayoutNoWrapOffsetPadsSplitCluster(t *testing.T) {
	got := Layout(Text{Line{Raw("a中bc")}}, 10, false, 2)
	if got[0].String() != " bc" {
		t.Fatalf("row = %q, want %q", got[0].String(), " bc")
	}
}

func TestLayoutOffsetPastLine(t *testing.T) {
	got := Layout(Text{Line{Raw("abc")}, Line{Raw("abcdefgh")}}, 4, false, 5)
	if got[0].String() != "" || got[1].String() != "fg…" {
		t.Fatalf("rows = %q", rowStrings(got))
	}
}

func TestLayoutScrolledTailKeepsEllipsis(t *testing.T) {
	got := Layout(Text{Line{Raw("abcdefgh")}, Line{Raw("abcd")}}, 5, false, 4)
	if got[0].String() != "efg…" {
		t.Fatalf("scrolled overflowing row = %q, want %q", got[0].String(), "efg…")
	}
	if got[1].String() != "" {
		t.Fatalf("short row = %q, want empty", got[1].String())
	}
}

func TestLayoutZeroWidth(t *testing.T) {
	if got := Layout(PlainText("abc"), 0, false, 0); len(got) != 0 {
		t.Fatalf("expected empty layout, got %q", rowStrings(got))
	}
}

func TestLayoutNoWrapRowsFit(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		line := lineGen(clusterGen()).Draw(rt, "line")
		maxWidth := rapid.IntRange(1, 10).Draw(rt, "maxWidth")
		offset := rapid.IntRange(0, 6).Draw(rt, "offset")
		rows := Layout(Text{line}, maxWidth, false, offset)
		if len(rows) != 1 {
			rt.Fatalf("expected one row, got %d", len(rows))
		}
		row := rows[0]
		visible := max(line.Width()-offset, 0)
		if line.Width() > maxWidth {
			want := min(visible, maxWidth)
			if row.Width() != want {
				rt.Fatalf("overflowing row %q width %d, want %d", row.String(), row.Width(), want)
			}
			if want > 0 && !strings.HasSuffix(row.String(), Ellipsis) {
				rt.Fatalf("overflowing row %q should end in an ellipsis", row.String())
			}
		} else if row.Width() != visible {
			rt.Fatalf("row %q width %d, want %d", row.String(), row.Width(), visible)
		}
	})
}

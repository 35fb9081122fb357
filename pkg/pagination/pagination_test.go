package pagination

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	p := Params{Page: 0, PageSize: 0}.Normalize()
	if p.Page != 1 {
		t.Errorf("expected page 1, got %d", p.Page)
	}
	if p.PageSize != DefaultPageSize {
		t.Errorf("expected default page size %d, got %d", DefaultPageSize, p.PageSize)
	}

	p = Params{Page: 4, PageSize: 25}.Normalize()
	if p.Page != 4 || p.PageSize != 25 {
		t.Errorf("valid params must pass through, got %+v", p)
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total, size, want int
	}{
		{0, 15, 1},
		{1, 15, 1},
		{15, 15, 1},
		{16, 15, 2},
		{32, 15, 3},
	}
	for _, c := range cases {
		p := Params{Page: 1, PageSize: c.size}
		if got := p.TotalPages(c.total); got != c.want {
			t.Errorf("TotalPages(%d) with size %d: expected %d, got %d", c.total, c.size, c.want, got)
		}
	}
}

func TestOffset(t *testing.T) {
	p := Params{Page: 3, PageSize: 15}
	if got := p.Offset(); got != 30 {
		t.Errorf("expected offset 30, got %d", got)
	}
}

func TestWindow_midRange(t *testing.T) {
	// Left of the window only page 2 is skipped, so it is expanded; the
	// right side skips 8 and 9 and collapses to a gap.
	got := Window(5, 10)
	want := []int{1, 2, 3, 4, 5, 6, 7, Gap, 10}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Window(5,10): expected %v, got %v", want, got)
	}
}

func TestWindow_bothSidesElided(t *testing.T) {
	got := Window(6, 12)
	want := []int{1, Gap, 4, 5, 6, 7, 8, Gap, 12}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Window(6,12): expected %v, got %v", want, got)
	}
}

func TestWindow_neverElidesSinglePage(t *testing.T) {
	// Between 1 and 3 only page 2 is skipped; it must be expanded, not
	// replaced with a gap.
	got := Window(5, 8)
	want := []int{1, 2, 3, 4, 5, 6, 7, 8}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Window(5,8): expected %v, got %v", want, got)
	}
}

func TestWindow_smallTotals(t *testing.T) {
	if got := Window(1, 1); !reflect.DeepEqual(got, []int{1}) {
		t.Errorf("Window(1,1): expected [1], got %v", got)
	}
	if got := Window(2, 5); !reflect.DeepEqual(got, []int{1, 2, 3, 4, 5}) {
		t.Errorf("Window(2,5): expected all pages, got %v", got)
	}
}

func TestWindow_clampsCurrent(t *testing.T) {
	if got := Window(99, 10); !reflect.DeepEqual(got, Window(10, 10)) {
		t.Errorf("current beyond total must clamp, got %v", got)
	}
	if got := Window(0, 10); !reflect.DeepEqual(got, Window(1, 10)) {
		t.Errorf("current below 1 must clamp, got %v", got)
	}
}

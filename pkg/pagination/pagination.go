// Package pagination holds the 1-indexed page arithmetic and the compact
// page-number window used by the inpatient list view.
package pagination

// DefaultPageSize is the list-view page size.
const DefaultPageSize = 15

// Gap marks an elided run of pages in a Window result.
const Gap = -1

// windowDelta is the number of neighbor pages shown on each side of the
// current page.
const windowDelta = 2

// Params holds 1-indexed pagination parameters.
type Params struct {
	Page     int
	PageSize int
}

// Normalize clamps the parameters to sane values: page at least 1, page size
// defaulting when unset.
func (p Params) Normalize() Params {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	return p
}

// TotalPages returns ceil(total / pageSize), never less than 1 so an empty
// result still renders a single page.
func (p Params) TotalPages(total int) int {
	p = p.Normalize()
	pages := (total + p.PageSize - 1) / p.PageSize
	if pages < 1 {
		pages = 1
	}
	return pages
}

// Offset returns the index of the first row on the page.
func (p Params) Offset() int {
	p = p.Normalize()
	return (p.Page - 1) * p.PageSize
}

// Window produces the compact page-number sequence for a pager: the first
// page, the last page and ±2 pages around current, with elided runs
// collapsed into a single Gap token. A run of exactly one skipped page is
// shown as that page instead of a Gap, so a single page is never elided.
func Window(current, total int) []int {
	if total < 1 {
		total = 1
	}
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}

	var kept []int
	for i := 1; i <= total; i++ {
		if i == 1 || i == total || (i >= current-windowDelta && i <= current+windowDelta) {
			kept = append(kept, i)
		}
	}

	var out []int
	prev := 0
	for _, page := range kept {
		if prev != 0 {
			switch {
			case page-prev == 2:
				out = append(out, prev+1)
			case page-prev > 2:
				out = append(out, Gap)
			}
		}
		out = append(out, page)
		prev = page
	}
	return out
}

package patient

import (
	"sort"
	"strings"
)

// FilterAll is the sentinel meaning "no filtering" for an exact-match filter.
const FilterAll = "Semua"

// DefaultPageSize is the list-view page size.
const DefaultPageSize = 15

// Sort directions.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// SortKeys is the allow-list of sortable fields. Unknown keys fall back to
// the default ordering (admission date descending).
var SortKeys = []string{"name", "admissionDate", "id", "doctor", "roomName", "status"}

// QuerySpec describes one list-view query: free-text search, exact-match
// filters, sort order and page selection. Zero values (or FilterAll) mean
// "match everything" for the search and filter dimensions.
type QuerySpec struct {
	Search        string
	Status        string
	Doctor        string
	RoomName      string
	PaymentMethod string
	Gender        string

	SortKey string
	SortDir string

	Page     int
	PageSize int
}

// QueryResult is the visible page plus its metadata.
type QueryResult struct {
	Page         []*Record
	TotalMatched int
	TotalPages   int
	CurrentPage  int
}

// Query filters, sorts and paginates a snapshot of the collection. The input
// slice is not modified. Filters combine with logical AND; the search text
// matches name or record number case-insensitively, or the NIK as a plain
// substring (logical OR across the three). Sorting is stable: records with
// equal keys keep their input order. Missing sort values go last regardless
// of direction.
func Query(records []*Record, spec QuerySpec) QueryResult {
	matched := make([]*Record, 0, len(records))
	for _, r := range records {
		if spec.matches(r) {
			matched = append(matched, r)
		}
	}

	sortRecords(matched, spec.SortKey, spec.SortDir == SortDesc)

	size := spec.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	totalPages := (len(matched) + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}

	page := spec.Page
	if page < 1 {
		page = 1
	}
	start := (page - 1) * size
	end := start + size
	if start > len(matched) {
		start = len(matched)
	}
	if end > len(matched) {
		end = len(matched)
	}

	return QueryResult{
		Page:         matched[start:end],
		TotalMatched: len(matched),
		TotalPages:   totalPages,
		CurrentPage:  page,
	}
}

func (s QuerySpec) matches(r *Record) bool {
	if !matchesSearch(r, s.Search) {
		return false
	}
	if !matchesExact(string(r.Status), s.Status) {
		return false
	}
	if !matchesExact(r.Doctor, s.Doctor) {
		return false
	}
	if !matchesExact(r.RoomName, s.RoomName) {
		return false
	}
	if !matchesExact(string(r.PaymentMethod), s.PaymentMethod) {
		return false
	}
	return matchesExact(string(r.Gender), s.Gender)
}

func matchesSearch(r *Record, term string) bool {
	if term == "" {
		return true
	}
	lower := strings.ToLower(term)
	return strings.Contains(strings.ToLower(r.Name), lower) ||
		strings.Contains(strings.ToLower(r.ID), lower) ||
		strings.Contains(r.NIK, term)
}

func matchesExact(value, filter string) bool {
	return filter == "" || filter == FilterAll || value == filter
}

// sortRecords orders the slice in place. The default (empty or unknown key)
// is admission date descending.
func sortRecords(records []*Record, key string, desc bool) {
	switch key {
	case "name", "id", "doctor", "roomName", "status":
		strVal := func(r *Record) string {
			switch key {
			case "name":
				return r.Name
			case "id":
				return r.ID
			case "doctor":
				return r.Doctor
			case "roomName":
				return r.RoomName
			default:
				return string(r.Status)
			}
		}
		sort.SliceStable(records, func(i, j int) bool {
			a, b := strVal(records[i]), strVal(records[j])
			if (a == "") != (b == "") {
				return b == "" // missing values sort last, both directions
			}
			if desc {
				return a > b
			}
			return a < b
		})
	case "admissionDate":
		sort.SliceStable(records, func(i, j int) bool {
			a, b := records[i].AdmissionDate, records[j].AdmissionDate
			if a.IsZero() != b.IsZero() {
				return b.IsZero()
			}
			if desc {
				return a.After(b)
			}
			return a.Before(b)
		})
	default:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].AdmissionDate.After(records[j].AdmissionDate)
		})
	}
}

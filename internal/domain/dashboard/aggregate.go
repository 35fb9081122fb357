// Package dashboard derives the aggregate statistics shown on the admission
// dashboard: the monthly admission histogram, the top-diagnosis ranking and
// the per-class bed occupancy. All aggregations run over the full record
// collection, never over a filtered view.
package dashboard

import (
	"sort"
	"time"

	"github.com/medinest/simrs/internal/domain/patient"
)

// MonthLabels are the fixed histogram labels, January first.
var MonthLabels = []string{"Jan", "Feb", "Mar", "Apr", "Mei", "Jun", "Jul", "Agu", "Sep", "Okt", "Nov", "Des"}

// Bar-size floors that keep empty buckets visible in the rendered charts.
const (
	minBarHeightPct = 10.0
	minBarWidthPct  = 5.0
)

// Occupancy status labels and their percentage thresholds.
const (
	OccupancyFull      = "Penuh"    // > 90%
	OccupancyLimited   = "Terbatas" // > 70%
	OccupancyAvailable = "Tersedia"
)

// MonthBucket is one column of the 12-month admission histogram.
type MonthBucket struct {
	Label     string  `json:"label"`
	Count     int     `json:"count"`
	HeightPct float64 `json:"height_pct"`
	Active    bool    `json:"active"` // bucket of the current calendar month
}

// MonthlyAdmissions buckets every record by the calendar month of its
// admission date, regardless of year. Bar heights are normalized against the
// busiest month with a floor that keeps empty buckets visible.
func MonthlyAdmissions(records []*patient.Record, now time.Time) []MonthBucket {
	var counts [12]int
	for _, r := range records {
		counts[int(r.AdmissionDate.Month())-1]++
	}

	maxCount := 1
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}

	buckets := make([]MonthBucket, 12)
	for i, label := range MonthLabels {
		height := float64(counts[i]) / float64(maxCount) * 100
		if height < minBarHeightPct {
			height = minBarHeightPct
		}
		buckets[i] = MonthBucket{
			Label:     label,
			Count:     counts[i],
			HeightPct: height,
			Active:    i == int(now.Month())-1,
		}
	}
	return buckets
}

// DiagnosisCount is one row of the top-diagnosis ranking.
type DiagnosisCount struct {
	Name     string  `json:"name"`
	Count    int     `json:"count"`
	WidthPct float64 `json:"width_pct"`
}

// TopDiagnoses groups records by exact diagnosis string and returns the ten
// most frequent. Ties keep first-encounter order. Bar widths are relative to
// the rank-one count, floored for visibility.
func TopDiagnoses(records []*patient.Record) []DiagnosisCount {
	counts := map[string]int{}
	var order []string
	for _, r := range records {
		if _, seen := counts[r.Diagnosis]; !seen {
			order = append(order, r.Diagnosis)
		}
		counts[r.Diagnosis]++
	}

	ranked := make([]DiagnosisCount, 0, len(order))
	for _, name := range order {
		ranked = append(ranked, DiagnosisCount{Name: name, Count: counts[name]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if len(ranked) > 10 {
		ranked = ranked[:10]
	}

	topCount := 1
	if len(ranked) > 0 && ranked[0].Count > topCount {
		topCount = ranked[0].Count
	}
	for i := range ranked {
		width := float64(ranked[i].Count) / float64(topCount) * 100
		if width < minBarWidthPct {
			width = minBarWidthPct
		}
		ranked[i].WidthPct = width
	}
	return ranked
}

// RoomOccupancy is the bed usage of one room class against its fixed
// capacity.
type RoomOccupancy struct {
	Class      patient.RoomClass `json:"class"`
	Occupied   int               `json:"occupied"`
	Total      int               `json:"total"`
	Percentage int               `json:"percentage"`
	Status     string            `json:"status"`
}

// BedOccupancy counts admitted patients per room class against the fixed
// capacity table. The percentage is floored and capped at 100: running over
// capacity is a valid state that must not overflow the display.
func BedOccupancy(records []*patient.Record) []RoomOccupancy {
	usage := map[patient.RoomClass]int{}
	for _, r := range records {
		usage[r.RoomClass]++
	}

	out := make([]RoomOccupancy, 0, len(patient.RoomClasses))
	for _, cls := range patient.RoomClasses {
		occupied := usage[cls]
		total := cls.BedCapacity()
		pct := occupied * 100 / total
		if pct > 100 {
			pct = 100
		}
		out = append(out, RoomOccupancy{
			Class:      cls,
			Occupied:   occupied,
			Total:      total,
			Percentage: pct,
			Status:     occupancyStatus(pct),
		})
	}
	return out
}

func occupancyStatus(pct int) string {
	switch {
	case pct > 90:
		return OccupancyFull
	case pct > 70:
		return OccupancyLimited
	default:
		return OccupancyAvailable
	}
}

// TotalOccupancy is the combined occupancy percentage across every room
// class, floored.
func TotalOccupancy(occupancy []RoomOccupancy) int {
	totalBeds, occupiedBeds := 0, 0
	for _, o := range occupancy {
		totalBeds += o.Total
		occupiedBeds += o.Occupied
	}
	if totalBeds == 0 {
		return 0
	}
	return occupiedBeds * 100 / totalBeds
}

package dashboard

import (
	"context"
	"fmt"

	"github.com/medinest/simrs/internal/domain/patient"
	"github.com/medinest/simrs/internal/platform/clock"
)

// Overview bundles everything the dashboard view renders.
type Overview struct {
	TotalPatients  int                        `json:"total_patients"`
	StatusCounts   map[patient.Status]int     `json:"status_counts"`
	Monthly        []MonthBucket              `json:"monthly"`
	TopDiagnoses   []DiagnosisCount           `json:"top_diagnoses"`
	Occupancy      []RoomOccupancy            `json:"occupancy"`
	TotalOccupancy int                        `json:"total_occupancy"`
	Recent         []*patient.Record          `json:"recent"` // newest admissions, up to three
}

// Service computes dashboard statistics over the patient repository.
type Service struct {
	repo patient.Repository
	clk  clock.Clock
}

func NewService(repo patient.Repository, clk clock.Clock) *Service {
	return &Service{repo: repo, clk: clk}
}

// Overview loads the full collection and derives all dashboard aggregates.
// An empty collection degrades to zero counts and 0% occupancy.
func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	records, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load records: %w", err)
	}

	statusCounts := map[patient.Status]int{}
	for _, r := range records {
		statusCounts[r.Status]++
	}

	recent := records
	if len(recent) > 3 {
		recent = recent[:3]
	}

	occ := BedOccupancy(records)
	return &Overview{
		TotalPatients:  len(records),
		StatusCounts:   statusCounts,
		Monthly:        MonthlyAdmissions(records, s.clk.Now()),
		TopDiagnoses:   TopDiagnoses(records),
		Occupancy:      occ,
		TotalOccupancy: TotalOccupancy(occ),
		Recent:         recent,
	}, nil
}

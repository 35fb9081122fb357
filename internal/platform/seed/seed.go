// Package seed generates a reproducible synthetic admission dataset for
// demo environments and tests. The generator is fully deterministic for a
// given seed value and reference time.
package seed

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/medinest/simrs/internal/domain/patient"
)

// Config controls the volume and shape of the generated dataset.
type Config struct {
	Count int
	Seed  int64
	Now   time.Time
}

// DefaultConfig returns the dataset shape used by demo deployments.
func DefaultConfig(now time.Time) Config {
	return Config{Count: 200, Seed: 1, Now: now}
}

var names = []string{
	"Andi Pratama", "Siti Aminah", "Budi Santoso", "Dewi Lestari",
	"Eko Wijaya", "Fitri Rahayu", "Guntur Saputra", "Hani Permata",
	"Iwan Setiawan", "Joko Susilo", "Kartika Sari", "Lina Marlina",
	"Maman Abdurrahman", "Nina Zatulini", "Oman Sukirman", "Putri Wangi",
	"Qory Sandioriva", "Rian Pradana", "Siska Amelia", "Taufik Hidayat",
}

var diagnoses = []string{
	"Demam Berdarah Dengue (DBD)",
	"Tipes (Typhoid Fever)",
	"Radang Paru (Pneumonia)",
	"Diabetes Melitus",
	"Hipertensi",
	"Appendisitis Akut",
	"Fraktur Femur",
	"Stroke Iskemik",
	"Gagal Ginjal Akut",
	"Asma Bronkial",
	"Gastritis Akut",
	"Infeksi Saluran Kemih",
}

var paymentMethods = []patient.PaymentMethod{
	patient.PaySelf,
	patient.PayBPJS,
	patient.PayPrivate,
	patient.PayCorporate,
}

// Records builds cfg.Count admission records spread over the 365 days before
// cfg.Now, ordered newest first. Every third record is an external referral;
// the rest arrive through the emergency department.
func Records(cfg Config) []*patient.Record {
	rnd := rand.New(rand.NewSource(cfg.Seed))
	dob := time.Date(1990, time.May, 15, 0, 0, 0, 0, cfg.Now.Location())

	out := make([]*patient.Record, 0, cfg.Count)
	for i := 1; i <= cfg.Count; i++ {
		admitted := cfg.Now.AddDate(0, 0, -rnd.Intn(365))

		name := names[i%len(names)]
		if i%3 == 0 {
			name += " Jr."
		}

		gender := patient.GenderFemale
		if i%2 == 0 {
			gender = patient.GenderMale
		}

		rec := &patient.Record{
			ID:           fmt.Sprintf("RM-%d", 2024000+i),
			NIK:          fmt.Sprintf("3273%012d", 100000000000+rnd.Int63n(900000000000)),
			Name:         name,
			PlaceOfBirth: "Jakarta",
			DateOfBirth:  dob,
			Gender:       gender,
			Phone:        fmt.Sprintf("0812%08d", 10000000+rnd.Intn(90000000)),
			Address:      fmt.Sprintf("Jl. Raya Kesehatan No. %d", i),

			RegNumber:      fmt.Sprintf("REG-%d", 2024000000+i),
			AdmissionDate:  admitted,
			EntryWay:       patient.EntryEmergency,
			Doctor:         patient.Doctors[i%len(patient.Doctors)],
			Diagnosis:      diagnoses[i%len(diagnoses)],
			ChiefComplaint: fmt.Sprintf("Keluhan pasien nomor %d perlu diobservasi lebih lanjut.", i),

			RoomClass: patient.RoomClasses[i%len(patient.RoomClasses)],
			RoomName:  patient.Rooms[i%len(patient.Rooms)],
			BedNumber: fmt.Sprintf("Bed %d", (i%10)+1),

			Guardian: patient.Guardian{
				Name:     "Wali dari " + names[i%len(names)],
				Relation: patient.GuardianRelations[i%len(patient.GuardianRelations)],
				Phone:    "081200001111",
				Address:  "Sama dengan pasien",
			},

			PaymentMethod: paymentMethods[i%len(paymentMethods)],
			Status:        statusFor(i),
		}

		if i%2 == 0 {
			rec.InsuranceNumber = fmt.Sprintf("INS-%08d", 10000000+rnd.Intn(90000000))
			rec.BPJSClass = "Kelas 1"
		}
		if i%3 == 0 {
			rec.EntryWay = patient.EntryReferral
			rec.Referral = patient.Referral{
				Origin:       patient.ReferralOrigins[i%len(patient.ReferralOrigins)],
				Facility:     fmt.Sprintf("Puskesmas/Klinik %d", i%5),
				LetterNumber: fmt.Sprintf("LTR-%d-2024", i),
				LetterDate:   admitted.AddDate(0, 0, -1),
				Diagnosis:    diagnoses[i%len(diagnoses)],
			}
		}

		out = append(out, rec)
	}

	sort.SliceStable(out, func(a, b int) bool {
		return out[a].AdmissionDate.After(out[b].AdmissionDate)
	})
	return out
}

func statusFor(i int) patient.Status {
	switch i % 3 {
	case 0:
		return patient.StatusStable
	case 1:
		return patient.StatusCritical
	default:
		return patient.StatusRecovering
	}
}

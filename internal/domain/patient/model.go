package patient

import (
	"fmt"
	"math/rand"
	"time"
)

// Gender of a patient as captured on the admission form.
type Gender string

const (
	GenderMale   Gender = "Laki-laki"
	GenderFemale Gender = "Perempuan"
)

func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale
}

// Status is the clinical status assigned by the system. New admissions always
// start at StatusStable; admission edits never change it.
type Status string

const (
	StatusStable     Status = "Stabil"
	StatusRecovering Status = "Pemulihan"
	StatusCritical   Status = "Kritis"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusStable, StatusRecovering, StatusCritical:
		return true
	}
	return false
}

// EntryWay is the channel through which the patient was admitted.
type EntryWay string

const (
	EntryEmergency  EntryWay = "IGD"
	EntryOutpatient EntryWay = "Rawat Jalan-Poli"
	EntryReferral   EntryWay = "Rujukan Luar"
)

// RoomClass is the ward class a patient is placed in. Each class has a fixed
// bed capacity used by the occupancy dashboard.
type RoomClass string

const (
	RoomVVIP   RoomClass = "VVIP"
	RoomVIP    RoomClass = "VIP"
	RoomClass1 RoomClass = "Kelas 1"
	RoomClass2 RoomClass = "Kelas 2"
	RoomClass3 RoomClass = "Kelas 3"
	RoomICU    RoomClass = "ICU"
)

// RoomClasses lists every room class in display order.
var RoomClasses = []RoomClass{RoomVVIP, RoomVIP, RoomClass1, RoomClass2, RoomClass3, RoomICU}

var bedCapacities = map[RoomClass]int{
	RoomVVIP:   10,
	RoomVIP:    20,
	RoomClass1: 40,
	RoomClass2: 60,
	RoomClass3: 100,
	RoomICU:    15,
}

// BedCapacity returns the fixed number of beds for the class, or 0 for an
// unknown class.
func (rc RoomClass) BedCapacity() int {
	return bedCapacities[rc]
}

// PaymentMethod is the cost-guarantee scheme declared on admission.
type PaymentMethod string

const (
	PaySelf      PaymentMethod = "Umum-Pribadi"
	PayBPJS      PaymentMethod = "BPJS Kesehatan"
	PayPrivate   PaymentMethod = "Asuransi Swasta"
	PayCorporate PaymentMethod = "Jaminan Perusahaan"
)

// Doctors is the fixed roster of attending physicians (DPJP).
var Doctors = []string{
	"dr. Kennedy Jones, Sp.PD",
	"dr. Lillie Koss, Sp.B",
	"dr. Amelia Toy, Sp.JP",
	"dr. Julius Kihn, Sp.OT",
	"dr. Siti Aminah, Sp.A",
	"dr. Hendra Wijaya, Sp.An",
}

// Rooms is the fixed list of ward names.
var Rooms = []string{
	"Paviliun Anggrek",
	"Bangsal Mawar",
	"Ruang Melati",
	"Unit Teratai",
	"ICU Central",
}

// ReferralOrigins lists the accepted referral source categories.
var ReferralOrigins = []string{"Puskesmas", "RS Lain", "Klinik", "Dokter Pribadi"}

// GuardianRelations lists the accepted guardian relationship values.
var GuardianRelations = []string{"Suami", "Istri", "Orang Tua", "Anak", "Saudara", "Lainnya"}

// Referral holds the external-referral sub-record. It is meaningful only when
// the record's entry way is EntryReferral; otherwise it is kept zero-valued.
type Referral struct {
	Origin       string    `json:"origin,omitempty"`
	Facility     string    `json:"facility,omitempty"`
	LetterNumber string    `json:"letterNumber,omitempty"`
	LetterDate   time.Time `json:"letterDate,omitempty"`
	Diagnosis    string    `json:"diagnosis,omitempty"`
	File         string    `json:"file,omitempty"`
}

// IsZero reports whether no referral field is set.
func (r Referral) IsZero() bool {
	return r == Referral{}
}

// Guardian is the responsible party for the patient.
type Guardian struct {
	Name     string `json:"name"`
	Relation string `json:"relation"`
	Phone    string `json:"phone"`
	Address  string `json:"address,omitempty"`
}

// Record is one inpatient admission case. A record is one admission, not a
// person across multiple admissions.
type Record struct {
	// Identity
	ID           string    `json:"id"` // medical record number (No. RM)
	NIK          string    `json:"nik"`
	Name         string    `json:"name"`
	PlaceOfBirth string    `json:"pob,omitempty"`
	DateOfBirth  time.Time `json:"dob"`
	Gender       Gender    `json:"gender"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`

	// Visit registration
	RegNumber      string    `json:"regNumber"`
	AdmissionDate  time.Time `json:"admissionDate"`
	EntryWay       EntryWay  `json:"entryWay"`
	Doctor         string    `json:"doctor"` // DPJP
	Diagnosis      string    `json:"diagnosis"`
	ChiefComplaint string    `json:"chiefComplaint,omitempty"`

	Referral Referral `json:"referral,omitempty"`

	// Room placement
	RoomClass RoomClass `json:"roomClass"`
	RoomName  string    `json:"roomName"`
	BedNumber string    `json:"bedNumber"`

	Guardian Guardian `json:"guardian"`

	// Cost guarantee
	PaymentMethod   PaymentMethod `json:"paymentMethod"`
	InsuranceNumber string        `json:"insuranceNumber,omitempty"`
	BPJSClass       string        `json:"bpjsClass,omitempty"`

	Status Status `json:"status"`
}

// Clone returns a copy of the record.
func (r *Record) Clone() *Record {
	c := *r
	return &c
}

// FormValues is the admission form draft: every Record field except the
// system-assigned ID and clinical status. Referral and insurance sub-fields
// are always present in the draft and only take effect under their
// discriminant (entry way resp. payment method).
type FormValues struct {
	NIK            string    `json:"nik"`
	Name           string    `json:"name"`
	PlaceOfBirth   string    `json:"pob,omitempty"`
	DateOfBirth    time.Time `json:"dob"`
	Gender         Gender    `json:"gender"`
	Phone          string    `json:"phone"`
	Address        string    `json:"address"`
	RegNumber      string    `json:"regNumber"`
	AdmissionDate  time.Time `json:"admissionDate"`
	EntryWay       EntryWay  `json:"entryWay"`
	Doctor         string    `json:"doctor"`
	Diagnosis      string    `json:"diagnosis"`
	ChiefComplaint string    `json:"chiefComplaint,omitempty"`

	Referral Referral `json:"referral,omitempty"`

	RoomClass RoomClass `json:"roomClass"`
	RoomName  string    `json:"roomName"`
	BedNumber string    `json:"bedNumber"`

	Guardian Guardian `json:"guardian"`

	PaymentMethod   PaymentMethod `json:"paymentMethod"`
	InsuranceNumber string        `json:"insuranceNumber,omitempty"`
	BPJSClass       string        `json:"bpjsClass,omitempty"`
}

// apply overwrites every form-editable field of the record with the draft
// values. ID and Status are left untouched.
func (v FormValues) apply(r *Record) {
	r.NIK = v.NIK
	r.Name = v.Name
	r.PlaceOfBirth = v.PlaceOfBirth
	r.DateOfBirth = v.DateOfBirth
	r.Gender = v.Gender
	r.Phone = v.Phone
	r.Address = v.Address
	r.RegNumber = v.RegNumber
	r.AdmissionDate = v.AdmissionDate
	r.EntryWay = v.EntryWay
	r.Doctor = v.Doctor
	r.Diagnosis = v.Diagnosis
	r.ChiefComplaint = v.ChiefComplaint
	r.Referral = v.Referral
	r.RoomClass = v.RoomClass
	r.RoomName = v.RoomName
	r.BedNumber = v.BedNumber
	r.Guardian = v.Guardian
	r.PaymentMethod = v.PaymentMethod
	r.InsuranceNumber = v.InsuranceNumber
	r.BPJSClass = v.BPJSClass
}

// NewRecordID builds a medical record number of the form RM-<yyyymmdd>-<nnnn>
// where nnnn is a random four-digit suffix.
func NewRecordID(now time.Time, rnd *rand.Rand) string {
	return fmt.Sprintf("RM-%s-%04d", now.Format("20060102"), 1000+rnd.Intn(9000))
}

// NewRegNumber builds a registration number from the last eight digits of the
// current unix-millisecond timestamp.
func NewRegNumber(now time.Time) string {
	return fmt.Sprintf("REG-%08d", now.UnixMilli()%100000000)
}

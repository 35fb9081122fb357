package patient

import (
	"sort"
	"strings"
)

// ValidationErrors maps a form field name to a human-readable message.
// Absence of a key means the field is valid.
type ValidationErrors map[string]string

// Valid reports whether the draft passed every rule.
func (e ValidationErrors) Valid() bool { return len(e) == 0 }

// Fields returns the offending field names in sorted order.
func (e ValidationErrors) Fields() []string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// Validate checks an admission draft against the required and conditional
// field rules. Every rule is evaluated independently; all applicable errors
// are returned together.
//
// The NIK rule checks length only (16 characters), not digit content.
func Validate(v FormValues) ValidationErrors {
	errs := ValidationErrors{}

	if strings.TrimSpace(v.Name) == "" {
		errs["name"] = "Wajib diisi"
	}
	if len(v.NIK) != 16 {
		errs["nik"] = "NIK harus 16 digit"
	}
	if v.Phone == "" {
		errs["phone"] = "Wajib diisi"
	}
	if v.DateOfBirth.IsZero() {
		errs["dob"] = "Wajib diisi"
	}
	if v.Doctor == "" {
		errs["doctor"] = "Pilih dokter"
	}
	if v.RoomName == "" {
		errs["roomName"] = "Wajib diisi"
	}

	// Referral fields are mandatory as a group only for external referrals.
	if v.EntryWay == EntryReferral {
		if v.Referral.Facility == "" {
			errs["referralFacility"] = "Wajib diisi"
		}
		if v.Referral.LetterNumber == "" {
			errs["referralLetterNumber"] = "Wajib diisi"
		}
	}

	return errs
}

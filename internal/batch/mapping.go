package batch

import (
	"strings"

	"github.com/jayempx/vcard2qr/internal/vcard"
)

// Field keys a column can map to.
const (
	FieldFirstName    = "first_name"
	FieldLastName     = "last_name"
	FieldOrganization = "organization"
	FieldTitle        = "title"
	FieldEmail        = "email"
	FieldMobile       = "mobile"
	FieldWork         = "work"
	FieldHome         = "home"
	FieldAddress      = "address"
	FieldLinkedIn     = "linkedin"
)

// Mapping is an explicit schema table from spreadsheet column header
// (lowercased) to ContactRecord field key. Headers absent from the mapping
// are imported as custom fields keyed by the header text, so arbitrary extra
// columns survive the conversion.
type Mapping map[string]string

// DefaultMapping matches the contact form's field labels plus a few common
// spellings.
func DefaultMapping() Mapping {
	return Mapping{
		"first name":   FieldFirstName,
		"firstname":    FieldFirstName,
		"last name":    FieldLastName,
		"lastname":     FieldLastName,
		"organization": FieldOrganization,
		"organisation": FieldOrganization,
		"company":      FieldOrganization,
		"title":        FieldTitle,
		"email":        FieldEmail,
		"mobile":       FieldMobile,
		"phone":        FieldMobile,
		"work":         FieldWork,
		"switchboard":  FieldWork,
		"home":         FieldHome,
		"address":      FieldAddress,
		"linkedin":     FieldLinkedIn,
	}
}

// Record builds a ContactRecord from one data row using the mapping. Cells
// beyond the header length are ignored; missing cells read as empty.
func (m Mapping) Record(header, row []string) vcard.ContactRecord {
	var rec vcard.ContactRecord

	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	for i, col := range header {
		val := cell(i)
		if val == "" {
			continue
		}
		switch m[strings.ToLower(strings.TrimSpace(col))] {
		case FieldFirstName:
			rec.FirstName = val
		case FieldLastName:
			rec.LastName = val
		case FieldOrganization:
			rec.Organization = val
		case FieldTitle:
			rec.Title = val
		case FieldEmail:
			rec.Email = val
		case FieldMobile:
			rec.Phones = append(rec.Phones, vcard.Phone{Type: vcard.PhoneMobile, Number: val})
		case FieldWork:
			rec.Phones = append(rec.Phones, vcard.Phone{Type: vcard.PhoneWork, Number: val})
		case FieldHome:
			rec.Phones = append(rec.Phones, vcard.Phone{Type: vcard.PhoneHome, Number: val})
		case FieldAddress:
			rec.Address = val
		case FieldLinkedIn:
			rec.LinkedIn = val
		default:
			if rec.Custom == nil {
				rec.Custom = make(map[string]string)
			}
			rec.Custom[strings.TrimSpace(col)] = val
		}
	}

	return rec
}

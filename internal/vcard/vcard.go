// Package vcard builds vCard 3.0 payloads from structured contact data and
// parses them back.
package vcard

import (
	"errors"
	"sort"
	"strings"

	govcard "github.com/emersion/go-vcard"
)

// Errors
var (
	ErrEmptyContact = errors.New("contact has no usable fields")
	ErrEmptyVCard   = errors.New("vCard data is empty")
)

// PhoneType is the vCard TYPE parameter value for a phone number.
type PhoneType string

const (
	PhoneMobile PhoneType = "CELL"
	PhoneWork   PhoneType = "WORK"
	PhoneHome   PhoneType = "HOME"
)

// Phone is a single phone number tagged with its type.
type Phone struct {
	Type   PhoneType
	Number string
}

// ContactRecord holds the contact fields that can be serialized into a vCard.
// A record is immutable once built; Build never mutates it.
type ContactRecord struct {
	FirstName    string
	LastName     string
	Organization string
	Title        string
	Email        string
	Phones       []Phone
	Address      string // free-text, mapped to the street component of ADR
	LinkedIn     string
	Custom       map[string]string // label -> value, emitted as X- extensions
}

// IsEmpty reports whether every field of the record is blank.
func (r ContactRecord) IsEmpty() bool {
	for _, s := range []string{r.FirstName, r.LastName, r.Organization, r.Title, r.Email, r.Address, r.LinkedIn} {
		if strings.TrimSpace(s) != "" {
			return false
		}
	}
	for _, p := range r.Phones {
		if strings.TrimSpace(p.Number) != "" {
			return false
		}
	}
	for k, v := range r.Custom {
		if strings.TrimSpace(k) != "" && strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// escaper applies vCard 3.0 text escaping to a single value component.
var escaper = strings.NewReplacer(
	"\\", "\\\\",
	"\n", "\\n",
	"\r\n", "\\n",
	",", "\\,",
	";", "\\;",
)

func escape(s string) string {
	return escaper.Replace(s)
}

// Build composes a vCard 3.0 string from the record.
//
// Property order is fixed so that identical input always produces
// byte-identical output: N, FN, ORG, TITLE, TEL (input order), EMAIL, ADR,
// URL, then X- extensions with labels sorted. Blank fields are omitted
// entirely. Lines are CRLF-terminated per RFC 2426.
func Build(rec ContactRecord) (string, error) {
	if rec.IsEmpty() {
		return "", ErrEmptyContact
	}

	lines := []string{"BEGIN:VCARD", "VERSION:3.0"}

	first := strings.TrimSpace(rec.FirstName)
	last := strings.TrimSpace(rec.LastName)
	if first != "" || last != "" {
		lines = append(lines, "N:"+escape(last)+";"+escape(first)+";;;")
		lines = append(lines, "FN:"+escape(strings.TrimSpace(first+" "+last)))
	}

	if org := strings.TrimSpace(rec.Organization); org != "" {
		lines = append(lines, "ORG:"+escape(org))
	}
	if title := strings.TrimSpace(rec.Title); title != "" {
		lines = append(lines, "TITLE:"+escape(title))
	}

	for _, p := range rec.Phones {
		if num := strings.TrimSpace(p.Number); num != "" {
			typ := p.Type
			if typ == "" {
				typ = PhoneMobile
			}
			lines = append(lines, "TEL;TYPE="+string(typ)+":"+escape(num))
		}
	}

	if email := strings.TrimSpace(rec.Email); email != "" {
		lines = append(lines, "EMAIL;TYPE=INTERNET:"+escape(email))
	}

	if addr := strings.TrimSpace(rec.Address); addr != "" {
		// ADR components: pobox;ext;street;locality;region;code;country
		lines = append(lines, "ADR;TYPE=WORK:;;"+escape(addr)+";;;;")
	}

	if url := strings.TrimSpace(rec.LinkedIn); url != "" {
		lines = append(lines, "URL:"+escape(url))
	}

	for _, label := range sortedCustomLabels(rec.Custom) {
		val := strings.TrimSpace(rec.Custom[label])
		key := normalizeLabel(label)
		if key != "" && val != "" {
			lines = append(lines, "X-"+key+":"+escape(val))
		}
	}

	lines = append(lines, "END:VCARD")
	return strings.Join(lines, "\r\n") + "\r\n", nil
}

func sortedCustomLabels(custom map[string]string) []string {
	labels := make([]string, 0, len(custom))
	for k := range custom {
		labels = append(labels, k)
	}
	sort.Strings(labels)
	return labels
}

// normalizeLabel turns an arbitrary custom-field label into an X- property
// suffix: trimmed, uppercased, spaces replaced by underscores.
func normalizeLabel(label string) string {
	return strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(label)), " ", "_")
}

// unescape reverses the component escaping applied by Build for characters the
// go-vcard decoder leaves alone.
var unescaper = strings.NewReplacer(
	"\\;", ";",
	"\\,", ",",
	"\\n", "\n",
	"\\N", "\n",
	"\\\\", "\\",
)

func unescape(s string) string {
	return unescaper.Replace(s)
}

// Parse decodes a vCard payload back into a ContactRecord. It is the inverse
// of Build for the fields Build emits; unrecognized standard properties are
// dropped and X- extensions become custom fields.
func Parse(payload string) (ContactRecord, error) {
	var rec ContactRecord
	if strings.TrimSpace(payload) == "" {
		return rec, ErrEmptyVCard
	}

	card, err := govcard.NewDecoder(strings.NewReader(payload)).Decode()
	if err != nil {
		return rec, err
	}

	if n := card.Get(govcard.FieldName); n != nil {
		parts := strings.SplitN(n.Value, ";", 5)
		if len(parts) > 0 {
			rec.LastName = unescape(parts[0])
		}
		if len(parts) > 1 {
			rec.FirstName = unescape(parts[1])
		}
	}
	if rec.FirstName == "" && rec.LastName == "" {
		if fn := card.Get(govcard.FieldFormattedName); fn != nil {
			rec.FirstName = unescape(fn.Value)
		}
	}

	if org := card.Get(govcard.FieldOrganization); org != nil {
		rec.Organization = unescape(org.Value)
	}
	if title := card.Get(govcard.FieldTitle); title != nil {
		rec.Title = unescape(title.Value)
	}
	if email := card.Get(govcard.FieldEmail); email != nil {
		rec.Email = unescape(email.Value)
	}

	for _, f := range card[govcard.FieldTelephone] {
		typ := PhoneMobile
		switch strings.ToUpper(f.Params.Get(govcard.ParamType)) {
		case string(PhoneWork):
			typ = PhoneWork
		case string(PhoneHome):
			typ = PhoneHome
		}
		if num := strings.TrimSpace(f.Value); num != "" {
			rec.Phones = append(rec.Phones, Phone{Type: typ, Number: unescape(num)})
		}
	}

	if adr := card.Get(govcard.FieldAddress); adr != nil {
		parts := strings.SplitN(adr.Value, ";", 7)
		if len(parts) > 2 {
			rec.Address = unescape(parts[2])
		}
	}
	if url := card.Get(govcard.FieldURL); url != nil {
		rec.LinkedIn = unescape(url.Value)
	}

	for key, fields := range card {
		if !strings.HasPrefix(key, "X-") {
			continue
		}
		for _, f := range fields {
			if f.Value == "" {
				continue
			}
			if rec.Custom == nil {
				rec.Custom = make(map[string]string)
			}
			rec.Custom[strings.TrimPrefix(key, "X-")] = unescape(f.Value)
		}
	}

	return rec, nil
}

package model

import (
	"regexp"
	"strings"

	cda "github.com/gofhir/cda"
	"github.com/gofhir/cda/vocab"
)

var (
	dvaNumberPattern        = regexp.MustCompile(`^[NVQWST][A-Z ]{1,3}[0-9]{1,6}[A-Z]?$`)
	prescriberNumberPattern = regexp.MustCompile(`^[0-9]{7}$`)
	pharmacyApprovalPattern = regexp.MustCompile(`^[0-9]{5}[A-Z]$`)
	medicareWeights         = [8]int{1, 3, 7, 9, 1, 3, 7, 9}
)

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// LuhnCheckDigit returns the Luhn check digit for payload.
func LuhnCheckDigit(payload string) (int, error) {
	if !allDigits(payload) {
		return 0, cda.NewArgumentError("payload", payload, "must be digits")
	}
	sum := 0
	double := true
	for i := len(payload) - 1; i >= 0; i-- {
		d := int(payload[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return (10 - sum%10) % 10, nil
}

// LuhnValid reports whether number ends in a correct Luhn check digit.
func LuhnValid(number string) bool {
	if len(number) < 2 {
		return false
	}
	want, err := LuhnCheckDigit(number[:len(number)-1])
	if err != nil {
		return false
	}
	return int(number[len(number)-1]-'0') == want
}

// CheckHealthIdentifier validates a 16 digit healthcare identifier number:
// the issuer prefix must match t and the Luhn check digit must be correct.
// An empty t means the prefix matched no known issuer, which is an error.
func CheckHealthIdentifier(t vocab.HealthIdentifierType, number string) error {
	if len(number) != 16 || !allDigits(number) {
		return cda.NewArgumentError("number", number, "must be 16 digits")
	}
	if t == "" {
		return cda.NewArgumentError("number", number, "has unknown issuer prefix %s", number[:6])
	}
	if !strings.HasPrefix(number, t.Prefix()) {
		return cda.NewArgumentError("number", number, "%s must start with %s", t, t.Prefix())
	}
	if !LuhnValid(number) {
		return cda.NewArgumentError("number", number, "check digit is incorrect")
	}
	return nil
}

// MedicareCheckDigit returns the check digit for the first eight digits of
// a Medicare number.
func MedicareCheckDigit(payload string) (int, error) {
	if len(payload) != 8 || !allDigits(payload) {
		return 0, cda.NewArgumentError("payload", payload, "must be 8 digits")
	}
	sum := 0
	for i, w := range medicareWeights {
		sum += int(payload[i]-'0') * w
	}
	return sum % 10, nil
}

// CheckMedicareNumber validates a 10 or 11 digit Medicare number: the first
// digit must be 2 to 6 and the ninth digit must equal the weighted sum of
// the first eight modulo 10.
func CheckMedicareNumber(number string) error {
	if !allDigits(number) || (len(number) != 10 && len(number) != 11) {
		return cda.NewArgumentError("number", number, "Medicare number must be 10 or 11 digits")
	}
	if number[0] < '2' || number[0] > '6' {
		return cda.NewArgumentError("number", number, "Medicare number must start with 2 to 6")
	}
	if want, _ := MedicareCheckDigit(number[:8]); want != int(number[8]-'0') {
		return cda.NewArgumentError("number", number, "check digit is incorrect")
	}
	if len(number) == 11 && number[10] == '0' {
		return cda.NewArgumentError("number", number, "individual reference number must be 1 to 9")
	}
	return nil
}

// CheckDVANumber validates a DVA file number: a state code letter, up to
// three war code letters or spaces, up to six digits and an optional
// segment letter.
func CheckDVANumber(number string) error {
	if !dvaNumberPattern.MatchString(number) {
		return cda.NewArgumentError("number", number, "is not a valid DVA file number")
	}
	return nil
}

// CheckPrescriberNumber validates a seven digit Medicare prescriber number.
func CheckPrescriberNumber(number string) error {
	if !prescriberNumberPattern.MatchString(number) {
		return cda.NewArgumentError("number", number, "prescriber number must be 7 digits")
	}
	return nil
}

// CheckPharmacyApprovalNumber validates a pharmacy approval number: five
// digits and a letter.
func CheckPharmacyApprovalNumber(number string) error {
	if !pharmacyApprovalPattern.MatchString(number) {
		return cda.NewArgumentError("number", number, "pharmacy approval number must be five digits and a letter")
	}
	return nil
}

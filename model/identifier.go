package model

import (
	"strings"

	"github.com/google/uuid"

	cda "github.com/gofhir/cda"
	"github.com/gofhir/cda/validation"
	"github.com/gofhir/cda/vocab"
)

// Well-known identifier roots.
const (
	MedicareCardOID             = "1.2.36.1.5001.1.0.7.1"
	DVAFileNumberOID            = "2.16.840.1.113883.3.879.270091"
	MedicarePrescriberNumberOID = "1.2.36.174030967.0.3"
	PharmacyApprovalNumberOID   = "1.2.36.174030967.0.5"

	nationalIdentifierArea = "National Identifier"
)

// Identifier is an instance identifier: a root OID or UUID, optionally
// scoped by an extension.
type Identifier struct {
	Root                    string       `xml:",omitempty"`
	Extension               string       `xml:",omitempty"`
	AssigningAuthorityName  string       `xml:",omitempty"`
	AssigningGeographicArea string       `xml:",omitempty"`
	Code                    *CodableText `xml:",omitempty"`
}

// NewIdentifier returns an empty identifier.
func NewIdentifier() *Identifier {
	return &Identifier{}
}

// NewLocalIdentifier returns an identifier issued under root.
func NewLocalIdentifier(root, extension string) *Identifier {
	return &Identifier{Root: root, Extension: extension}
}

// NewUUIDIdentifier returns an identifier whose root is a fresh UUID.
func NewUUIDIdentifier() *Identifier {
	return &Identifier{Root: uuid.New().String()}
}

// NewHealthIdentifier returns an IHI, HPI-I or HPI-O identifier. The number
// must be 16 digits starting with the issuer prefix of t.
func NewHealthIdentifier(t vocab.HealthIdentifierType, number string) (*Identifier, error) {
	if !t.IsValid() {
		return nil, cda.NewArgumentError("type", string(t), "is not a healthcare identifier type")
	}
	number = strings.TrimSpace(number)
	if len(number) != 16 || !allDigits(number) {
		return nil, cda.NewArgumentError("number", number, "%s must be 16 digits", t)
	}
	if !strings.HasPrefix(number, t.Prefix()) {
		return nil, cda.NewArgumentError("number", number, "%s must start with %s", t, t.Prefix())
	}
	return &Identifier{
		Root:                    vocab.HealthIdentifierQualifier + number,
		AssigningAuthorityName:  string(t),
		AssigningGeographicArea: nationalIdentifierArea,
	}, nil
}

// MedicareNumberType distinguishes a bare card number from one carrying
// the individual reference number.
type MedicareNumberType int

const (
	MedicareCardNumber MedicareNumberType = iota
	MedicareCardNumberWithIRN
)

// NewMedicareNumber returns a Medicare card identifier. The number must be
// 10 digits, or 11 digits when it includes the individual reference number.
func NewMedicareNumber(t MedicareNumberType, number string) (*Identifier, error) {
	number = strings.TrimSpace(number)
	if !allDigits(number) || (len(number) != 10 && len(number) != 11) {
		return nil, cda.NewArgumentError("number", number, "Medicare number must be 10 or 11 digits")
	}
	if t == MedicareCardNumber && len(number) != 10 {
		return nil, cda.NewArgumentError("number", number, "Medicare card number must be 10 digits")
	}
	if t == MedicareCardNumberWithIRN && len(number) != 11 {
		return nil, cda.NewArgumentError("number", number, "Medicare number with IRN must be 11 digits")
	}
	return &Identifier{
		Root:                   MedicareCardOID,
		Extension:              number,
		AssigningAuthorityName: "Medicare Card Number",
		Code:                   NewCodableTextFromVocab(vocab.IdentifierTypeMedicareNumber),
	}, nil
}

// NewDVANumber returns a Department of Veterans' Affairs file number identifier.
func NewDVANumber(number string) (*Identifier, error) {
	number = strings.ToUpper(strings.TrimSpace(number))
	if err := CheckDVANumber(number); err != nil {
		return nil, err
	}
	return &Identifier{
		Root:                   DVAFileNumberOID,
		Extension:              number,
		AssigningAuthorityName: "Department of Veterans' Affairs",
		Code:                   NewCodableTextFromVocab(vocab.IdentifierTypeDVANumber),
	}, nil
}

// NewPrescriberNumber returns a Medicare prescriber number identifier.
func NewPrescriberNumber(number string) (*Identifier, error) {
	number = strings.TrimSpace(number)
	if err := CheckPrescriberNumber(number); err != nil {
		return nil, err
	}
	return &Identifier{
		Root:                   MedicarePrescriberNumberOID,
		Extension:              number,
		AssigningAuthorityName: "Medicare Prescriber Number",
	}, nil
}

// NewPharmacyApprovalNumber returns a Medicare pharmacy approval number identifier.
func NewPharmacyApprovalNumber(number string) (*Identifier, error) {
	number = strings.ToUpper(strings.TrimSpace(number))
	if err := CheckPharmacyApprovalNumber(number); err != nil {
		return nil, err
	}
	return &Identifier{
		Root:                   PharmacyApprovalNumberOID,
		Extension:              number,
		AssigningAuthorityName: "Medicare Pharmacy Approval Number",
	}, nil
}

// HealthIdentifier splits a healthcare identifier into its type and
// number. ok is false for other identifiers.
func (i *Identifier) HealthIdentifier() (t vocab.HealthIdentifierType, number string, ok bool) {
	if i == nil || !strings.HasPrefix(i.Root, vocab.HealthIdentifierQualifier) {
		return "", "", false
	}
	number = strings.TrimPrefix(i.Root, vocab.HealthIdentifierQualifier)
	t, _ = vocab.HealthIdentifierTypeForNumber(number)
	return t, number, true
}

// String returns "root" or "root^extension".
func (i *Identifier) String() string {
	if i.Extension == "" {
		return i.Root
	}
	return i.Root + "^" + i.Extension
}

// Validate requires a root. Check digits are left to the identifiers phase.
func (i *Identifier) Validate(path string, v *validation.Builder) {
	v.ArgumentRequiredCheck(path+".Root", i.Root)
	if i.Code != nil {
		i.Code.Validate(path+".Code", v)
	}
}

// findHealthIdentifier returns the first identifier of type t.
func findHealthIdentifier(ids []Identifier, t vocab.HealthIdentifierType) *Identifier {
	for k := range ids {
		if ht, _, ok := ids[k].HealthIdentifier(); ok && ht == t {
			return &ids[k]
		}
	}
	return nil
}

func requireHealthIdentifier(v *validation.Builder, path string, ids []Identifier, t vocab.HealthIdentifierType) {
	if findHealthIdentifier(ids, t) == nil {
		v.AddValidationMessage(path, "", "an "+string(t)+" identifier is required")
	}
}

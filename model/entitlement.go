package model

import (
	"github.com/gofhir/cda/validation"
	"github.com/gofhir/cda/vocab"
)

// Entitlement is a benefit or approval number held by a participant.
type Entitlement struct {
	ID               *Identifier           `xml:",omitempty"`
	Type             vocab.EntitlementType `xml:",omitempty"`
	ValidityDuration *Interval             `xml:",omitempty"`
}

// NewEntitlement returns an empty entitlement.
func NewEntitlement() *Entitlement {
	return &Entitlement{}
}

// NewMedicareEntitlement returns a Medicare benefits entitlement for a 10
// or 11 digit card number.
func NewMedicareEntitlement(number string) (*Entitlement, error) {
	t := MedicareCardNumber
	if len(number) == 11 {
		t = MedicareCardNumberWithIRN
	}
	id, err := NewMedicareNumber(t, number)
	if err != nil {
		return nil, err
	}
	return &Entitlement{ID: id, Type: vocab.EntitlementMedicareBenefits}, nil
}

// NewDVAEntitlement returns a repatriation entitlement of type t.
func NewDVAEntitlement(t vocab.EntitlementType, number string) (*Entitlement, error) {
	id, err := NewDVANumber(number)
	if err != nil {
		return nil, err
	}
	return &Entitlement{ID: id, Type: t}, nil
}

// NewPrescriberNumberEntitlement returns a Medicare prescriber number entitlement.
func NewPrescriberNumberEntitlement(number string) (*Entitlement, error) {
	id, err := NewPrescriberNumber(number)
	if err != nil {
		return nil, err
	}
	return &Entitlement{ID: id, Type: vocab.EntitlementMedicarePrescriberNumber}, nil
}

// NewPharmacyApprovalEntitlement returns a pharmacy approval number entitlement.
func NewPharmacyApprovalEntitlement(number string) (*Entitlement, error) {
	id, err := NewPharmacyApprovalNumber(number)
	if err != nil {
		return nil, err
	}
	return &Entitlement{ID: id, Type: vocab.EntitlementMedicarePharmacyApprovalNum}, nil
}

// Validate requires the entitlement number and type.
func (e *Entitlement) Validate(path string, v *validation.Builder) {
	if v.ArgumentRequiredCheck(path+".ID", e.ID) {
		e.ID.Validate(path+".ID", v)
	}
	v.ArgumentRequiredCheck(path+".Type", e.Type)
	validation.Validate(v, path+".ValidityDuration", e.ValidityDuration)
}

func hasEntitlement(es []Entitlement, t vocab.EntitlementType) bool {
	for _, e := range es {
		if e.Type == t {
			return true
		}
	}
	return false
}

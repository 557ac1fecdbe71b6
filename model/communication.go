package model

import (
	"strings"

	"github.com/gofhir/cda/validation"
	"github.com/gofhir/cda/vocab"
)

// ElectronicCommunicationDetail is a phone number, email address or URL.
type ElectronicCommunicationDetail struct {
	Address string                               `xml:",omitempty"`
	Medium  vocab.ElectronicCommunicationMedium  `xml:",omitempty"`
	Usages  []vocab.ElectronicCommunicationUsage `xml:"Usage,omitempty"`
}

// NewElectronicCommunicationDetail returns a contact detail.
func NewElectronicCommunicationDetail(address string, medium vocab.ElectronicCommunicationMedium, usages ...vocab.ElectronicCommunicationUsage) *ElectronicCommunicationDetail {
	return &ElectronicCommunicationDetail{Address: address, Medium: medium, Usages: usages}
}

// URI returns the address as a URI, e.g. "tel:0312345678" or "mailto:a@b.org".
func (e *ElectronicCommunicationDetail) URI() string {
	scheme := e.Medium.Scheme()
	if scheme == "" || strings.HasPrefix(e.Address, scheme) {
		return e.Address
	}
	addr := e.Address
	if scheme == "tel:" || scheme == "fax:" {
		addr = strings.Map(func(r rune) rune {
			if r == ' ' || r == '(' || r == ')' || r == '-' {
				return -1
			}
			return r
		}, addr)
	}
	return scheme + addr
}

// Validate requires the address and medium. Email addresses must contain @.
func (e *ElectronicCommunicationDetail) Validate(path string, v *validation.Builder) {
	v.ArgumentRequiredCheck(path+".Address", e.Address)
	v.ArgumentRequiredCheck(path+".Medium", e.Medium)
	if e.Medium == vocab.MediumEmail && e.Address != "" && !strings.Contains(e.Address, "@") {
		v.AddValidationMessage(path+".Address", e.Address, "email address must contain @")
	}
}

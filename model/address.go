package model

import (
	"strings"

	"github.com/gofhir/cda/validation"
	"github.com/gofhir/cda/vocab"
)

// Address is either an Australian or an international address.
type Address struct {
	AddressPurpose       vocab.AddressPurpose  `xml:",omitempty"`
	AustralianAddress    *AustralianAddress    `xml:",omitempty"`
	InternationalAddress *InternationalAddress `xml:",omitempty"`
}

// AustralianAddress is an AS 4590 address. Unstructured lines may replace
// the structured street fields.
type AustralianAddress struct {
	UnstructuredAddressLines []string              `xml:"UnstructuredAddressLine,omitempty"`
	UnitType                 string                `xml:",omitempty"`
	UnitNumber               string                `xml:",omitempty"`
	StreetNumber             string                `xml:",omitempty"`
	StreetName               string                `xml:",omitempty"`
	StreetType               string                `xml:",omitempty"`
	SuburbTownLocality       string                `xml:",omitempty"`
	State                    vocab.AustralianState `xml:",omitempty"`
	PostCode                 string                `xml:",omitempty"`
	DeliveryPointID          string                `xml:",omitempty"`
}

// InternationalAddress is an address outside Australia.
type InternationalAddress struct {
	AddressLines  []string      `xml:"AddressLine,omitempty"`
	StateProvince string        `xml:",omitempty"`
	PostCode      string        `xml:",omitempty"`
	Country       vocab.Country `xml:",omitempty"`
}

// NewAddress returns an empty address.
func NewAddress() *Address {
	return &Address{}
}

// NewAustralianAddress returns an empty Australian address.
func NewAustralianAddress() *AustralianAddress {
	return &AustralianAddress{}
}

// NewInternationalAddress returns an empty international address.
func NewInternationalAddress() *InternationalAddress {
	return &InternationalAddress{}
}

// Validate requires a purpose and exactly one of the Australian or international forms.
func (a *Address) Validate(path string, v *validation.Builder) {
	v.ArgumentRequiredCheck(path+".AddressPurpose", a.AddressPurpose)
	if !v.ChoiceCheck(path, []string{"AustralianAddress", "InternationalAddress"}, a.AustralianAddress, a.InternationalAddress) {
		return
	}
	if a.AustralianAddress != nil {
		a.AustralianAddress.Validate(path+".AustralianAddress", v)
	} else {
		a.InternationalAddress.Validate(path+".InternationalAddress", v)
	}
}

// Validate requires suburb, state and postcode unless unstructured lines are given,
// and checks the postcode is 4 digits.
func (a *AustralianAddress) Validate(path string, v *validation.Builder) {
	if len(a.UnstructuredAddressLines) == 0 {
		v.ArgumentRequiredCheck(path+".SuburbTownLocality", a.SuburbTownLocality)
		v.ArgumentRequiredCheck(path+".State", a.State)
		v.ArgumentRequiredCheck(path+".PostCode", a.PostCode)
	}
	if a.PostCode != "" && (len(a.PostCode) != 4 || !allDigits(a.PostCode)) {
		v.AddValidationMessage(path+".PostCode", a.PostCode, "postcode must be 4 digits")
	}
}

// Lines returns the street part of the address as display lines.
func (a *AustralianAddress) Lines() []string {
	if len(a.UnstructuredAddressLines) > 0 {
		return a.UnstructuredAddressLines
	}
	var lines []string
	if a.UnitNumber != "" {
		lines = append(lines, strings.TrimSpace(a.UnitType+" "+a.UnitNumber))
	}
	street := strings.Join(nonEmpty(a.StreetNumber, a.StreetName, a.StreetType), " ")
	if street != "" {
		lines = append(lines, street)
	}
	return lines
}

// Validate requires the address lines and country.
func (a *InternationalAddress) Validate(path string, v *validation.Builder) {
	v.ArgumentRequiredCheck(path+".AddressLines", a.AddressLines)
	v.ArgumentRequiredCheck(path+".Country", a.Country)
}

// String renders the address on one line.
func (a *Address) String() string {
	switch {
	case a.AustralianAddress != nil:
		au := a.AustralianAddress
		parts := append(append([]string{}, au.Lines()...), strings.Join(nonEmpty(au.SuburbTownLocality, string(au.State), au.PostCode), " "))
		return strings.Join(nonEmpty(parts...), ", ")
	case a.InternationalAddress != nil:
		in := a.InternationalAddress
		parts := append(append([]string{}, in.AddressLines...), in.StateProvince, in.PostCode, in.Country.DisplayName())
		return strings.Join(nonEmpty(parts...), ", ")
	}
	return ""
}

func nonEmpty(parts ...string) []string {
	out := parts[:0:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}

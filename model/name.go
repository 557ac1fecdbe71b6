package model

import (
	"strings"

	"github.com/gofhir/cda/validation"
	"github.com/gofhir/cda/vocab"
)

// PersonName is a structured person name.
type PersonName struct {
	Titles       []string          `xml:"Title,omitempty"`
	GivenNames   []string          `xml:"GivenName,omitempty"`
	FamilyName   string            `xml:",omitempty"`
	NameSuffixes []string          `xml:"NameSuffix,omitempty"`
	NameUsages   []vocab.NameUsage `xml:"NameUsage,omitempty"`
}

// NewPersonName returns an empty name.
func NewPersonName() *PersonName {
	return &PersonName{}
}

// Validate reports the required fields of the person name missing under path.
func (n *PersonName) Validate(path string, v *validation.Builder) {
	v.ArgumentRequiredCheck(path+".FamilyName", n.FamilyName)
}

// FullName returns the name in display order, e.g. "Dr Jane Mary Citizen".
func (n *PersonName) FullName() string {
	parts := append(append(append([]string{}, n.Titles...), n.GivenNames...), n.FamilyName)
	parts = append(parts, n.NameSuffixes...)
	return strings.Join(nonEmpty(parts...), " ")
}

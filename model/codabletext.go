package model

import (
	"github.com/gofhir/cda/validation"
	"github.com/gofhir/cda/vocab"
)

// CodableText is a coded concept with optional original text, or a null
// flavour explaining why it is absent.
type CodableText struct {
	Code              string            `xml:",omitempty"`
	CodeSystem        string            `xml:",omitempty"`
	CodeSystemName    string            `xml:",omitempty"`
	CodeSystemVersion string            `xml:",omitempty"`
	DisplayName       string            `xml:",omitempty"`
	OriginalText      string            `xml:",omitempty"`
	NullFlavour       vocab.NullFlavour `xml:",omitempty"`
	Translations      []CodableText     `xml:"Translation,omitempty"`
}

// NewCodableText returns a coded value.
func NewCodableText(code, codeSystem, codeSystemName, displayName string) *CodableText {
	return &CodableText{
		Code:           code,
		CodeSystem:     codeSystem,
		CodeSystemName: codeSystemName,
		DisplayName:    displayName,
	}
}

// NewCodableTextFromVocab returns the coded form of a vocabulary value.
func NewCodableTextFromVocab(c vocab.Coded) *CodableText {
	cs := c.CodeSystem()
	return &CodableText{
		Code:              c.Code(),
		CodeSystem:        cs.OID,
		CodeSystemName:    cs.Name,
		CodeSystemVersion: cs.Version,
		DisplayName:       c.DisplayName(),
	}
}

// NewOriginalText returns an uncoded value.
func NewOriginalText(text string) *CodableText {
	return &CodableText{OriginalText: text}
}

// NewNullCodableText returns a value that is absent for the given reason.
func NewNullCodableText(nf vocab.NullFlavour) *CodableText {
	return &CodableText{NullFlavour: nf}
}

// SNOMED returns a SNOMED CT-AU coded value.
func SNOMED(code, displayName string) *CodableText {
	return NewCodableText(code, vocab.SNOMEDCTAU.OID, vocab.SNOMEDCTAU.Name, displayName)
}

// LOINCCode returns a LOINC coded value.
func LOINCCode(code, displayName string) *CodableText {
	return NewCodableText(code, vocab.LOINC.OID, vocab.LOINC.Name, displayName)
}

// IsNull reports whether the value carries a null flavour.
func (c *CodableText) IsNull() bool {
	return c.NullFlavour != ""
}

// Matches reports whether the value carries the code of v.
func (c *CodableText) Matches(v vocab.Coded) bool {
	return c.Code == v.Code() && c.CodeSystem == v.CodeSystem().OID
}

// Text returns the best human-readable form of the value.
func (c *CodableText) Text() string {
	switch {
	case c.DisplayName != "":
		return c.DisplayName
	case c.OriginalText != "":
		return c.OriginalText
	case c.NullFlavour != "":
		return c.NullFlavour.DisplayName()
	}
	return c.Code
}

// Validate accepts a null flavour, original text alone, or a code with its code system.
func (c *CodableText) Validate(path string, v *validation.Builder) {
	if c.IsNull() {
		if !c.NullFlavour.IsValid() {
			v.AddValidationMessage(path+".NullFlavour", string(c.NullFlavour), "is not a null flavour")
		}
		return
	}
	if c.Code == "" {
		if c.OriginalText == "" {
			v.AddValidationMessage(path, "", "a code, original text or null flavour is required")
		}
		if c.CodeSystem != "" {
			v.ArgumentRequiredCheck(path+".Code", c.Code)
		}
	} else {
		v.ArgumentRequiredCheck(path+".CodeSystem", c.CodeSystem)
		v.ArgumentRequiredCheck(path+".DisplayName", c.DisplayName)
	}
	for i := range c.Translations {
		c.Translations[i].Validate(validation.Index(path+".Translations", i), v)
	}
}

package model

import "github.com/gofhir/cda/validation"

// CDAContext carries the document identity and the header participations
// shared by every document type.
type CDAContext struct {
	DocumentID            *Identifier            `xml:",omitempty"`
	SetID                 *Identifier            `xml:",omitempty"`
	Version               int                    `xml:",omitempty"`
	Custodian             *Custodian             `xml:",omitempty"`
	LegalAuthenticator    *LegalAuthenticator    `xml:",omitempty"`
	InformationRecipients []InformationRecipient `xml:"InformationRecipient,omitempty"`
}

// NewCDAContext returns a context with a fresh document id and set id and
// version 1.
func NewCDAContext() *CDAContext {
	return &CDAContext{
		DocumentID: NewUUIDIdentifier(),
		SetID:      NewUUIDIdentifier(),
		Version:    1,
	}
}

// Validate reports the required fields of the cdacontext missing under path.
func (c *CDAContext) Validate(path string, v *validation.Builder) {
	if v.ArgumentRequiredCheck(path+".DocumentID", c.DocumentID) {
		c.DocumentID.Validate(path+".DocumentID", v)
	}
	if v.ArgumentRequiredCheck(path+".SetID", c.SetID) {
		c.SetID.Validate(path+".SetID", v)
	}
	if c.Version < 0 {
		v.AddValidationMessage(path+".Version", "", "version must not be negative")
	}
	if v.ArgumentRequiredCheck(path+".Custodian", c.Custodian) {
		c.Custodian.Validate(path+".Custodian", v)
	}
	validation.Validate(v, path+".LegalAuthenticator", c.LegalAuthenticator)
	validation.ValidateEach(v, path+".InformationRecipients", ptrs(c.InformationRecipients))
}

package document

import (
	"encoding/xml"

	cda "github.com/gofhir/cda"
	"github.com/gofhir/cda/model"
	"github.com/gofhir/cda/validation"
)

// EReferral is a referral from a general practitioner to another provider.
type EReferral struct {
	XMLName xml.Name `xml:"http://ns.gofhir.org/cda/model EReferral" json:"-"`
	Base
	SCSContext *EReferralContext `xml:",omitempty"`
	SCSContent *EReferralContent `xml:",omitempty"`
}

// EReferralContext holds the participations of an e-Referral.
type EReferralContext struct {
	Author            *model.Author            `xml:",omitempty"`
	SubjectOfCare     *model.SubjectOfCare     `xml:",omitempty"`
	Referees          []model.Referee          `xml:"Referee,omitempty"`
	UsualGP           *model.UsualGP           `xml:",omitempty"`
	NominatedContacts []model.NominatedContact `xml:"NominatedContact,omitempty"`
}

// EReferralContent is the body of an e-Referral.
type EReferralContent struct {
	ReferralDetail   *ReferralDetail            `xml:",omitempty"`
	MedicalHistory   []model.MedicalHistoryItem `xml:"MedicalHistoryItem,omitempty"`
	Medications      []model.MedicationItem     `xml:"Medication,omitempty"`
	AdverseReactions []model.AdverseReaction    `xml:"AdverseReaction,omitempty"`
}

// ReferralDetail says why and until when the patient is referred.
type ReferralDetail struct {
	ReferralReasons          []model.CodableText    `xml:"ReferralReason,omitempty"`
	ReferralDateTime         *model.ISO8601DateTime `xml:",omitempty"`
	ReferralValidityDuration *model.Interval        `xml:",omitempty"`
}

// NewEReferral returns an empty e-Referral.
func NewEReferral() *EReferral {
	return &EReferral{
		Base:       newBase(),
		SCSContext: &EReferralContext{},
		SCSContent: &EReferralContent{ReferralDetail: &ReferralDetail{}},
	}
}

func (d *EReferral) DocumentType() cda.DocumentType { return cda.EReferral }

func (d *EReferral) Subject() *model.SubjectOfCare {
	if d.SCSContext == nil {
		return nil
	}
	return d.SCSContext.SubjectOfCare
}

func (d *EReferral) Validate(v *validation.Builder) {
	d.Base.validate(v)
	if v.ArgumentRequiredCheck("SCSContext", d.SCSContext) {
		d.SCSContext.Validate("SCSContext", v)
	}
	if v.ArgumentRequiredCheck("SCSContent", d.SCSContent) {
		d.SCSContent.Validate("SCSContent", v)
	}
}

func (c *EReferralContext) Validate(path string, v *validation.Builder) {
	if v.ArgumentRequiredCheck(path+".Author", c.Author) {
		c.Author.Validate(path+".Author", v)
	}
	requireSubject(v, path+".SubjectOfCare", c.SubjectOfCare)
	validation.RequireEach(v, path+".Referees", ptrs(c.Referees), 1)
	validation.Validate(v, path+".UsualGP", c.UsualGP)
	validation.ValidateEach(v, path+".NominatedContacts", ptrs(c.NominatedContacts))
}

func (c *EReferralContent) Validate(path string, v *validation.Builder) {
	if v.ArgumentRequiredCheck(path+".ReferralDetail", c.ReferralDetail) {
		c.ReferralDetail.Validate(path+".ReferralDetail", v)
	}
	validation.ValidateEach(v, path+".MedicalHistory", ptrs(c.MedicalHistory))
	validation.ValidateEach(v, path+".Medications", ptrs(c.Medications))
	validation.ValidateEach(v, path+".AdverseReactions", ptrs(c.AdverseReactions))
}

func (r *ReferralDetail) Validate(path string, v *validation.Builder) {
	validation.RequireEach(v, path+".ReferralReasons", ptrs(r.ReferralReasons), 1)
	v.ArgumentRequiredCheck(path+".ReferralDateTime", r.ReferralDateTime)
	validation.Validate(v, path+".ReferralValidityDuration", r.ReferralValidityDuration)
}

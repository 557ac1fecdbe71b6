package document

import (
	"encoding/xml"

	cda "github.com/gofhir/cda"
	"github.com/gofhir/cda/model"
	"github.com/gofhir/cda/validation"
)

// PathologyResultReport carries the results of one or more pathology tests.
type PathologyResultReport struct {
	XMLName xml.Name `xml:"http://ns.gofhir.org/cda/model PathologyResultReport" json:"-"`
	Base
	SCSContext *PathologyResultReportContext `xml:",omitempty"`
	SCSContent *PathologyResultReportContent `xml:",omitempty"`
}

type PathologyResultReportContext struct {
	Author        *model.Author        `xml:",omitempty"`
	SubjectOfCare *model.SubjectOfCare `xml:",omitempty"`
	Requester     *model.Requester     `xml:",omitempty"`
}

type PathologyResultReportContent struct {
	TestResults     []model.TestResult `xml:"TestResult,omitempty"`
	RelatedDocument *RelatedDocument   `xml:",omitempty"`
}

// RelatedDocument references the laboratory's own rendering of the report.
type RelatedDocument struct {
	DocumentID *model.Identifier `xml:",omitempty"`
	Title      string            `xml:",omitempty"`
	MediaType  string            `xml:",omitempty"`
}

// NewPathologyResultReport returns an empty pathology result report.
func NewPathologyResultReport() *PathologyResultReport {
	return &PathologyResultReport{
		Base:       newBase(),
		SCSContext: &PathologyResultReportContext{},
		SCSContent: &PathologyResultReportContent{},
	}
}

func (d *PathologyResultReport) DocumentType() cda.DocumentType { return cda.PathologyResultReport }

func (d *PathologyResultReport) Subject() *model.SubjectOfCare {
	if d.SCSContext == nil {
		return nil
	}
	return d.SCSContext.SubjectOfCare
}

func (d *PathologyResultReport) Validate(v *validation.Builder) {
	d.Base.validate(v)
	if v.ArgumentRequiredCheck("SCSContext", d.SCSContext) {
		d.SCSContext.Validate("SCSContext", v)
	}
	if v.ArgumentRequiredCheck("SCSContent", d.SCSContent) {
		d.SCSContent.Validate("SCSContent", v)
	}
}

func (c *PathologyResultReportContext) Validate(path string, v *validation.Builder) {
	if v.ArgumentRequiredCheck(path+".Author", c.Author) {
		c.Author.Validate(path+".Author", v)
	}
	requireSubject(v, path+".SubjectOfCare", c.SubjectOfCare)
	if v.ArgumentRequiredCheck(path+".Requester", c.Requester) {
		c.Requester.Validate(path+".Requester", v)
	}
}

func (c *PathologyResultReportContent) Validate(path string, v *validation.Builder) {
	validation.RequireEach(v, path+".TestResults", ptrs(c.TestResults), 1)
	validation.Validate(v, path+".RelatedDocument", c.RelatedDocument)
}

func (r *RelatedDocument) Validate(path string, v *validation.Builder) {
	if v.ArgumentRequiredCheck(path+".DocumentID", r.DocumentID) {
		r.DocumentID.Validate(path+".DocumentID", v)
	}
	v.ArgumentRequiredCheck(path+".Title", r.Title)
}

// Package document defines the CDA document family. Every document is a
// Base header plus a document-specific SCS context and SCS content.
package document

import (
	"sort"

	"github.com/pkg/errors"

	cda "github.com/gofhir/cda"
	"github.com/gofhir/cda/model"
	"github.com/gofhir/cda/validation"
	"github.com/gofhir/cda/vocab"
)

// Namespace is the XML namespace of the model serialization.
const Namespace = "http://ns.gofhir.org/cda/model"

// Document is implemented by every document type.
type Document interface {
	// DocumentType returns the fixed type of the document.
	DocumentType() cda.DocumentType

	// Header returns the common header.
	Header() *Base

	// Subject returns the subject of care, or nil when not set.
	Subject() *model.SubjectOfCare

	// Validate runs the required-field traversal from the document root.
	Validate(v *validation.Builder)
}

// Base is the header shared by every document type.
type Base struct {
	DocumentCreationTime *model.ISO8601DateTime `xml:",omitempty"`
	DocumentStatus       vocab.DocumentStatus   `xml:",omitempty"`
	CDAContext           *model.CDAContext      `xml:",omitempty"`
}

func newBase() Base {
	return Base{CDAContext: &model.CDAContext{}}
}

// Header returns b.
func (b *Base) Header() *Base {
	return b
}

func (b *Base) validate(v *validation.Builder) {
	v.ArgumentRequiredCheck("DocumentCreationTime", b.DocumentCreationTime)
	v.ArgumentRequiredCheck("DocumentStatus", b.DocumentStatus)
	if v.ArgumentRequiredCheck("CDAContext", b.CDAContext) {
		b.CDAContext.Validate("CDAContext", v)
	}
}

// Validate runs the required-field traversal over doc and returns a
// *cda.ValidationError when any field is missing.
func Validate(doc Document) error {
	v := validation.NewBuilder()
	doc.Validate(v)
	return v.Err(doc.DocumentType())
}

var constructors = map[cda.DocumentType]func() Document{
	cda.EReferral:             func() Document { return NewEReferral() },
	cda.SpecialistLetter:      func() Document { return NewSpecialistLetter() },
	cda.DischargeSummary:      func() Document { return NewDischargeSummary() },
	cda.PathologyResultReport: func() Document { return NewPathologyResultReport() },
	cda.EPrescription:         func() Document { return NewEPrescription() },
	cda.DispenseRecord:        func() Document { return NewDispenseRecord() },
}

// New returns an empty document of type dt.
func New(dt cda.DocumentType) (Document, error) {
	ctor, ok := constructors[dt]
	if !ok {
		return nil, errors.Errorf("unsupported document type %q", dt)
	}
	return ctor(), nil
}

// Types returns every document type New accepts, sorted by name.
func Types() []cda.DocumentType {
	out := make([]cda.DocumentType, 0, len(constructors))
	for dt := range constructors {
		out = append(out, dt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func requireSubject(v *validation.Builder, path string, s *model.SubjectOfCare) {
	if v.ArgumentRequiredCheck(path, s) {
		s.Validate(path, v)
	}
}

func ptrs[T any](s []T) []*T {
	out := make([]*T, len(s))
	for i := range s {
		out[i] = &s[i]
	}
	return out
}

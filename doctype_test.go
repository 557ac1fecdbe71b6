package cda

import (
	"testing"
)

func TestDocumentType_IsValid(t *testing.T) {
	tests := []struct {
		dt   DocumentType
		want bool
	}{
		{EReferral, true},
		{SpecialistLetter, true},
		{DischargeSummary, true},
		{PathologyResultReport, true},
		{EPrescription, true},
		{DispenseRecord, true},
		{"SharedHealthSummary", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := tt.dt.IsValid(); got != tt.want {
			t.Errorf("%q.IsValid() = %v; want %v", tt.dt, got, tt.want)
		}
	}
}

func TestDocumentType_Info(t *testing.T) {
	for _, dt := range DocumentTypes() {
		info, ok := dt.Info()
		if !ok {
			t.Fatalf("Info(%s) returned false", dt)
		}
		if info.Code == "" || info.CodeSystem == "" || info.TemplateID == "" || info.Title == "" {
			t.Errorf("Info(%s) incomplete: %+v", dt, info)
		}
	}

	info, _ := DischargeSummary.Info()
	if info.Code != "18842-5" || info.CodeSystem != LOINCOID {
		t.Errorf("DischargeSummary code = %s/%s", info.Code, info.CodeSystem)
	}

	if _, ok := DocumentType("bogus").Info(); ok {
		t.Error("Info(bogus) should return false")
	}
}

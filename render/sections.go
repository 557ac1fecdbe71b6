package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofhir/cda/document"
	"github.com/gofhir/cda/model"
	"github.com/gofhir/cda/vocab"
)

// Section codes from the NCTIS data component set.
var (
	sectionReferralDetail   = nctis("102.16347", "Referral Detail")
	sectionMedicalHistory   = nctis("101.16117", "Medical History")
	sectionMedications      = nctis("101.16022", "Medications")
	sectionAdverseReactions = nctis("101.20113", "Adverse Reactions")
	sectionResponseDetails  = nctis("101.16611", "Response Details")
	sectionRecommendations  = nctis("101.16606", "Recommendations")
	sectionEncounter        = nctis("101.16542", "Clinical Synopsis")
	sectionPlan             = nctis("101.16020", "Plan")
	sectionTestResult       = nctis("102.16144", "Pathology Test Result")
	sectionRelatedDocument  = nctis("101.20016", "Related Document")
	sectionPrescriptionItem = nctis("103.16211", "Prescription Item")
	sectionObservations     = nctis("103.16143", "Observations")
	sectionDispenseItem     = nctis("103.16210", "Dispense Item")
	defaultTableBorder      = "1"
	notStated               = "-"
)

func nctis(code, display string) CE {
	return CE{Code: code, CodeSystem: vocab.NCTIS.OID, CodeSystemName: vocab.NCTIS.Name, DisplayName: display}
}

func section(code CE, text *Narrative) Section {
	return Section{Code: code, Title: code.DisplayName, Text: text}
}

func table(head ...string) Table {
	return Table{Border: defaultTableBorder, Head: head}
}

func (t *Table) add(cells ...string) {
	for i, c := range cells {
		if strings.TrimSpace(c) == "" {
			cells[i] = notStated
		}
	}
	t.Rows = append(t.Rows, Row{Cells: cells})
}

// --- text helpers ---

func text(c *model.CodableText) string {
	if c == nil {
		return ""
	}
	return c.Text()
}

func when(t *model.ISO8601DateTime) string {
	if t == nil {
		return ""
	}
	switch t.Precision {
	case model.PrecisionYear:
		return t.Time.Format("2006")
	case model.PrecisionMonth:
		return t.Time.Format("Jan 2006")
	case model.PrecisionDay:
		return t.Time.Format("02 Jan 2006")
	}
	return t.Time.Format("02 Jan 2006 15:04")
}

func interval(i *model.Interval) string {
	if i == nil {
		return ""
	}
	switch {
	case i.Width != nil:
		return i.Width.String()
	case i.Center != nil:
		return when(i.Center)
	case i.Low != nil && i.High != nil:
		return when(i.Low) + " to " + when(i.High)
	case i.Low != nil:
		return "from " + when(i.Low)
	case i.High != nil:
		return "until " + when(i.High)
	}
	return ""
}

func quantity(q *model.Quantity) string {
	if q == nil {
		return ""
	}
	return q.String()
}

func referenceRange(rr []model.ReferenceRange) string {
	parts := make([]string, 0, len(rr))
	for _, r := range rr {
		switch {
		case r.Low != nil && r.High != nil:
			parts = append(parts, r.Low.Value.String()+"-"+r.High.String())
		case r.Low != nil:
			parts = append(parts, ">= "+r.Low.String())
		case r.High != nil:
			parts = append(parts, "<= "+r.High.String())
		}
	}
	return strings.Join(parts, "; ")
}

// --- shared sections ---

func medications(items []model.MedicationItem) *Section {
	if len(items) == 0 {
		return nil
	}
	t := table("Medicine", "Directions", "Clinical Indication", "Comment")
	for _, m := range items {
		t.add(text(m.Medicine), m.Directions, m.ClinicalIndication, m.Comment)
	}
	s := section(sectionMedications, &Narrative{Tables: []Table{t}})
	return &s
}

func adverseReactions(items []model.AdverseReaction) *Section {
	if len(items) == 0 {
		return nil
	}
	t := table("Substance/Agent", "Reaction Type", "Manifestations")
	for _, a := range items {
		manifestations := make([]string, len(a.Manifestations))
		for i := range a.Manifestations {
			manifestations[i] = text(&a.Manifestations[i])
		}
		t.add(text(a.SubstanceOrAgent), text(a.ReactionType), strings.Join(manifestations, ", "))
	}
	s := section(sectionAdverseReactions, &Narrative{Tables: []Table{t}})
	return &s
}

func recommendations(code CE, items []model.Recommendation) *Section {
	if len(items) == 0 {
		return nil
	}
	t := table("Addressee", "Recommendation", "Time Frame")
	for _, r := range items {
		addressee := ""
		if r.Addressee != nil && r.Addressee.Participant != nil {
			addressee = participantName(r.Addressee.Participant)
		}
		t.add(addressee, r.Narrative, interval(r.TimeFrame))
	}
	s := section(code, &Narrative{Tables: []Table{t}})
	return &s
}

func participantName(p *model.Participant) string {
	if p.Person != nil && p.Person.Name() != nil {
		return p.Person.Name().FullName()
	}
	if p.Organisation != nil {
		return p.Organisation.Name
	}
	return ""
}

// --- per document type ---

func sectionsOf(doc document.Document) []Section {
	var out []Section
	add := func(s *Section) {
		if s != nil {
			out = append(out, *s)
		}
	}
	switch d := doc.(type) {
	case *document.EReferral:
		if c := d.SCSContent; c != nil {
			add(referralDetail(c.ReferralDetail))
			add(medicalHistory(c.MedicalHistory))
			add(medications(c.Medications))
			add(adverseReactions(c.AdverseReactions))
		}
	case *document.SpecialistLetter:
		if c := d.SCSContent; c != nil {
			add(responseDetails(c.ResponseDetails))
			add(recommendations(sectionRecommendations, c.Recommendations))
			add(medications(c.Medications))
		}
	case *document.DischargeSummary:
		if c := d.SCSContent; c != nil {
			add(encounter(c.Encounter))
			add(medications(c.Medications))
			add(adverseReactions(c.AdverseReactions))
			if c.Plan != nil {
				add(recommendations(sectionPlan, c.Plan.Recommendations))
			}
		}
	case *document.PathologyResultReport:
		if c := d.SCSContent; c != nil {
			for i := range c.TestResults {
				add(testResult(&c.TestResults[i]))
			}
			add(relatedDocument(c.RelatedDocument))
		}
	case *document.EPrescription:
		if c := d.SCSContent; c != nil {
			add(prescriptionItem(c.PrescriptionItem))
			add(observations(c.Observations))
		}
	case *document.DispenseRecord:
		if c := d.SCSContent; c != nil {
			add(dispenseItem(c.DispenseItem))
		}
	}
	return out
}

func referralDetail(r *document.ReferralDetail) *Section {
	if r == nil {
		return nil
	}
	reasons := make([]string, len(r.ReferralReasons))
	for i := range r.ReferralReasons {
		reasons[i] = text(&r.ReferralReasons[i])
	}
	t := table("Referral Date", "Validity Duration", "Reason for Referral")
	t.add(when(r.ReferralDateTime), interval(r.ReferralValidityDuration), strings.Join(reasons, ", "))
	s := section(sectionReferralDetail, &Narrative{Tables: []Table{t}})
	return &s
}

func medicalHistory(items []model.MedicalHistoryItem) *Section {
	if len(items) == 0 {
		return nil
	}
	t := table("Item", "Type", "Time", "Comment")
	for _, m := range items {
		switch {
		case m.ProblemDiagnosis != nil:
			t.add(text(m.ProblemDiagnosis), "Problem/Diagnosis", interval(m.DateTimeInterval), m.Comment)
		case m.Procedure != nil:
			t.add(text(m.Procedure), "Procedure", interval(m.DateTimeInterval), m.Comment)
		default:
			t.add(m.UncategorisedMedicalHistoryItem, "Other", interval(m.DateTimeInterval), m.Comment)
		}
	}
	s := section(sectionMedicalHistory, &Narrative{Tables: []Table{t}})
	return &s
}

func responseDetails(r *document.ResponseDetails) *Section {
	if r == nil {
		return nil
	}
	n := &Narrative{}
	if r.ResponseNarrative != "" {
		n.Paragraphs = append(n.Paragraphs, r.ResponseNarrative)
	}
	if len(r.Diagnoses) > 0 {
		l := List{}
		for i := range r.Diagnoses {
			l.Items = append(l.Items, "Diagnosis: "+text(&r.Diagnoses[i]))
		}
		n.Lists = append(n.Lists, l)
	}
	if len(r.Procedures) > 0 {
		l := List{}
		for _, p := range r.Procedures {
			item := "Procedure: " + text(p.ProcedureName)
			if p.ProcedureDateTime != nil {
				item += " (" + when(p.ProcedureDateTime) + ")"
			}
			l.Items = append(l.Items, item)
		}
		n.Lists = append(n.Lists, l)
	}
	s := section(sectionResponseDetails, n)
	return &s
}

func encounter(e *document.Encounter) *Section {
	if e == nil {
		return nil
	}
	separation := ""
	if e.SeparationMode.IsValid() {
		separation = e.SeparationMode.DisplayName()
	}
	t := table("Admission", "Separation", "Specialty", "Mode of Separation")
	low, high := "", ""
	if e.EncounterPeriod != nil {
		low, high = when(e.EncounterPeriod.Low), when(e.EncounterPeriod.High)
	}
	t.add(low, high, text(e.Specialty), separation)
	n := &Narrative{Tables: []Table{t}}
	if len(e.ProblemDiagnoses) > 0 {
		l := List{}
		for _, p := range e.ProblemDiagnoses {
			item := text(p.Identification)
			if p.DateOfOnset != nil {
				item += " (onset " + when(p.DateOfOnset) + ")"
			}
			l.Items = append(l.Items, item)
		}
		n.Lists = append(n.Lists, l)
	}
	if e.ClinicalSynopsis != "" {
		n.Paragraphs = append(n.Paragraphs, e.ClinicalSynopsis)
	}
	s := section(sectionEncounter, n)
	return &s
}

func testResult(r *model.TestResult) *Section {
	t := table("Test", "Value", "Reference Range", "Interpretation")
	for _, v := range r.Results {
		value := v.Text
		switch {
		case v.Quantity != nil:
			value = quantity(v.Quantity)
		case v.CodedValue != nil:
			value = text(v.CodedValue)
		}
		interp := ""
		if v.Interpretation.IsValid() {
			interp = v.Interpretation.DisplayName()
		}
		t.add(text(v.Name), value, referenceRange(v.ReferenceRanges), interp)
	}
	n := &Narrative{Tables: []Table{t}}

	meta := List{}
	if r.Status.IsValid() {
		meta.Items = append(meta.Items, "Status: "+r.Status.DisplayName())
	}
	if r.DiagnosticService != nil {
		meta.Items = append(meta.Items, "Diagnostic service: "+text(r.DiagnosticService))
	}
	meta.Items = append(meta.Items, "Observed: "+when(r.ObservationDateTime))
	for _, sp := range r.Specimens {
		meta.Items = append(meta.Items, "Specimen: "+text(sp.SpecimenType)+" collected "+when(sp.CollectionDateTime))
	}
	if r.ReportingPathologist != nil && r.ReportingPathologist.Participant != nil {
		meta.Items = append(meta.Items, "Reported by: "+participantName(r.ReportingPathologist.Participant))
	}
	n.Lists = append(n.Lists, meta)
	for _, p := range []string{r.Conclusion, r.TestComment} {
		if p != "" {
			n.Paragraphs = append(n.Paragraphs, p)
		}
	}

	s := section(sectionTestResult, n)
	if name := text(r.TestResultName); name != "" {
		s.Title = name
	}
	return &s
}

func relatedDocument(r *document.RelatedDocument) *Section {
	if r == nil {
		return nil
	}
	id := ""
	if r.DocumentID != nil {
		id = r.DocumentID.String()
	}
	t := table("Title", "Document", "Media Type")
	t.add(r.Title, id, r.MediaType)
	s := section(sectionRelatedDocument, &Narrative{Tables: []Table{t}})
	return &s
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func prescriptionItem(p *model.PrescriptionItem) *Section {
	if p == nil {
		return nil
	}
	t := table("Field", "Value")
	t.add("Medicine", text(p.Medicine))
	t.add("Directions", p.Directions)
	t.add("Quantity", p.QuantityDescription)
	t.add("Maximum Repeats", strconv.Itoa(p.MaximumRepeats))
	t.add("Minimum Interval Between Repeats", interval(p.MinimumIntervalBetweenRepeats))
	t.add("PBS Item Code", codeOf(p.PBSItemCode))
	t.add("Brand Substitution Not Allowed", yesNo(p.BrandSubstituteNotAllowed))
	t.add("Date Written", when(p.DateTimePrescriptionWritten))
	t.add("Expires", when(p.DateTimePrescriptionExpires))
	t.add("Clinical Indication", p.ClinicalIndication)
	t.add("Comment", p.Comment)
	s := section(sectionPrescriptionItem, &Narrative{Tables: []Table{t}})
	return &s
}

func codeOf(c *model.CodableText) string {
	if c == nil {
		return ""
	}
	return c.Code
}

func observations(items []model.Observation) *Section {
	if len(items) == 0 {
		return nil
	}
	t := table("Observation", "Value", "Date")
	for _, o := range items {
		t.add(text(o.ObservationName), quantity(o.Value), when(o.DateTimeOfObservation))
	}
	s := section(sectionObservations, &Narrative{Tables: []Table{t}})
	return &s
}

func dispenseItem(d *model.DispenseItem) *Section {
	if d == nil {
		return nil
	}
	t := table("Field", "Value")
	t.add("Medicine", text(d.Medicine))
	t.add("Brand", d.Brand)
	t.add("Quantity", d.QuantityDescription)
	t.add("Label Instruction", d.LabelInstruction)
	t.add("Dispense", fmt.Sprintf("%d of %d", d.NumberOfThisDispense, d.MaximumNumberOfRepeats+1))
	t.add("Repeats Remaining", strconv.Itoa(d.RepeatsRemaining()))
	t.add("PBS Item Code", codeOf(d.PBSItemCode))
	t.add("Dispensed", when(d.DateTimeOfDispenseEvent))
	t.add("Comment", d.Comment)
	s := section(sectionDispenseItem, &Narrative{Tables: []Table{t}})
	return &s
}

package sample

import (
	"fmt"
	"time"

	randomdata "github.com/Pallinder/go-randomdata"
	"github.com/shopspring/decimal"

	"github.com/gofhir/cda/document"
	"github.com/gofhir/cda/model"
	"github.com/gofhir/cda/vocab"
)

type coded struct{ code, display string }

var (
	referralReasons = []coded{
		{"29857009", "Chest pain"},
		{"267036007", "Dyspnoea"},
		{"38341003", "Hypertensive disorder"},
		{"44054006", "Type 2 diabetes mellitus"},
		{"195967001", "Asthma"},
	}
	problems = []coded{
		{"38341003", "Hypertensive disorder"},
		{"55822004", "Hyperlipidaemia"},
		{"35489007", "Depressive disorder"},
		{"69896004", "Rheumatoid arthritis"},
	}
	procedures = []coded{
		{"80146002", "Appendicectomy"},
		{"38102005", "Cholecystectomy"},
		{"41976001", "Cardiac catheterisation"},
	}
	substances = []coded{
		{"372687004", "Amoxicillin"},
		{"387458008", "Aspirin"},
		{"256349002", "Peanut"},
	}
	medicines = []struct {
		coded
		pbs, directions, quantity string
	}{
		{coded{"21499011000036100", "Atorvastatin 40 mg tablet"}, "8215N", "One tablet at night", "30 tablets"},
		{coded{"21910011000036106", "Metformin 500 mg tablet"}, "2430Y", "One tablet twice daily with food", "100 tablets"},
		{coded{"22025011000036104", "Perindopril 5 mg tablet"}, "8706G", "One tablet in the morning", "30 tablets"},
		{coded{"21244011000036101", "Salbutamol 100 microgram/dose inhaler"}, "8354G", "Two puffs when required for wheeze", "1 inhaler"},
	}
	specialties = []coded{
		{"394579002", "Cardiology"},
		{"394592004", "Clinical oncology"},
		{"394609007", "General surgery"},
		{"394802001", "General medicine"},
	}
)

func (g *Generator) snomed(list []coded) *model.CodableText {
	c := list[g.pick(len(list))]
	return model.SNOMED(c.code, c.display)
}

func (g *Generator) base(doc document.Document) {
	h := doc.Header()
	h.DocumentCreationTime = g.at(0)
	h.DocumentStatus = vocab.DocumentStatusFinal
	h.CDAContext = g.cdaContext()
}

func (g *Generator) medication() model.MedicationItem {
	m := medicines[g.pick(len(medicines))]
	return *model.NewMedicationItem(model.SNOMED(m.code, m.display), m.directions)
}

func (g *Generator) adverseReaction() model.AdverseReaction {
	return *model.NewAdverseReaction(g.snomed(substances), *model.SNOMED("271807003", "Rash"))
}

func (g *Generator) eReferral() *document.EReferral {
	d := document.NewEReferral()
	g.base(d)
	d.SCSContext = &document.EReferralContext{
		Author:            g.author(vocab.OccupationGeneralPractitioner),
		SubjectOfCare:     g.subject(),
		Referees:          []model.Referee{g.referee()},
		UsualGP:           g.usualGP(),
		NominatedContacts: []model.NominatedContact{g.nominatedContact()},
	}
	d.SCSContent = &document.EReferralContent{
		ReferralDetail: &document.ReferralDetail{
			ReferralReasons:          []model.CodableText{*g.snomed(referralReasons)},
			ReferralDateTime:         g.at(0),
			ReferralValidityDuration: model.NewWidthInterval(12, "mo"),
		},
		MedicalHistory: []model.MedicalHistoryItem{
			{ProblemDiagnosis: g.snomed(problems), DateTimeInterval: model.NewInterval(g.daysAgo(400+g.pick(2000)), nil)},
			{Procedure: g.snomed(procedures)},
		},
		Medications:      []model.MedicationItem{g.medication()},
		AdverseReactions: []model.AdverseReaction{g.adverseReaction()},
	}
	return d
}

func (g *Generator) specialistLetter() *document.SpecialistLetter {
	d := document.NewSpecialistLetter()
	g.base(d)

	referrer := g.participant()
	referrer.Person = g.clinician()
	referrer.Addresses = []model.Address{g.address(vocab.AddressPurposeBusiness)}

	d.SCSContext = &document.SpecialistLetterContext{
		Author:        g.author(vocab.OccupationSpecialistPhysician),
		SubjectOfCare: g.subject(),
		Referrer: &model.Referrer{
			Participation:      model.Participation{Role: model.NewRole(vocab.OccupationGeneralPractitioner), Participant: referrer},
			DateTimeOfReferral: g.daysAgo(14 + g.pick(30)),
		},
		UsualGP:             g.usualGP(),
		DateTimeSubjectSeen: g.daysAgo(1 + g.pick(7)),
	}
	d.SCSContent = &document.SpecialistLetterContent{
		ResponseDetails: &document.ResponseDetails{
			Diagnoses:         []model.CodableText{*g.snomed(problems)},
			ResponseNarrative: fmt.Sprintf("Thank you for referring this patient. Reviewed in clinic on %s.", g.daysAgo(1).Time.Format("2 January 2006")),
		},
		Recommendations: []model.Recommendation{{
			Narrative: "Review in " + randomdata.StringSample("four", "six", "twelve") + " weeks with repeat bloods.",
			TimeFrame: model.NewWidthInterval(6, "wk"),
		}},
		Medications: []model.MedicationItem{g.medication()},
	}
	return d
}

func (g *Generator) dischargeSummary() *document.DischargeSummary {
	d := document.NewDischargeSummary()
	g.base(d)

	facility := g.participant()
	facility.Organisation = g.organisation(hospitals)
	facility.Addresses = []model.Address{g.address(vocab.AddressPurposeBusiness)}

	admitted := 2 + g.pick(10)
	modes := []vocab.SeparationMode{vocab.SeparationOtherUsualResident, vocab.SeparationAgedCare, vocab.SeparationOtherHealthCare}

	d.SCSContext = &document.DischargeSummaryContext{
		Author:        g.author(vocab.OccupationResidentMedicalOfficer),
		SubjectOfCare: g.subject(),
		Facility:      &model.HealthcareFacility{Participation: model.Participation{Participant: facility}},
	}
	d.SCSContent = &document.DischargeSummaryContent{
		Encounter: &document.Encounter{
			EncounterPeriod: model.NewInterval(g.daysAgo(admitted), g.at(-time.Hour)),
			SeparationMode:  modes[g.pick(len(modes))],
			Specialty:       g.snomed(specialties),
			ProblemDiagnoses: []model.ProblemDiagnosis{{
				Identification: g.snomed(problems),
				DateOfOnset:    g.daysAgo(admitted),
			}},
			ClinicalSynopsis: fmt.Sprintf("Admitted for %d days. Progress uneventful.", admitted),
		},
		Medications:      []model.MedicationItem{g.medication()},
		AdverseReactions: []model.AdverseReaction{g.adverseReaction()},
		Plan: &document.Plan{Recommendations: []model.Recommendation{{
			Narrative: "Follow up with usual GP within one week of discharge.",
		}}},
	}
	return d
}

func (g *Generator) pathologyResultReport() *document.PathologyResultReport {
	d := document.NewPathologyResultReport()
	g.base(d)

	requester := g.participant()
	requester.Person = g.clinician()
	requester.Addresses = []model.Address{g.address(vocab.AddressPurposeBusiness)}

	pathologist := g.participant()
	pathologist.Person = g.clinician()
	pathologist.Organisation = g.organisation(pathLabs)

	collected := g.daysAgo(1 + g.pick(3))
	haemoglobin := decimal.NewFromInt(int64(115 + g.pick(60)))
	interpretation := vocab.InterpretationNormal
	if haemoglobin.GreaterThan(decimal.NewFromInt(160)) {
		interpretation = vocab.InterpretationHigh
	}

	d.SCSContext = &document.PathologyResultReportContext{
		Author:        g.author(vocab.OccupationPathologist),
		SubjectOfCare: g.subject(),
		Requester: &model.Requester{
			Participation:     model.Participation{Role: model.NewRole(vocab.OccupationGeneralPractitioner), Participant: requester},
			DateTimeRequested: g.daysAgo(3 + g.pick(3)),
		},
	}
	d.SCSContent = &document.PathologyResultReportContent{
		TestResults: []model.TestResult{{
			TestResultName:      model.LOINCCode("58410-2", "Complete blood count (hemogram) panel"),
			DiagnosticService:   model.SNOMED("394916005", "Haematology"),
			Status:              vocab.ResultStatusFinal,
			ObservationDateTime: collected,
			ReportingPathologist: &model.ReportingPathologist{
				Participation:    model.Participation{Role: model.NewRole(vocab.OccupationPathologist), Participant: pathologist},
				DateTimeReported: g.at(0),
			},
			Results: []model.ResultValue{
				{
					Name:           model.LOINCCode("718-7", "Hemoglobin [Mass/volume] in Blood"),
					Quantity:       model.NewQuantity(haemoglobin, "g/L"),
					Interpretation: interpretation,
					ReferenceRanges: []model.ReferenceRange{
						*model.NewReferenceRange(model.NewQuantity(decimal.NewFromInt(115), "g/L"), model.NewQuantity(decimal.NewFromInt(160), "g/L")),
					},
				},
				{
					Name:     model.LOINCCode("6690-2", "Leukocytes [#/volume] in Blood"),
					Quantity: model.NewQuantity(decimal.New(int64(40+g.pick(70)), -1), "10*9/L"),
				},
			},
			Specimens: []model.Specimen{{
				SpecimenType:       model.SNOMED("119297000", "Blood specimen"),
				CollectionDateTime: collected,
				Identifier:         model.NewLocalIdentifier("1.2.36.1.2001.1005.52", g.digits(8)),
			}},
			Conclusion: "Full blood count within expected limits.",
		}},
		RelatedDocument: &document.RelatedDocument{
			DocumentID: g.uuidIdentifier(),
			Title:      "Full Blood Count Report",
			MediaType:  "application/pdf",
		},
	}
	return d
}

func (g *Generator) prescriber() *model.Prescriber {
	p := g.participant()
	p.Person = g.clinician()
	p.Entitlements = []model.Entitlement{*must(model.NewPrescriberNumberEntitlement(g.prescriberNumber()))}
	return &model.Prescriber{Participation: model.Participation{Role: model.NewRole(vocab.OccupationGeneralPractitioner), Participant: p}}
}

func (g *Generator) prescriptionItem() *model.PrescriptionItem {
	m := medicines[g.pick(len(medicines))]
	written := g.daysAgo(g.pick(3))
	return &model.PrescriptionItem{
		PrescriptionItemIdentifier:  g.uuidIdentifier(),
		Medicine:                    model.SNOMED(m.code, m.display),
		DateTimePrescriptionWritten: written,
		DateTimePrescriptionExpires: model.DateTime(written.Time.AddDate(1, 0, 0)),
		Directions:                  m.directions,
		QuantityDescription:         m.quantity,
		MaximumRepeats:              g.pick(6),
		PBSItemCode:                 model.NewCodableText(m.pbs, vocab.PBS.OID, vocab.PBS.Name, m.display),
		ClinicalIndication:          "Ongoing management",
	}
}

func (g *Generator) ePrescription() *document.EPrescription {
	d := document.NewEPrescription()
	g.base(d)

	practice := g.participant()
	practice.Organisation = g.organisation(clinicNames)
	practice.Addresses = []model.Address{g.address(vocab.AddressPurposeBusiness)}
	practice.ElectronicCommunicationDetails = []model.ElectronicCommunicationDetail{g.phone(vocab.UsageWorkplace)}

	d.SCSContext = &document.EPrescriptionContext{
		Prescriber:             g.prescriber(),
		PrescriberOrganisation: &model.PrescriberOrganisation{Participation: model.Participation{Participant: practice}},
		SubjectOfCare:          g.subject(),
	}
	d.SCSContent = &document.EPrescriptionContent{
		PrescriptionItem: g.prescriptionItem(),
		Observations: []model.Observation{{
			ObservationName:       model.SNOMED("27113001", "Body weight"),
			Value:                 model.NewQuantity(decimal.NewFromInt(int64(50+g.pick(60))), "kg"),
			DateTimeOfObservation: g.daysAgo(g.pick(3)),
		}},
	}
	return d
}

func (g *Generator) dispenseRecord() *document.DispenseRecord {
	d := document.NewDispenseRecord()
	g.base(d)

	pharmacist := g.participant()
	pharmacist.Person = g.clinician()

	pharmacy := g.participant()
	pharmacy.Organisation = g.organisation(pharmacies)
	pharmacy.Addresses = []model.Address{g.address(vocab.AddressPurposeBusiness)}
	pharmacy.ElectronicCommunicationDetails = []model.ElectronicCommunicationDetail{g.phone(vocab.UsageWorkplace)}
	pharmacy.Entitlements = []model.Entitlement{*must(model.NewPharmacyApprovalEntitlement(g.pharmacyApprovalNumber()))}

	rx := g.prescriptionItem()
	item := model.NewDispenseItem(rx.PrescriptionItemIdentifier)
	item.DispenseItemIdentifier = g.uuidIdentifier()
	item.Medicine = rx.Medicine
	item.DateTimeOfDispenseEvent = g.at(0)
	item.QuantityDescription = rx.QuantityDescription
	item.LabelInstruction = rx.Directions
	item.MaximumNumberOfRepeats = rx.MaximumRepeats
	item.NumberOfThisDispense = 1 + g.pick(rx.MaximumRepeats+1)
	item.PBSItemCode = rx.PBSItemCode
	item.Brand = randomdata.StringSample("Lipitor", "Diabex", "Coversyl", "Ventolin", "Generic")

	d.SCSContext = &document.DispenseRecordContext{
		Dispenser: &model.Dispenser{Participation: model.Participation{
			Role:        model.NewRole(vocab.OccupationRetailPharmacist),
			Participant: pharmacist,
		}},
		DispenserOrganisation: &model.DispenserOrganisation{Participation: model.Participation{Participant: pharmacy}},
		SubjectOfCare:         g.subject(),
	}
	d.SCSContent = &document.DispenseRecordContent{DispenseItem: item}
	return d
}

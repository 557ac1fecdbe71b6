// Package sample builds complete, valid documents of every type with
// randomised demographics. Output is deterministic for a given seed and
// reference time.
package sample

import (
	"fmt"
	"math/rand"
	"strconv"
	"sync"
	"time"

	randomdata "github.com/Pallinder/go-randomdata"
	"github.com/google/uuid"

	cda "github.com/gofhir/cda"
	"github.com/gofhir/cda/document"
	"github.com/gofhir/cda/model"
	"github.com/gofhir/cda/vocab"
)

// randomdata draws from a package-level source.
var randomdataMu sync.Mutex

// Generator builds sample documents.
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
	now time.Time
}

// New returns a generator seeded with seed. The reference time defaults to
// the current time truncated to the second.
func New(seed int64) *Generator {
	return &Generator{
		rnd: rand.New(rand.NewSource(seed)), //nolint:gosec // sample data
		now: time.Now().Truncate(time.Second),
	}
}

// WithTime sets the time documents are created at.
func (g *Generator) WithTime(t time.Time) *Generator {
	g.now = t.Truncate(time.Second)
	return g
}

// Document builds a sample document of type dt.
func (g *Generator) Document(dt cda.DocumentType) (document.Document, error) {
	build, ok := builders[dt]
	if !ok {
		return nil, cda.NewArgumentError("documentType", string(dt), "is not a supported document type")
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	randomdataMu.Lock()
	defer randomdataMu.Unlock()
	randomdata.CustomRand(g.rnd)

	return build(g), nil
}

// All builds one sample of every document type in DocumentTypes order.
func (g *Generator) All() []document.Document {
	var docs []document.Document
	for _, dt := range cda.DocumentTypes() {
		doc, err := g.Document(dt)
		if err == nil {
			docs = append(docs, doc)
		}
	}
	return docs
}

var builders = map[cda.DocumentType]func(*Generator) document.Document{
	cda.EReferral:             func(g *Generator) document.Document { return g.eReferral() },
	cda.SpecialistLetter:      func(g *Generator) document.Document { return g.specialistLetter() },
	cda.DischargeSummary:      func(g *Generator) document.Document { return g.dischargeSummary() },
	cda.PathologyResultReport: func(g *Generator) document.Document { return g.pathologyResultReport() },
	cda.EPrescription:         func(g *Generator) document.Document { return g.ePrescription() },
	cda.DispenseRecord:        func(g *Generator) document.Document { return g.dispenseRecord() },
}

// --- primitives ---

var aest = time.FixedZone("AEST", 10*60*60)

func (g *Generator) at(offset time.Duration) *model.ISO8601DateTime {
	return model.DateTime(g.now.Add(offset).In(aest))
}

func (g *Generator) daysAgo(days int) *model.ISO8601DateTime {
	return g.at(-time.Duration(days) * 24 * time.Hour)
}

func (g *Generator) uuidIdentifier() *model.Identifier {
	id, err := uuid.NewRandomFromReader(g.rnd)
	if err != nil {
		return model.NewUUIDIdentifier()
	}
	return &model.Identifier{Root: id.String()}
}

func (g *Generator) uuid() uuid.UUID {
	id, err := uuid.NewRandomFromReader(g.rnd)
	if err != nil {
		return uuid.New()
	}
	return id
}

func (g *Generator) digits(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('0' + g.rnd.Intn(10))
	}
	return string(b)
}

func (g *Generator) pick(n int) int {
	return g.rnd.Intn(n)
}

// healthIdentifier returns a random identifier of type t with a valid
// check digit.
func (g *Generator) healthIdentifier(t vocab.HealthIdentifierType) model.Identifier {
	payload := t.Prefix() + g.digits(9)
	check, _ := model.LuhnCheckDigit(payload)
	id, err := model.NewHealthIdentifier(t, payload+strconv.Itoa(check))
	if err != nil {
		panic(err)
	}
	return *id
}

// MedicareNumber returns a random valid 11 digit Medicare number.
func (g *Generator) MedicareNumber() string {
	payload := strconv.Itoa(2+g.pick(5)) + g.digits(7)
	check, _ := model.MedicareCheckDigit(payload)
	issue := 1 + g.pick(9)
	irn := 1 + g.pick(9)
	return fmt.Sprintf("%s%d%d%d", payload, check, issue, irn)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

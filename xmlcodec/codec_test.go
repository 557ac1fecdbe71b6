package xmlcodec

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cda "github.com/gofhir/cda"
	"github.com/gofhir/cda/document"
	"github.com/gofhir/cda/sample"
)

func samples(t *testing.T) []document.Document {
	t.Helper()
	docs := sample.New(11).WithTime(time.Date(2024, time.May, 2, 8, 0, 0, 0, time.UTC)).All()
	require.Len(t, docs, len(cda.DocumentTypes()))
	return docs
}

func TestRoundTrip(t *testing.T) {
	for _, doc := range samples(t) {
		t.Run(string(doc.DocumentType()), func(t *testing.T) {
			data, err := Serialize(doc)
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(data, []byte("<?xml")))

			back, err := Deserialize(data)
			require.NoError(t, err)
			assert.Equal(t, doc.DocumentType(), back.DocumentType())
			assert.NoError(t, document.Validate(back))

			again, err := Serialize(back)
			require.NoError(t, err)
			assert.Equal(t, string(data), string(again))
		})
	}
}

func TestDetect(t *testing.T) {
	dt, err := Detect([]byte(`<?xml version="1.0"?><!-- c --><DispenseRecord xmlns="` + document.Namespace + `"/>`))
	require.NoError(t, err)
	assert.Equal(t, cda.DispenseRecord, dt)

	dt, err = Detect([]byte(`<EReferral/>`))
	require.NoError(t, err)
	assert.Equal(t, cda.EReferral, dt)

	tests := map[string]string{
		"unknown root":    `<Letter/>`,
		"wrong namespace": `<EReferral xmlns="urn:hl7-org:v3"/>`,
		"empty":           ``,
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Detect([]byte(input))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnknownRoot), err.Error())
		})
	}
}

func TestDeserializeAs_TypeMismatch(t *testing.T) {
	data, err := Serialize(document.NewEReferral())
	require.NoError(t, err)

	_, err = DeserializeAs(data, cda.DispenseRecord)
	assert.Error(t, err)

	doc, err := DeserializeAs(data, cda.EReferral)
	require.NoError(t, err)
	assert.Equal(t, cda.EReferral, doc.DocumentType())
}

func TestDeserialize_Malformed(t *testing.T) {
	_, err := Deserialize([]byte(`<EReferral><DocumentStatus>F</EReferral>`))
	assert.Error(t, err)
}

func TestFiles(t *testing.T) {
	doc := samples(t)[4]
	path := filepath.Join(t.TempDir(), "out", strings.ToLower(string(doc.DocumentType()))+".xml")

	require.NoError(t, SaveFile(path, doc))
	back, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, doc.DocumentType(), back.DocumentType())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.xml"))
	assert.Error(t, err)
}

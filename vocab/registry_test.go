package vocab

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gofhir/fhir/r4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Builtins(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, len(builtinTables())+4, r.Count())

	res := r.ValidateCode(SexMale.CodeSystem().OID, "M", "")
	assert.True(t, res.Known)
	assert.True(t, res.Valid)
	assert.Equal(t, "Male", res.Display)

	res = r.ValidateCode("urn:oid:"+SexMale.CodeSystem().OID, "M", "male")
	assert.True(t, res.Valid)
	assert.Empty(t, res.Message)

	res = r.ValidateCode(SexMale.CodeSystem().OID, "M", "Man")
	assert.True(t, res.Valid)
	assert.Contains(t, res.Message, "does not match")

	res = r.ValidateCode(SexMale.CodeSystem().OID, "X", "")
	assert.True(t, res.Known)
	assert.False(t, res.Valid)
}

func TestNewEmptyRegistry(t *testing.T) {
	r := NewEmptyRegistry()
	assert.Zero(t, r.Count())
	assert.False(t, r.ValidateCode(SexMale.CodeSystem().OID, "M", "").Known)
}

func TestRegistry_ExternalAndUnknown(t *testing.T) {
	r := NewRegistry()

	res := r.ValidateCode(SNOMEDCTAU.OID, "38341003", "Hypertension")
	assert.False(t, res.Known)
	assert.False(t, res.Valid)

	res = r.ValidateCode("1.2.3.4", "x", "")
	assert.False(t, res.Known)
	assert.Contains(t, res.Message, "not known")

	cs, ok := r.System(LOINC.OID)
	require.True(t, ok)
	assert.Equal(t, "LOINC", cs.Name)
}

func TestRegistry_LoadR4CodeSystem(t *testing.T) {
	r := NewRegistry()

	url := "urn:oid:1.2.36.1.2001.1001.101.104.16299"
	name := "NCTIS Medicine Status Values"
	parent, parentDisplay := "1", "Active"
	child, childDisplay := "1.1", "Active - changed"

	err := r.LoadR4CodeSystem(&r4.CodeSystem{
		Url:  &url,
		Name: &name,
		Concept: []r4.CodeSystemConcept{
			{
				Code:    &parent,
				Display: &parentDisplay,
				Concept: []r4.CodeSystemConcept{{Code: &child, Display: &childDisplay}},
			},
		},
	})
	require.NoError(t, err)

	display, ok := r.Lookup("1.2.36.1.2001.1001.101.104.16299", "1.1")
	assert.True(t, ok)
	assert.Equal(t, "Active - changed", display)

	cs, ok := r.System("1.2.36.1.2001.1001.101.104.16299")
	require.True(t, ok)
	assert.Equal(t, name, cs.Name)
	assert.Equal(t, []string{"1", "1.1"}, r.Codes(url))

	assert.Error(t, r.LoadR4CodeSystem(nil))
	assert.Error(t, r.LoadR4CodeSystem(&r4.CodeSystem{}))
}

const codeSystemJSON = `{
  "resourceType": "CodeSystem",
  "url": "urn:oid:1.2.36.1.2001.1001.101.104.16592",
  "name": "NCTIS Reason for Referral",
  "concept": [
    {"code": "1", "display": "Assessment"},
    {"code": "2", "display": "Management"}
  ]
}`

func TestRegistry_LoadJSON(t *testing.T) {
	r := NewRegistry()

	stats, err := r.LoadJSON([]byte(codeSystemJSON))
	require.NoError(t, err)
	assert.Equal(t, 1, stats.CodeSystemsLoaded)
	assert.True(t, r.ValidateCode("1.2.36.1.2001.1001.101.104.16592", "2", "").Valid)

	bundle := `{"resourceType":"Bundle","entry":[{"resource":` + codeSystemJSON + `},{"resource":{"resourceType":"ValueSet"}}]}`
	stats, err = r.LoadJSON([]byte(bundle))
	require.NoError(t, err)
	assert.Equal(t, 1, stats.CodeSystemsLoaded)
	assert.Equal(t, 1, stats.Skipped)

	_, err = r.LoadJSON([]byte("{"))
	assert.Error(t, err)
}

func TestRegistry_LoadDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "reason.json"), []byte(codeSystemJSON), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o600))

	r := NewRegistry()
	before := r.Count()
	stats, err := r.LoadDirectory(dir)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.FilesProcessed)
	assert.Equal(t, 1, stats.CodeSystemsLoaded)
	assert.Equal(t, before+1, r.Count())

	_, err = r.LoadFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestRegistry_Systems(t *testing.T) {
	systems := Default().Systems()
	require.NotEmpty(t, systems)
	for i := 1; i < len(systems); i++ {
		assert.Less(t, systems[i-1].OID, systems[i].OID)
	}
	assert.Same(t, Default(), Default())
}

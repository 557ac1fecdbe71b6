package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cda "github.com/gofhir/cda"
)

type leaf struct {
	Name string
}

func (l *leaf) Validate(path string, v *Builder) {
	v.ArgumentRequiredCheck(path+".Name", l.Name)
}

func TestIsEmpty(t *testing.T) {
	var nilLeaf *leaf
	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"nil", nil, true},
		{"blank string", "  ", true},
		{"string", "x", false},
		{"zero time", time.Time{}, true},
		{"time", time.Now(), false},
		{"nil pointer", nilLeaf, true},
		{"pointer", &leaf{}, false},
		{"empty slice", []string{}, true},
		{"slice", []string{"a"}, false},
		{"empty map", map[string]int{}, true},
		{"zero struct", leaf{}, true},
		{"struct", leaf{Name: "a"}, false},
		{"int", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEmpty(tt.value))
		})
	}
}

func TestArgumentRequiredCheck(t *testing.T) {
	v := NewPhaseBuilder("required")

	assert.True(t, v.ArgumentRequiredCheck("CDAContext.DocumentID", "abc"))
	assert.False(t, v.ArgumentRequiredCheck("CDAContext.SetID", ""))

	require.Len(t, v.Issues(), 1)
	issue := v.Issues()[0]
	assert.Equal(t, cda.IssueTypeRequired, issue.Code)
	assert.Equal(t, "CDAContext.SetID", issue.Path)
	assert.Equal(t, "required", issue.Phase)
	assert.Equal(t, []string{"CDAContext.SetID: is required"}, v.Messages())
	assert.True(t, v.HasErrors())
}

func TestRangeCheck(t *testing.T) {
	tests := []struct {
		name          string
		count, lo, hi int
		ok            bool
		msg           string
	}{
		{"unbounded ok", 3, 1, -1, true, ""},
		{"too few", 0, 1, -1, false, "must contain at least 1 item(s), found 0"},
		{"exact", 2, 1, 1, false, "must contain exactly 1 item(s), found 2"},
		{"between", 5, 1, 3, false, "must contain between 1 and 3 item(s), found 5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewBuilder()
			assert.Equal(t, tt.ok, v.RangeCheck("Items", tt.count, tt.lo, tt.hi))
			if tt.ok {
				assert.Empty(t, v.Issues())
				return
			}
			require.Len(t, v.Issues(), 1)
			assert.Equal(t, cda.IssueTypeCardinality, v.Issues()[0].Code)
			assert.Equal(t, tt.msg, v.Issues()[0].Diagnostics)
		})
	}
}

func TestChoiceCheck(t *testing.T) {
	v := NewBuilder()
	names := []string{"Person", "Organisation"}

	assert.True(t, v.ChoiceCheck("Participant", names, &leaf{}, nil))
	assert.False(t, v.ChoiceCheck("Participant", names, nil, nil))
	assert.False(t, v.ChoiceCheck("Participant", names, &leaf{}, "org"))

	require.Len(t, v.Issues(), 2)
	assert.Equal(t, "exactly one of Person, Organisation must be provided", v.Issues()[0].Diagnostics)
}

func TestRequireEach(t *testing.T) {
	v := NewBuilder()
	RequireEach(v, "Referees", []*leaf(nil), 1)
	RequireEach(v, "Items", []*leaf{{Name: "a"}, {}}, 1)

	assert.Equal(t, []string{
		"Referees: is required",
		"Items[1].Name: is required",
	}, v.Messages())
}

func TestValidateSkipsMissing(t *testing.T) {
	v := NewBuilder()
	var missing *leaf
	Validate(v, "UsualGP", missing)
	assert.Empty(t, v.Issues())

	Validate(v, "UsualGP", &leaf{})
	assert.Equal(t, []string{"UsualGP.Name: is required"}, v.Messages())
}

func TestWarningsDoNotFail(t *testing.T) {
	v := NewBuilder()
	v.AddWarning("Title", "should be set")
	assert.False(t, v.HasErrors())
	assert.NoError(t, v.Err(cda.EReferral))

	v.AddValidationMessage("Sex", "X", "is not a sex")
	err := v.Err(cda.EReferral)
	require.Error(t, err)
	verr, ok := cda.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, []string{"Sex"}, verr.Paths())
}

func TestPath(t *testing.T) {
	assert.Equal(t, "", Path())
	assert.Equal(t, "A", Path("A"))
	assert.Equal(t, "A.C", Path("A", "", "C"))
	assert.Equal(t, "B", Path("", "B"))
	assert.Equal(t, "SCSContext.Referees[2]", Index("SCSContext.Referees", 2))
}

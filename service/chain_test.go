package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gofhir/cda/vocab"
)

type stubValidator struct {
	res   *vocab.ValidateCodeResult
	err   error
	calls int
}

func (s *stubValidator) ValidateCode(_ context.Context, _, _, _ string) (*vocab.ValidateCodeResult, error) {
	s.calls++
	return s.res, s.err
}

func TestRegistryValidator(t *testing.T) {
	v := NewRegistryValidator(nil)
	ctx := context.Background()
	sex := vocab.SexFemale.CodeSystem().OID

	res, err := v.ValidateCode(ctx, sex, "F", "Female")
	require.NoError(t, err)
	assert.True(t, res.Valid)

	res, err = v.ValidateCode(ctx, sex, "Z", "")
	require.NoError(t, err)
	assert.False(t, res.Valid)

	_, err = v.ValidateCode(ctx, vocab.SNOMEDCTAU.OID, "271807003", "")
	assert.ErrorIs(t, err, ErrNotSupported)
}

func TestTerminologyChain(t *testing.T) {
	ctx := context.Background()
	first := &stubValidator{err: ErrNotSupported}
	second := &stubValidator{res: &vocab.ValidateCodeResult{Known: true, Valid: true}}

	chain := NewTerminologyChain(first, second)
	res, err := chain.ValidateCode(ctx, "1.2.3", "x", "")
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 1, second.calls)

	failing := &stubValidator{err: errors.New("boom")}
	_, err = NewTerminologyChain(failing, second).ValidateCode(ctx, "1.2.3", "x", "")
	assert.EqualError(t, err, "boom")

	partial := &stubValidator{res: &vocab.ValidateCodeResult{Message: "content is not available"}, err: ErrNotSupported}
	chain = NewTerminologyChain(partial)
	chain.Add(first)
	res, err = chain.ValidateCode(ctx, "1.2.3", "x", "")
	assert.ErrorIs(t, err, ErrNotSupported)
	assert.Equal(t, "content is not available", res.Message)
}

func TestCachingCodeValidator(t *testing.T) {
	ctx := context.Background()
	next := &stubValidator{res: &vocab.ValidateCodeResult{Known: true, Valid: true}}
	c := NewCachingCodeValidator(next, 8)

	for i := 0; i < 3; i++ {
		res, err := c.ValidateCode(ctx, "1.2.3", "x", "")
		require.NoError(t, err)
		assert.True(t, res.Valid)
	}
	assert.Equal(t, 1, next.calls)
	assert.Equal(t, uint64(2), c.Stats().Hits)
}

func TestDocumentJSON_Prunes(t *testing.T) {
	doc := struct {
		Name    string
		Empty   string
		Nil     *int
		List    []string
		Nested  struct{ A, B string }
		Count   int
		Flag    bool
		Entries []struct{ X string }
	}{
		Name:    "Citizen",
		Nested:  struct{ A, B string }{A: "a"},
		Entries: []struct{ X string }{{}, {X: "y"}},
	}

	out, err := DocumentJSON(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Name":"Citizen","Nested":{"A":"a"},"Count":0,"Flag":false,"Entries":[{"X":"y"}]}`, string(out))
}

func TestServices(t *testing.T) {
	s := NewServices()
	require.NotNil(t, s.Terminology)
	assert.Nil(t, s.Constraints)

	ev := NewFHIRPathEvaluator(4, nil)
	chain := NewTerminologyChain()
	s.WithConstraints(ev).WithTerminology(chain)
	assert.Equal(t, ev, s.Constraints)
	assert.Equal(t, chain, s.Terminology)
}

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cda "github.com/gofhir/cda"
)

func TestFHIRPathEvaluator(t *testing.T) {
	metrics := cda.NewMetrics()
	ev := NewFHIRPathEvaluator(8, metrics)
	ctx := context.Background()
	doc := []byte(`{"SCSContent":{"DispenseItem":{"NumberOfThisDispense":2,"MaximumNumberOfRepeats":0}}}`)

	tests := []struct {
		expr string
		want bool
	}{
		{"SCSContent.DispenseItem.exists()", true},
		{"SCSContent.PrescriptionItem.exists()", false},
		{"SCSContent.DispenseItem.all(NumberOfThisDispense <= MaximumNumberOfRepeats + 1)", false},
		{"SCSContent.DispenseItem.NumberOfThisDispense", true},
	}
	for _, tt := range tests {
		got, err := ev.Evaluate(ctx, tt.expr, doc)
		require.NoError(t, err, tt.expr)
		assert.Equal(t, tt.want, got, tt.expr)
	}

	_, err := ev.Evaluate(ctx, "SCSContent.DispenseItem.exists()", doc)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), metrics.CacheHits())
	assert.Equal(t, uint64(4), metrics.CacheMisses())
	assert.Equal(t, 4, ev.CacheStats().Size)
}

func TestFHIRPathEvaluator_Errors(t *testing.T) {
	ev := NewFHIRPathEvaluator(8, nil)

	_, err := ev.Evaluate(context.Background(), "SCSContent.(", []byte(`{}`))
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = ev.Evaluate(ctx, "SCSContent.exists()", []byte(`{}`))
	assert.ErrorIs(t, err, context.Canceled)
}

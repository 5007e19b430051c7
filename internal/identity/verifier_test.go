package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical vectors", []float32{1, 2, 3}, []float32{1, 2, 3}, 1},
		{"opposite vectors", []float32{1, 0}, []float32{-1, 0}, -1},
		{"orthogonal vectors", []float32{1, 0}, []float32{0, 1}, 0},
		{"length mismatch", []float32{1, 2}, []float32{1, 2, 3}, 0},
		{"empty vectors", nil, nil, 0},
		{"zero vector", []float32{0, 0}, []float32{1, 1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, CosineSimilarity(tt.a, tt.b), 1e-9)
		})
	}
}

func TestVerify(t *testing.T) {
	v := NewVerifier(0.40)
	registered := []float32{1, 0, 0}

	assert.Equal(t, Match, v.Verify(registered, []float32{1, 0, 0}))
	assert.Equal(t, Mismatch, v.Verify(registered, []float32{0, 1, 0}))
}

func TestVerifyIndeterminateWithoutEmbedding(t *testing.T) {
	v := NewVerifier(0.40)

	// Missing embeddings must never count as a mismatch; brief
	// occlusion would otherwise raise false unauthorized alerts.
	assert.Equal(t, Indeterminate, v.Verify(nil, []float32{1, 0}))
	assert.Equal(t, Indeterminate, v.Verify([]float32{1, 0}, nil))
	assert.Equal(t, Indeterminate, v.Verify(nil, nil))
}

func TestVerifyAtThreshold(t *testing.T) {
	v := NewVerifier(1.0)
	assert.Equal(t, Match, v.Verify([]float32{1, 0}, []float32{1, 0}))
}

func TestResultString(t *testing.T) {
	assert.Equal(t, "MATCH", Match.String())
	assert.Equal(t, "MISMATCH", Mismatch.String())
	assert.Equal(t, "INDETERMINATE", Indeterminate.String())
}

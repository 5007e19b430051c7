package identity

import "math"

// Result of comparing a frame's primary face against the registered
// embedding.
type Result int

const (
	// Indeterminate means no embedding was available this frame. It
	// must never be treated as a mismatch; brief occlusion is normal.
	Indeterminate Result = iota
	Match
	Mismatch
)

func (r Result) String() string {
	switch r {
	case Match:
		return "MATCH"
	case Mismatch:
		return "MISMATCH"
	default:
		return "INDETERMINATE"
	}
}

// Verifier confirms a frame's primary face against the session's
// registered embedding using cosine similarity.
type Verifier struct {
	threshold float64
}

func NewVerifier(threshold float64) *Verifier {
	return &Verifier{threshold: threshold}
}

func (v *Verifier) Verify(registered, candidate []float32) Result {
	if len(registered) == 0 || len(candidate) == 0 {
		return Indeterminate
	}
	if CosineSimilarity(registered, candidate) >= v.threshold {
		return Match
	}
	return Mismatch
}

// CosineSimilarity calculates cosine similarity between two vectors.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}

package similarity

// Matrix is a symmetric n×n table of similarity scores in [0,1], indexed by row position.
// It is immutable after Build and safe for concurrent reads.
type Matrix struct {
	n      int
	scores []float64
}

// Build vectorizes docs and computes every pairwise score once.
// A document with no usable terms scores 0 against everything, itself included.
func Build(docs []string, v *Vectorizer) (*Matrix, error) {
	vectors, err := v.FitTransform(docs)
	if err != nil {
		return nil, err
	}

	n := len(docs)
	m := &Matrix{n: n, scores: make([]float64, n*n)}
	for i := 0; i < n; i++ {
		if len(vectors[i]) > 0 {
			m.scores[i*n+i] = 1
		}
		for j := i + 1; j < n; j++ {
			s := clamp(Dot(vectors[i], vectors[j]))
			m.scores[i*n+j] = s
			m.scores[j*n+i] = s
		}
	}
	return m, nil
}

func clamp(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}

func (m *Matrix) Size() int {
	return m.n
}

func (m *Matrix) Score(i, j int) float64 {
	return m.scores[i*m.n+j]
}

// Row returns a copy of the scores of row i against every row.
func (m *Matrix) Row(i int) []float64 {
	row := make([]float64, m.n)
	copy(row, m.scores[i*m.n:(i+1)*m.n])
	return row
}

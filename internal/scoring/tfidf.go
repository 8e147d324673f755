package scoring

import "math"

// tfidfVectors builds TF-IDF vectors for a two-document corpus over the
// shared vocabulary of both token lists. Term frequency is the raw count,
// inverse document frequency is smoothed, and both vectors are L2-normalized.
// The boolean result is false when the vocabulary is empty (degenerate input).
func tfidfVectors(a, b []string) ([]float64, []float64, bool) {
	vocab := make(map[string]int)
	for _, t := range a {
		if _, ok := vocab[t]; !ok {
			vocab[t] = len(vocab)
		}
	}
	for _, t := range b {
		if _, ok := vocab[t]; !ok {
			vocab[t] = len(vocab)
		}
	}

	if len(vocab) == 0 {
		return nil, nil, false
	}

	va := make([]float64, len(vocab))
	vb := make([]float64, len(vocab))
	for _, t := range a {
		va[vocab[t]]++
	}
	for _, t := range b {
		vb[vocab[t]]++
	}

	// Smoothed IDF over the two-document corpus: ln((1+n)/(1+df)) + 1.
	const docs = 2
	for _, i := range vocab {
		df := 0
		if va[i] > 0 {
			df++
		}
		if vb[i] > 0 {
			df++
		}
		idf := math.Log(float64(1+docs)/float64(1+df)) + 1
		va[i] *= idf
		vb[i] *= idf
	}

	normalizeL2(va)
	normalizeL2(vb)

	return va, vb, true
}

func normalizeL2(v []float64) {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	n := math.Sqrt(sum)
	if n == 0 {
		return
	}
	for i := range v {
		v[i] /= n
	}
}

// cosine computes cosine similarity between two vectors of equal length.
func cosine(a, b []float64) float64 {
	var dot, na, nb float64
	for i := 0; i < len(a); i++ {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	den := math.Sqrt(na) * math.Sqrt(nb)
	if den == 0 {
		return 0
	}
	return dot / den
}

// Package similarity builds a pairwise cosine similarity matrix over TF-IDF
// weighted documents. Terms are lower-cased word runs of two or more characters;
// English stop words are dropped; idf is smoothed as ln((1+n)/(1+df)) + 1 and
// every document vector is L2 normalised.
package similarity

import (
	"errors"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/kljensen/snowball"
)

var ErrEmptyVocabulary = errors.New("empty vocabulary: documents contain only stop words or no words at all")

var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

type Options struct {
	// Stemming reduces tokens to their English snowball stem after stop-word removal.
	Stemming bool
}

type Vectorizer struct {
	opts Options
}

func NewVectorizer(opts Options) *Vectorizer {
	return &Vectorizer{opts: opts}
}

// term is one non-zero weight of a sparse document vector.
type term struct {
	index  int
	weight float64
}

// Vector is a sparse, L2-normalised document vector sorted by term index.
type Vector []term

// Tokenize returns the terms of doc in order of appearance.
func (v *Vectorizer) Tokenize(doc string) []string {
	raw := tokenPattern.FindAllString(strings.ToLower(doc), -1)
	tokens := make([]string, 0, len(raw))
	for _, tok := range raw {
		if IsStopWord(tok) {
			continue
		}
		if v.opts.Stemming {
			if stemmed, err := snowball.Stem(tok, "english", true); err == nil && stemmed != "" {
				tok = stemmed
			}
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// FitTransform learns the vocabulary and idf weights of docs and returns their vectors.
func (v *Vectorizer) FitTransform(docs []string) ([]Vector, error) {
	vocab := make(map[string]int)
	counts := make([]map[int]int, len(docs))
	df := make([]int, 0)

	for i, doc := range docs {
		counts[i] = make(map[int]int)
		for _, tok := range v.Tokenize(doc) {
			idx, ok := vocab[tok]
			if !ok {
				idx = len(vocab)
				vocab[tok] = idx
				df = append(df, 0)
			}
			if counts[i][idx] == 0 {
				df[idx]++
			}
			counts[i][idx]++
		}
	}

	if len(vocab) == 0 {
		return nil, ErrEmptyVocabulary
	}

	n := float64(len(docs))
	idf := make([]float64, len(df))
	for i, d := range df {
		idf[i] = math.Log((1+n)/(1+float64(d))) + 1
	}

	vectors := make([]Vector, len(docs))
	for i, c := range counts {
		vec := make(Vector, 0, len(c))
		var norm float64
		for idx, tf := range c {
			w := float64(tf) * idf[idx]
			norm += w * w
			vec = append(vec, term{index: idx, weight: w})
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for k := range vec {
				vec[k].weight /= norm
			}
		}
		sort.Slice(vec, func(a, b int) bool { return vec[a].index < vec[b].index })
		vectors[i] = vec
	}
	return vectors, nil
}

// Dot is the cosine similarity of two normalised vectors.
func Dot(a, b Vector) float64 {
	var sum float64
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].index == b[j].index:
			sum += a[i].weight * b[j].weight
			i++
			j++
		case a[i].index < b[j].index:
			i++
		default:
			j++
		}
	}
	return sum
}

package service

import (
	"strings"

	pgvector "github.com/pgvector/pgvector-go"
)

// GenerateEmbedding maps text onto the vector(3) column used for similarity
// search: total length, vowel count, consonant count. Deterministic, so the
// same text always lands at the same point and the column dimension stays
// fixed without an external model.
func GenerateEmbedding(text string) pgvector.Vector {
	lowered := strings.ToLower(text)
	var vowels, consonants float32
	for _, r := range lowered {
		switch {
		case strings.ContainsRune("aeiou", r):
			vowels++
		case r >= 'a' && r <= 'z':
			consonants++
		}
	}
	return pgvector.NewVector([]float32{float32(len(lowered)), vowels, consonants})
}

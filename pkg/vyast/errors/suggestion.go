package errors

import (
	"fmt"
	"strings"
)

// SuggestVariant suggests a known variant tag close to an unknown one.
func SuggestVariant(unknown string, validTags []string) string {
	if best, ok := closest(unknown, validTags, 3); ok {
		return fmt.Sprintf("Did you mean '%s'?", best)
	}
	return ""
}

// SuggestField suggests a valid key when an unknown one is present.
func SuggestField(unknown string, validFields []string) string {
	if len(validFields) == 0 {
		return ""
	}

	if best, ok := closest(unknown, validFields, 3); ok {
		return fmt.Sprintf("Did you mean '%s'?", best)
	}

	if len(validFields) > 5 {
		return fmt.Sprintf("Valid fields include: %s, ...", strings.Join(validFields[:5], ", "))
	}
	return fmt.Sprintf("Valid fields: %s", strings.Join(validFields, ", "))
}

// closest returns the candidate with the smallest edit distance to s, if that
// distance is below limit.
func closest(s string, candidates []string, limit int) (string, bool) {
	minDistance := limit
	var bestMatch string
	for _, c := range candidates {
		dist := levenshteinDistance(strings.ToLower(s), strings.ToLower(c))
		if dist < minDistance {
			minDistance = dist
			bestMatch = c
		}
	}
	return bestMatch, bestMatch != ""
}

// levenshteinDistance computes the Levenshtein distance between two strings.
func levenshteinDistance(s1, s2 string) int {
	if s1 == s2 {
		return 0
	}

	len1 := len(s1)
	len2 := len(s2)

	matrix := make([][]int, len1+1)
	for i := range matrix {
		matrix[i] = make([]int, len2+1)
	}

	for i := 0; i <= len1; i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len2; j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len1; i++ {
		for j := 1; j <= len2; j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}

			matrix[i][j] = min(
				matrix[i-1][j]+1,      // Deletion
				matrix[i][j-1]+1,      // Insertion
				matrix[i-1][j-1]+cost, // Substitution
			)
		}
	}

	return matrix[len1][len2]
}

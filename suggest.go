/*
Copyright 2024 Blnk Finance Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package saifu

import (
	"strings"

	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// suggestID returns the candidate closest to id by edit distance, ignoring case. Candidates
// further than a third of id's length (at least two edits) are not suggested.
func suggestID(id string, candidates []string) (string, bool) {
	target := []rune(strings.ToLower(id))
	maxDistance := max(2, len(target)/3)

	best, bestDistance := "", maxDistance+1
	for _, candidate := range candidates {
		distance := levenshtein.DistanceForStrings(target, []rune(strings.ToLower(candidate)), levenshtein.DefaultOptions)
		if distance < bestDistance {
			best, bestDistance = candidate, distance
		}
	}
	return best, best != ""
}

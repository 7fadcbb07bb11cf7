package normalizer

import (
	"regexp"
	"sort"
	"strings"

	"placesearch-api/internal/models"
	"placesearch-api/internal/places"
)

var nonWordPattern = regexp.MustCompile(`[^\w\s]`)

// stopWords are common function words excluded from review tag extraction.
var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "or": {}, "but": {}, "in": {}, "on": {}, "at": {},
	"to": {}, "for": {}, "of": {}, "with": {}, "by": {}, "is": {}, "was": {},
	"are": {}, "were": {}, "be": {}, "been": {}, "have": {}, "has": {},
	"had": {}, "do": {}, "does": {}, "did": {}, "will": {}, "would": {},
	"could": {}, "should": {}, "may": {}, "might": {}, "can": {}, "must": {},
	"shall": {}, "this": {}, "that": {}, "these": {}, "those": {}, "i": {},
	"you": {}, "he": {}, "she": {}, "it": {}, "we": {}, "they": {}, "me": {},
	"him": {}, "her": {}, "us": {}, "them": {}, "my": {}, "your": {},
	"his": {}, "its": {}, "our": {}, "their": {}, "a": {}, "an": {},
}

// ReviewsDistribution builds the 1-5 star histogram. Ratings are floored to
// an integer; anything outside [1,5] is dropped from the histogram.
func ReviewsDistribution(reviews []places.Review) models.ReviewsDistribution {
	var distribution models.ReviewsDistribution

	for _, review := range reviews {
		switch int(review.Rating) {
		case 1:
			distribution.OneStar++
		case 2:
			distribution.TwoStar++
		case 3:
			distribution.ThreeStar++
		case 4:
			distribution.FourStar++
		case 5:
			distribution.FiveStar++
		}
	}

	return distribution
}

// ExtractReviewTags extracts frequency-ranked keywords from review bodies:
// lowercase, strip punctuation, tokenize on whitespace, drop tokens of
// length <=2 and stop words, keep tokens seen at least twice, and return the
// top 10 by count. Ties keep first-encountered order.
func ExtractReviewTags(reviews []places.Review) []models.ReviewTag {
	counts := make(map[string]int)
	var order []string

	for _, review := range reviews {
		if review.Text == nil {
			continue
		}

		text := strings.ToLower(review.Text.Text)
		text = nonWordPattern.ReplaceAllString(text, " ")

		for _, word := range strings.Fields(text) {
			if len(word) <= 2 {
				continue
			}
			if _, stop := stopWords[word]; stop {
				continue
			}
			if _, seen := counts[word]; !seen {
				order = append(order, word)
			}
			counts[word]++
		}
	}

	var tags []models.ReviewTag
	for _, word := range order {
		if counts[word] >= 2 {
			tags = append(tags, models.ReviewTag{Title: word, Count: counts[word]})
		}
	}

	sort.SliceStable(tags, func(i, j int) bool {
		return tags[i].Count > tags[j].Count
	})

	if len(tags) > 10 {
		tags = tags[:10]
	}
	if tags == nil {
		tags = []models.ReviewTag{}
	}

	return tags
}

package services

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// maxVocabulary caps the term-frequency vocabulary at the most frequent
// terms across the pair of documents being compared.
const maxVocabulary = 1000

// tokenPattern extracts runs of two or more word characters. Punctuation is
// a separator, never part of a token, so "node.js" yields "node" and "js"
// and a term like "c++" yields nothing at all.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_][\p{L}\p{N}_]+`)

var englishStopWords = map[string]struct{}{}

func init() {
	words := strings.Fields(`a about above across after afterwards again
		against all almost alone along already also although always am among
		amongst amoungst amount an and another any anyhow anyone anything
		anyway anywhere are around as at back be became because become becomes
		becoming been before beforehand behind being below beside besides
		between beyond bill both bottom but by call can cannot cant co con
		could couldnt cry de describe detail do done down due during each eg
		eight either eleven else elsewhere empty enough etc even ever every
		everyone everything everywhere except few fifteen fifty fill find fire
		first five for former formerly forty found four from front full
		further get give go had has hasnt have he hence her here hereafter
		hereby herein hereupon hers herself him himself his how however
		hundred i ie if in inc indeed interest into is it its itself keep last
		latter latterly least less ltd made many may me meanwhile might mill
		mine more moreover most mostly move much must my myself name namely
		neither never nevertheless next nine no nobody none noone nor not
		nothing now nowhere of off often on once one only onto or other others
		otherwise our ours ourselves out over own part per perhaps please put
		rather re same see seem seemed seeming seems serious several she
		should show side since sincere six sixty so some somehow someone
		something sometime sometimes somewhere still such system take ten than
		that the their them themselves then thence there thereafter thereby
		therefore therein thereupon these they thick thin third this those
		though three through throughout thru thus to together too top toward
		towards twelve twenty two un under until up upon us very via was we
		well were what whatever when whence whenever where whereafter whereas
		whereby wherein whereupon wherever whether which while whither who
		whoever whole whom whose why will with within without would yet you
		your yours yourself yourselves`)
	for _, w := range words {
		englishStopWords[w] = struct{}{}
	}
}

// tokenize extracts scoring tokens from already-normalized text. Tokens are
// maximal runs of two or more word characters; English stop words are
// dropped.
func tokenize(text string) []string {
	fields := tokenPattern.FindAllString(text, -1)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if _, stop := englishStopWords[f]; stop {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// tfidfCosine computes the cosine similarity between two documents using
// TF-IDF vectors built over the two-document corpus. The idf is smoothed
// and the vectors L2-normalized, so the result is already in [0,1]; it is
// clamped defensively against float drift. Degenerate inputs score 0.
func tfidfCosine(textA, textB string) float64 {
	tokensA := tokenize(textA)
	tokensB := tokenize(textB)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0.0
	}

	countsA := termCounts(tokensA)
	countsB := termCounts(tokensB)

	vocab := buildVocabulary(countsA, countsB)
	if len(vocab) == 0 {
		return 0.0
	}

	vecA := tfidfVector(countsA, countsB, vocab)
	vecB := tfidfVector(countsB, countsA, vocab)

	var dot, normA, normB float64
	for i := range vocab {
		dot += vecA[i] * vecB[i]
		normA += vecA[i] * vecA[i]
		normB += vecB[i] * vecB[i]
	}
	if normA == 0 || normB == 0 {
		return 0.0
	}

	similarity := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	return math.Min(similarity, 1.0)
}

func termCounts(tokens []string) map[string]int {
	counts := make(map[string]int, len(tokens))
	for _, t := range tokens {
		counts[t]++
	}
	return counts
}

// buildVocabulary merges the two documents' terms, keeping at most
// maxVocabulary of them ordered by total frequency, ties lexicographic.
func buildVocabulary(countsA, countsB map[string]int) []string {
	totals := make(map[string]int, len(countsA)+len(countsB))
	for t, c := range countsA {
		totals[t] += c
	}
	for t, c := range countsB {
		totals[t] += c
	}

	vocab := make([]string, 0, len(totals))
	for t := range totals {
		vocab = append(vocab, t)
	}
	sort.Slice(vocab, func(i, j int) bool {
		if totals[vocab[i]] != totals[vocab[j]] {
			return totals[vocab[i]] > totals[vocab[j]]
		}
		return vocab[i] < vocab[j]
	})

	if len(vocab) > maxVocabulary {
		vocab = vocab[:maxVocabulary]
	}
	return vocab
}

// tfidfVector builds the TF-IDF vector for the document with counts `own`,
// where `other` is the second document of the corpus. Smoothed idf:
// ln((1+n)/(1+df)) + 1 with n = 2 documents.
func tfidfVector(own, other map[string]int, vocab []string) []float64 {
	vec := make([]float64, len(vocab))
	for i, term := range vocab {
		tf := float64(own[term])
		if tf == 0 {
			continue
		}
		df := 1
		if other[term] > 0 {
			df = 2
		}
		idf := math.Log(3.0/float64(1+df)) + 1
		vec[i] = tf * idf
	}
	return vec
}

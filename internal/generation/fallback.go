package generation

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/phrazzld/flashforge-api/internal/domain"
)

// Card count bounds for every generation result.
const (
	MinCards = 10
	MaxCards = 20
)

const (
	minSentenceRunes = 10
	excerptRunes     = 50
	minTermRunes     = 6
	maxTerms         = 10
)

// Fallback derives flashcards from content without any external call.
//
// Sentences (split on '.') longer than ten characters become "What is
// discussed in" cards, up to MaxCards. If that yields fewer than MinCards,
// distinct alphabetic words longer than six characters become "Define or
// explain" cards until MinCards is reached. Any remaining shortfall is padded
// by repeating the last card, so short inputs produce visibly duplicated
// records sharing one ID.
func Fallback(content string, now time.Time) []domain.Flashcard {
	cards := make([]domain.Flashcard, 0, MaxCards)

	for _, sentence := range sentences(content) {
		if len(cards) == MaxCards {
			break
		}
		cards = append(cards, domain.NewFlashcard(excerptQuestion(sentence), sentence, now))
	}

	if len(cards) < MinCards {
		for _, term := range keyTerms(content) {
			if len(cards) >= MinCards {
				break
			}
			cards = append(cards, domain.NewFlashcard(
				"Define or explain: "+term,
				fmt.Sprintf("Based on the context, %s is an important concept discussed in the material.", term),
				now,
			))
		}
	}

	// Content with no usable sentence or term still yields a card.
	if len(cards) == 0 {
		whole := strings.TrimSpace(content)
		cards = append(cards, domain.NewFlashcard(excerptQuestion(whole), whole, now))
	}

	for len(cards) < MinCards {
		cards = append(cards, cards[len(cards)-1])
	}

	return cards
}

func excerptQuestion(text string) string {
	return fmt.Sprintf("What is discussed in: '%s...'?", truncateRunes(text, excerptRunes))
}

func sentences(content string) []string {
	var out []string
	for _, part := range strings.Split(content, ".") {
		s := strings.TrimSpace(part)
		if utf8.RuneCountInString(s) > minSentenceRunes {
			out = append(out, s)
		}
	}
	return out
}

func keyTerms(content string) []string {
	seen := make(map[string]struct{})
	var terms []string
	for _, word := range strings.Fields(content) {
		if len(terms) == maxTerms {
			break
		}
		if utf8.RuneCountInString(word) <= minTermRunes || !isAlpha(word) {
			continue
		}
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		terms = append(terms, word)
	}
	return terms
}

func isAlpha(word string) bool {
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return word != ""
}

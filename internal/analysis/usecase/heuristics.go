package usecase

import (
	"regexp"
	"strings"
	"unicode"

	"trustrate-srv/internal/model"
)

// spamPhrases flag self-promotion and get-rich bait. Matched as lowercase
// substrings.
var spamPhrases = []string{
	"check out my channel",
	"subscribe to my channel",
	"sub to my channel",
	"visit my channel",
	"check my profile",
	"follow me",
	"free money",
	"make money fast",
	"get rich",
	"earn cash",
	"click this link",
	"click here",
	"giveaway winner",
	"dm me on",
	"whatsapp me",
	"investment opportunity",
	"crypto profits",
}

var (
	allCapsPattern   = regexp.MustCompile(`^[A-Z0-9\s!?.,']+$`)
	botAuthorPattern = regexp.MustCompile(`^[A-Za-z]+\d+$`)
	repeatedPunct       = regexp.MustCompile(`[!?]{3,}`)
	numericToken        = regexp.MustCompile(`\d|\b(minute|hour|day|week|month|year)s?\b`)
	firstPerson         = regexp.MustCompile(`\b(i|my|me|mine|i've|i'm|we)\b`)
)

// placeholderAuthors are substrings of throwaway display names.
var placeholderAuthors = []string{"user", "guest", "anonymous"}

// detectSpam reports whether the text contains a known spam phrase.
func detectSpam(text string) bool {
	lower := strings.ToLower(text)
	for _, phrase := range spamPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// detectBotLike flags short, shouty, or repetitive texts and generic
// bot-style author names.
func detectBotLike(text, author string) bool {
	if len(text) < 10 {
		return true
	}
	if hasLetters(text) && allCapsPattern.MatchString(text) {
		return true
	}
	if hasRepeatedChar(text) {
		return true
	}
	if botAuthorPattern.MatchString(author) {
		return true
	}
	lowerAuthor := strings.ToLower(author)
	for _, p := range placeholderAuthors {
		if strings.Contains(lowerAuthor, p) {
			return true
		}
	}
	return false
}

// trustScore grades a comment 0-10 from its metadata. Informational only;
// it does not feed the rating formula.
func trustScore(c model.Comment, isSpam, isBotLike, isSuspicious bool) float64 {
	score := 5.0

	if c.AuthorVerified {
		score += 3
	}
	switch {
	case c.LikeCount > 20:
		score += 2
	case c.LikeCount > 5:
		score += 1
	}
	switch {
	case len(c.Text) > 100:
		score += 1.5
	case len(c.Text) > 50:
		score += 1
	}
	lower := strings.ToLower(c.Text)
	if numericToken.MatchString(lower) {
		score += 1
	}
	if firstPerson.MatchString(lower) {
		score += 1
	}
	if strings.Contains(c.Text, "?") {
		score += 0.5
	}

	if isSpam {
		score -= 5
	}
	if isBotLike {
		score -= 4
	}
	if isSuspicious {
		score -= 3
	}
	if c.LikeCount == 0 && len(c.Text) < 20 {
		score -= 2
	}
	if len(c.Text) > 20 && hasLetters(c.Text) && allCapsPattern.MatchString(c.Text) {
		score -= 1
	}
	if repeatedPunct.MatchString(c.Text) {
		score -= 0.5
	}
	if emojiHeavyShort(c.Text) {
		score -= 0.5
	}

	return clamp(score, 0, 10)
}

// hasRepeatedChar reports whether the text contains the same character
// repeated 5 or more times consecutively. Equivalent to the backreference
// pattern `(.)\1{4,}`, which Go's RE2-based regexp cannot express.
func hasRepeatedChar(s string) bool {
	var prev rune
	run := 0
	for _, r := range s {
		if r == prev && r != '\n' {
			run++
			if run >= 5 {
				return true
			}
		} else {
			prev = r
			run = 1
		}
	}
	return false
}

func hasLetters(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// emojiHeavyShort reports a short text dominated by symbols outside letters,
// digits, punctuation and spaces.
func emojiHeavyShort(s string) bool {
	runes := []rune(s)
	if len(runes) == 0 || len(runes) >= 20 {
		return false
	}
	symbols := 0
	for _, r := range runes {
		if r > unicode.MaxASCII && (unicode.IsSymbol(r) || unicode.In(r, unicode.So)) {
			symbols++
		}
	}
	return symbols*2 > len(runes)
}

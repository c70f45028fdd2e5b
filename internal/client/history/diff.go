package history

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/iudanet/notesync/internal/models"
)

// computeDiffStats считает построчную и посимвольную разницу между
// двумя снапшотами. Построчная часть - через SequenceMatcher по строкам,
// посимвольная - по отдельным символам (чтобы "a" -> "ab" давала
// ровно один добавленный символ, а не целую строку).
func computeDiffStats(before, after string) models.DiffStats {
	var stats models.DiffStats
	if before == after {
		return stats
	}

	lineMatcher := difflib.NewMatcher(splitLines(before), splitLines(after))
	for _, op := range lineMatcher.GetOpCodes() {
		removed := op.I2 - op.I1
		added := op.J2 - op.J1

		switch op.Tag {
		case 'd':
			stats.LinesRemoved += removed
		case 'i':
			stats.LinesAdded += added
		case 'r':
			changed := min(removed, added)
			stats.LinesChanged += changed
			stats.LinesRemoved += removed - changed
			stats.LinesAdded += added - changed
		}
	}

	charMatcher := difflib.NewMatcher(splitChars(before), splitChars(after))
	for _, op := range charMatcher.GetOpCodes() {
		switch op.Tag {
		case 'd':
			stats.CharsRemoved += op.I2 - op.I1
		case 'i':
			stats.CharsAdded += op.J2 - op.J1
		case 'r':
			stats.CharsRemoved += op.I2 - op.I1
			stats.CharsAdded += op.J2 - op.J1
		}
	}

	return stats
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func splitChars(s string) []string {
	runes := []rune(s)
	chars := make([]string, len(runes))
	for i, r := range runes {
		chars[i] = string(r)
	}
	return chars
}

package service

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/serael/catalog/internal/core/domain"
	"github.com/serael/catalog/pkg/textnorm"
)

const (
	suggestMinQuery = 2
	suggestScanSize = 10
	suggestLimit    = 8
)

// Suggest derives autocomplete candidates from a reduced search pass
// over the first matching records, scanning their name and brand
// fields. Faults degrade to an empty list: autocomplete is never worth
// a request failure.
func (s Service) Suggest(
	ctx context.Context, query string,
) ([]domain.Suggestion, error) {
	const op = "Service.Suggest"
	log := slog.With("op", op)

	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < suggestMinQuery {
		return nil, nil
	}

	res, err := s.Search(ctx, domain.Criteria{
		SearchText: query,
		Page:       1,
		PageSize:   suggestScanSize,
	})
	if err != nil {
		log.Warn("suggestion pass failed", "query", query, "err", err)
		return nil, nil
	}

	folded := textnorm.Fold(query)
	seen := make(map[string]struct{})
	var out []domain.Suggestion

	for i := range res.Items {
		p := &res.Items[i]
		candidates := [...]struct{ text, kind string }{
			{p.Name, domain.SuggestionProduct},
			{p.Brand, domain.SuggestionBrand},
		}
		for _, c := range candidates {
			if len(out) == suggestLimit {
				return out, nil
			}
			if c.text == "" {
				continue
			}
			key := textnorm.Fold(c.text)
			if !strings.Contains(key, folded) {
				continue
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, domain.Suggestion{
				Text:      c.text,
				Kind:      c.kind,
				Highlight: highlightMatch(c.text, folded),
			})
		}
	}

	return out, nil
}

// highlightMatch wraps the matched span of the raw text in <strong>
// tags. The fold is rune-count preserving, so a position found in the
// folded text maps one-to-one onto the raw runes.
func highlightMatch(text, foldedQuery string) string {
	raw := []rune(text)
	folded := make([]rune, len(raw))
	for i, r := range raw {
		folded[i] = textnorm.FoldRune(r)
	}

	q := []rune(foldedQuery)
	start := runeIndex(folded, q)
	if start < 0 {
		return text
	}
	end := start + len(q)

	var b strings.Builder
	b.WriteString(string(raw[:start]))
	b.WriteString("<strong>")
	b.WriteString(string(raw[start:end]))
	b.WriteString("</strong>")
	b.WriteString(string(raw[end:]))
	return b.String()
}

func runeIndex(s, sub []rune) int {
	if len(sub) == 0 || len(sub) > len(s) {
		return -1
	}
	for i := 0; i+len(sub) <= len(s); i++ {
		matched := true
		for j := range sub {
			if s[i+j] != sub[j] {
				matched = false
				break
			}
		}
		if matched {
			return i
		}
	}
	return -1
}

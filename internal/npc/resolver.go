package npc

import (
	"context"
	"fmt"
	"strings"

	"github.com/antzucaro/matchr"
)

const (
	// resolverPhoneticThreshold is the minimum Jaro-Winkler score required
	// for a phonetically-matched name to be accepted.
	resolverPhoneticThreshold = 0.70

	// resolverFuzzyThreshold is the minimum Jaro-Winkler score when no
	// phonetic match is found and the resolver falls back to pure string
	// similarity.
	resolverFuzzyThreshold = 0.85

	// resolverTieMargin: two fuzzy candidates within this score margin are
	// treated as a tie and reported as ambiguous.
	resolverTieMargin = 0.02
)

// Resolver maps a free-text name to a stored NPC. Matching proceeds in
// stages: exact name (case-insensitive), unique substring, then phonetic
// matching with Double Metaphone filtered candidates ranked by Jaro-Winkler.
//
// The phonetic stage exists because NPC names in the supplements are
// invented words ("Kaelen Voss", "Szara of Brinemark") that are easy to
// misspell at the keyboard.
type Resolver struct {
	PhoneticThreshold float64
	FuzzyThreshold    float64
}

// NewResolver returns a [Resolver] with default thresholds.
func NewResolver() *Resolver {
	return &Resolver{
		PhoneticThreshold: resolverPhoneticThreshold,
		FuzzyThreshold:    resolverFuzzyThreshold,
	}
}

// Resolve finds the NPC best matching query. It returns [ErrNotFound] when
// nothing matches and [ErrAmbiguous] when several NPCs match equally well;
// the ambiguous error lists the candidate names so the caller can retry by
// ID.
func (r *Resolver) Resolve(ctx context.Context, s Store, query string) (Overview, error) {
	all, err := s.List(ctx, ListOptions{})
	if err != nil {
		return Overview{}, err
	}
	return r.pick(query, all)
}

// pick selects the best match for query from the candidate rows.
func (r *Resolver) pick(query string, all []Overview) (Overview, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Overview{}, fmt.Errorf("npc: resolve %q: %w", query, ErrNotFound)
	}

	// Stage 1: exact, case-insensitive.
	for _, o := range all {
		if strings.ToLower(o.Name) == q {
			return o, nil
		}
	}

	// Stage 2: substring. Unique hit wins; several hits are ambiguous.
	var subs []Overview
	for _, o := range all {
		if strings.Contains(strings.ToLower(o.Name), q) {
			subs = append(subs, o)
		}
	}
	switch len(subs) {
	case 1:
		return subs[0], nil
	case 0:
		// fall through to the phonetic stage
	default:
		return Overview{}, fmt.Errorf("npc: resolve %q (%s): %w", query, joinNames(subs), ErrAmbiguous)
	}

	// Stage 3: phonetic candidates ranked by Jaro-Winkler, with a pure
	// fuzzy fallback at a stricter threshold.
	inputCodes := phoneticCodes(strings.Fields(q))

	type candidate struct {
		row      Overview
		score    float64
		phonetic bool
	}
	var ranked []candidate
	for _, o := range all {
		nameLower := strings.ToLower(o.Name)
		tokens := strings.Fields(nameLower)
		phonetic := codesOverlap(inputCodes, phoneticCodes(tokens))

		score := matchr.JaroWinkler(q, nameLower, false)
		for _, t := range tokens {
			if s := matchr.JaroWinkler(q, t, false); s > score {
				score = s
			}
		}

		threshold := r.FuzzyThreshold
		if phonetic {
			threshold = r.PhoneticThreshold
		}
		if score >= threshold {
			ranked = append(ranked, candidate{row: o, score: score, phonetic: phonetic})
		}
	}
	if len(ranked) == 0 {
		return Overview{}, fmt.Errorf("npc: resolve %q: %w", query, ErrNotFound)
	}

	best := ranked[0]
	tied := []Overview{best.row}
	for _, c := range ranked[1:] {
		switch {
		case c.phonetic && !best.phonetic,
			c.phonetic == best.phonetic && c.score > best.score+resolverTieMargin:
			best = c
			tied = []Overview{c.row}
		case c.phonetic == best.phonetic && c.score >= best.score-resolverTieMargin:
			tied = append(tied, c.row)
		}
	}
	if len(tied) > 1 {
		return Overview{}, fmt.Errorf("npc: resolve %q (%s): %w", query, joinNames(tied), ErrAmbiguous)
	}
	return best.row, nil
}

// phoneticCodes returns the union of Double Metaphone codes for the tokens.
// Empty codes are excluded.
func phoneticCodes(tokens []string) map[string]struct{} {
	codes := make(map[string]struct{}, len(tokens)*2)
	for _, t := range tokens {
		p, s := matchr.DoubleMetaphone(t)
		if p != "" {
			codes[p] = struct{}{}
		}
		if s != "" {
			codes[s] = struct{}{}
		}
	}
	return codes
}

// codesOverlap reports whether the two code sets share any element.
func codesOverlap(a, b map[string]struct{}) bool {
	for c := range a {
		if _, ok := b[c]; ok {
			return true
		}
	}
	return false
}

// joinNames renders candidate names for ambiguity errors.
func joinNames(rows []Overview) string {
	names := make([]string, len(rows))
	for i, o := range rows {
		names[i] = fmt.Sprintf("%s #%d", o.Name, o.ID)
	}
	return strings.Join(names, ", ")
}

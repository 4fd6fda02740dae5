// Package pattern resolves drink orders from the user's own words with an ordered rule table.
package pattern

import (
	"sort"
	"strings"
	"unicode/utf8"

	"autonomous-barman/internal/catalog"
	"autonomous-barman/internal/intent"
	"autonomous-barman/pkg/log"
	"autonomous-barman/pkg/textnorm"
)

// Compile-time interface check.
var _ intent.Resolver = (*Resolver)(nil)

// Resolver is the deterministic resolver. It never consults the model.
type Resolver struct {
	l          log.Logger
	cat        *catalog.Catalog
	candidates []candidate
	rules      []rule
}

// candidate is a recipe with its names pre-folded.
type candidate struct {
	id     string
	name   string // folded display name
	key    string // folded id, underscores kept
	spaced string // folded id, underscores as spaces
	order  int
}

// New builds a resolver over cat. Candidates are scanned longest display name first so
// that "Sangría Preparada" wins over "Sangría"; declaration order breaks ties.
func New(l log.Logger, cat *catalog.Catalog) *Resolver {
	recipes := cat.All()
	cands := make([]candidate, len(recipes))
	for i, r := range recipes {
		cands[i] = candidate{
			id:     r.ID,
			name:   strings.TrimSpace(textnorm.Fold(r.Name)),
			key:    textnorm.Fold(r.ID),
			spaced: textnorm.Key(r.ID),
			order:  i,
		}
	}
	sort.SliceStable(cands, func(i, j int) bool {
		li, lj := utf8.RuneCountInString(cands[i].name), utf8.RuneCountInString(cands[j].name)
		if li != lj {
			return li > lj
		}
		return cands[i].order < cands[j].order
	})

	r := &Resolver{
		l:          l,
		cat:        cat,
		candidates: cands,
	}
	r.rules = r.buildRules()
	return r
}

// Strategy implements intent.Resolver.
func (r *Resolver) Strategy() intent.Strategy {
	return intent.StrategyPattern
}

// Rules lists rule names in evaluation order.
func (r *Resolver) Rules() []string {
	names := make([]string, len(r.rules))
	for i, rl := range r.rules {
		names[i] = rl.name
	}
	return names
}

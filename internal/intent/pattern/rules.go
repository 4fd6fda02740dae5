package pattern

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"autonomous-barman/internal/intent"
	"autonomous-barman/pkg/textnorm"
)

const (
	RuleConfirmID        = "explicit-confirm-id"
	RuleConfirmName      = "explicit-confirm-name"
	RuleConfirmAmbiguous = "explicit-confirm-ambiguous"
	RuleCloseMatch       = "implicit-close-match"
	RuleBrandCocaCola    = "brand-coca-cola"
	RuleWineFamily       = "wine-family"
	RulePlainMention     = "plain-mention"
	RuleDesireKeyword    = "desire-keyword"
	RuleNone             = "none"
)

// minFragmentRunes is the shortest confirmation word that may pick a recipe on its own.
const minFragmentRunes = 4

// fillerWords never identify a recipe, whatever their length.
var fillerWords = map[string]bool{
	"de": true, "del": true, "la": true, "el": true, "los": true, "las": true,
	"un": true, "una": true, "con": true, "sin": true, "por": true, "favor": true,
	"y": true, "ya": true, "mi": true, "me": true, "pedido": true, "porfa": true,
}

// closeMatchSlack is how many extra characters a message may carry around a
// recipe name and still count as "just the name".
const closeMatchSlack = 10

var confirmPattern = regexp.MustCompile(`(?i)confirmar\s+(?:pedido\s+(?:de\s+)?)?([\p{L}\p{N}_\-\s]+)`)

// desireKeywords are folded, so "me gustaría" is matched without its accent.
var desireKeywords = []string{"quiero", "dame", "prepara", "hazme", "quisiera", "me gustaria"}

// closeMatchPrefixes and closeMatchSuffixes build the short phrasings that count as a direct order.
var (
	closeMatchPrefixes = []string{"dame ", "quiero ", "un ", "una "}
	closeMatchSuffixes = []string{" por favor"}
)

// message is the user text in the forms the rules read.
type message struct {
	folded  string
	clean   string
	capture string // folded confirmation fragment, empty when no "confirmar"
}

func newMessage(text string) message {
	m := message{
		folded: textnorm.Fold(text),
		clean:  textnorm.Clean(text),
	}
	if sm := confirmPattern.FindStringSubmatch(m.folded); sm != nil {
		m.capture = strings.TrimSpace(sm[1])
	}
	return m
}

type decision struct {
	kind     intent.Kind
	recipeID string
}

// rule is one row of the table. apply reports whether the rule decided.
type rule struct {
	name  string
	apply func(m message) (decision, bool)
}

func (r *Resolver) buildRules() []rule {
	return []rule{
		{RuleConfirmID, r.confirmByID},
		{RuleConfirmName, r.confirmByName},
		{RuleConfirmAmbiguous, r.confirmAmbiguous},
		{RuleCloseMatch, r.closeMatch},
		{RuleBrandCocaCola, r.brandCocaCola},
		{RuleWineFamily, r.wineFamily},
		{RulePlainMention, r.plainMention},
		{RuleDesireKeyword, desireKeyword},
	}
}

// confirmByID: "confirmar pedido de sangria_preparada" with the fragment being exactly an id.
func (r *Resolver) confirmByID(m message) (decision, bool) {
	if m.capture == "" {
		return decision{}, false
	}
	rec, ok := r.cat.Get(m.capture)
	if !ok {
		return decision{}, false
	}
	return decision{intent.NamedConfirmed, rec.ID}, true
}

// confirmByName: the fragment holds a recipe name or id as whole words ("confirmar fanta con hielo"),
// or one of its significant words belongs to exactly one recipe ("confirmar spritz").
func (r *Resolver) confirmByName(m message) (decision, bool) {
	if m.capture == "" {
		return decision{}, false
	}
	frag := textnorm.Key(m.capture)

	for _, c := range r.candidates {
		if hasPhrase(frag, c.name) || hasPhrase(frag, c.spaced) {
			return decision{intent.NamedConfirmed, c.id}, true
		}
	}

	if matches := r.containing(frag); len(matches) == 1 {
		return decision{intent.NamedConfirmed, matches[0].id}, true
	}
	return decision{}, false
}

// confirmAmbiguous: the fragment fits several recipes ("confirmar vino"). Ask, never guess.
func (r *Resolver) confirmAmbiguous(m message) (decision, bool) {
	if m.capture == "" {
		return decision{}, false
	}
	if len(r.containing(textnorm.Key(m.capture))) > 1 {
		return decision{kind: intent.AmbiguousIntent}, true
	}
	return decision{}, false
}

// containing returns the recipes that have one of the fragment's significant words
// as a whole word of their name or id.
func (r *Resolver) containing(frag string) []candidate {
	words := significantWords(frag)
	if len(words) == 0 {
		return nil
	}
	var out []candidate
	for _, c := range r.candidates {
		for _, w := range words {
			if hasPhrase(c.name, w) || hasPhrase(c.spaced, w) {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

func significantWords(frag string) []string {
	var out []string
	for _, w := range strings.Fields(frag) {
		if utf8.RuneCountInString(w) >= minFragmentRunes && !fillerWords[w] {
			out = append(out, w)
		}
	}
	return out
}

// hasPhrase reports whether phrase occurs in text on word boundaries.
func hasPhrase(text, phrase string) bool {
	if phrase == "" {
		return false
	}
	return strings.Contains(" "+text+" ", " "+phrase+" ")
}

// closeMatch: the message is a recipe name plus a few characters ("fanta", "una sangría por favor").
func (r *Resolver) closeMatch(m message) (decision, bool) {
	if m.clean == "" {
		return decision{}, false
	}
	size := utf8.RuneCountInString(m.clean)
	for _, c := range r.candidates {
		for _, v := range c.variants() {
			if hasPhrase(m.clean, v) && size < utf8.RuneCountInString(v)+closeMatchSlack {
				return decision{intent.NamedConfirmed, c.id}, true
			}
		}
	}
	return decision{}, false
}

func (c candidate) variants() []string {
	out := []string{c.name, c.key, c.spaced}
	for _, s := range closeMatchSuffixes {
		out = append(out, c.name+s)
	}
	for _, p := range closeMatchPrefixes {
		out = append(out, p+c.name)
	}
	return out
}

// brandCocaCola: the brand is commonly typed glued or hyphenated.
func (r *Resolver) brandCocaCola(m message) (decision, bool) {
	if !strings.Contains(m.clean, "cocacola") && !strings.Contains(m.clean, "coca-cola") {
		return decision{}, false
	}
	rec, ok := r.cat.Get("coca_cola")
	if !ok {
		return decision{}, false
	}
	return decision{intent.NamedConfirmed, rec.ID}, true
}

// wineFamily: a wine named anywhere in the message is taken as an order.
func (r *Resolver) wineFamily(m message) (decision, bool) {
	for _, c := range r.candidates {
		if strings.Contains(c.key, "vino") && hasPhrase(m.clean, c.name) {
			return decision{intent.NamedConfirmed, c.id}, true
		}
	}
	return decision{}, false
}

// plainMention: a recipe appears inside a longer message. Needs confirmation.
func (r *Resolver) plainMention(m message) (decision, bool) {
	for _, c := range r.candidates {
		if hasPhrase(m.clean, c.name) || hasPhrase(m.clean, c.key) || hasPhrase(m.clean, c.spaced) {
			return decision{intent.NamedUnconfirmed, c.id}, true
		}
	}
	return decision{}, false
}

// desireKeyword: the user wants something but did not say what.
func desireKeyword(m message) (decision, bool) {
	for _, kw := range desireKeywords {
		if strings.Contains(m.folded, kw) {
			return decision{kind: intent.AmbiguousIntent}, true
		}
	}
	return decision{}, false
}

package intent

// Kind classifies what the user asked for.
type Kind int

const (
	NoIntent Kind = iota
	AmbiguousIntent
	NamedUnconfirmed
	NamedConfirmed
)

func (k Kind) String() string {
	switch k {
	case AmbiguousIntent:
		return "ambiguous"
	case NamedUnconfirmed:
		return "named_unconfirmed"
	case NamedConfirmed:
		return "named_confirmed"
	default:
		return "none"
	}
}

// MarshalText lets Kind serialize as its name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Strategy tells the orchestrator which text a resolver reads.
type Strategy string

const (
	// StrategyPattern reads the user text, before the model is called.
	StrategyPattern Strategy = "pattern"
	// StrategyCommand reads the model reply, after the model is called.
	StrategyCommand Strategy = "command"
)

// Outcome details how a command block was handled.
type Outcome string

const (
	OutcomeNone              Outcome = "none"
	OutcomePrepare           Outcome = "prepare"
	OutcomeParseFailure      Outcome = "parse_failure"
	OutcomeUnknownRecipe     Outcome = "unknown_recipe"
	OutcomeUnsupportedAction Outcome = "unsupported_action"
	OutcomeMultipleBlocks    Outcome = "multiple_blocks"
)

// Input is what a resolver gets to look at.
type Input struct {
	UserText  string
	ModelText string
}

// Result is a resolved intent.
type Result struct {
	Kind     Kind
	RecipeID string
	// Rule names the rule that decided, for logs and diagnostics.
	Rule    string
	Outcome Outcome
	// VisibleText is the model text with any command blocks removed.
	VisibleText string
}

// Confirmed reports whether the result authorizes dispensing.
func (r Result) Confirmed() bool {
	return r.Kind == NamedConfirmed && r.RecipeID != ""
}

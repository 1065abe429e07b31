package deck

// Kind is the slide type. The set is open: unrecognized kinds are stored as
// given and rendered like KindCustom.
type Kind string

const (
	KindTitle         Kind = "title"
	KindProblem       Kind = "problem"
	KindSolution      Kind = "solution"
	KindMarket        Kind = "market"
	KindProduct       Kind = "product"
	KindBusinessModel Kind = "business_model"
	KindTraction      Kind = "traction"
	KindTeam          Kind = "team"
	KindAsk           Kind = "ask"
	KindCustom        Kind = "custom"
)

// knownKinds in canonical deck order, custom last
var knownKinds = []Kind{
	KindTitle,
	KindProblem,
	KindSolution,
	KindMarket,
	KindProduct,
	KindBusinessModel,
	KindTraction,
	KindTeam,
	KindAsk,
	KindCustom,
}

// Kinds returns the recognized slide kinds.
func Kinds() []Kind {
	return append([]Kind(nil), knownKinds...)
}

// IsKnown reports whether k is one of the recognized kinds.
func (k Kind) IsKnown() bool {
	for _, known := range knownKinds {
		if k == known {
			return true
		}
	}
	return false
}

// IsTitle reports whether the slide uses the hero layout.
func (k Kind) IsTitle() bool {
	return k == KindTitle
}

package actions

// Kind identifies one of the three player actions.
type Kind int

const (
	KindMove Kind = iota
	KindSuggestion
	KindAccusation
)

func (k Kind) String() string {
	return []string{"move", "suggestion", "accusation"}[k]
}

package layout

// Layout transforms a raw entry into the line that is actually shown
// by the selector. Implementations must be pure: the result depends
// only on the input and the layout's own configuration.
type Layout interface {
	Apply(entry string) string
}

// Plain passes entries through untouched.
type Plain struct{}

func (Plain) Apply(entry string) string { return entry }

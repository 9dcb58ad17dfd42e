package mtypes

// Kind is the closed set of value kinds. The declaration order is the promotion order: a binary
// operation between two kinds is evaluated in the greater one.
type Kind int

const (
	KindBool Kind = iota
	KindInteger
	KindRational
	KindReal
	KindComplex
)

var kindNames = [...]string{
	KindBool:     "bool",
	KindInteger:  "integer",
	KindRational: "rational",
	KindReal:     "real",
	KindComplex:  "complex",
}

func (k Kind) String() string {
	if k < KindBool || k > KindComplex {
		return "unknown"
	}
	return kindNames[k]
}

// IsNumeric is false only for KindBool.
func (k Kind) IsNumeric() bool {
	return k > KindBool && k <= KindComplex
}

// promote returns the kind a binary operation on a and b is evaluated in.
func promote(a, b Kind) Kind {
	return max(a, b)
}

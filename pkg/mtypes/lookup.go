package mtypes

import (
	"slices"

	"github.com/samber/lo"
)

// BinaryFunc is an operator or two-argument function, as found by LookupBinary.
type BinaryFunc func(x, y any) (any, error)

// UnaryFunc is a one-argument operator or function, as found by LookupUnary.
type UnaryFunc func(x any) (any, error)

func predicate(f func(x, y any) (bool, error)) BinaryFunc {
	return func(x, y any) (any, error) {
		b, err := f(x, y)
		if err != nil {
			return nil, err
		}
		return b, nil
	}
}

func not(x any) (any, error) {
	b, err := Not(x)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func integral(f func(x any) (int64, error)) UnaryFunc {
	return func(x any) (any, error) {
		i, err := f(x)
		if err != nil {
			return nil, err
		}
		return i, nil
	}
}

var binaryFuncs = map[string]BinaryFunc{
	"==":    predicate(Equal),
	"!=":    predicate(NotEqual),
	"≈":     predicate(ApproxEqual),
	"~=":    predicate(ApproxEqual),
	"<":     predicate(Less),
	"<=":    predicate(LessEqual),
	">":     predicate(Greater),
	">=":    predicate(GreaterEqual),
	"+":     Add,
	"-":     Sub,
	"*":     Mul,
	"÷":     IntDiv,
	"div":   IntDiv,
	"%":     Mod,
	"//":    RatDiv,
	"/":     Div,
	"^":     Pow,
	"atan2": Atan2,
}

var unaryFuncs = map[string]UnaryFunc{
	"!":   not,
	"not": not,
	"+":   Plus,
	"-":   Negate,
	"abs": Abs, "abs2": Abs2, "sign": Sign,
	"numerator": integral(Numerator), "denominator": integral(Denominator),
	"round": Round, "ceil": Ceil, "floor": Floor, "cbrt": Cbrt,
	"real": Real, "imag": Imag, "conj": Conj, "angle": Angle,
	"sqrt": Sqrt, "sin": Sin, "cos": Cos, "tan": Tan,
	"sinh": Sinh, "cosh": Cosh, "tanh": Tanh,
	"asin": Asin, "acos": Acos, "atan": Atan,
	"asinh": Asinh, "acosh": Acosh, "atanh": Atanh,
	"log": Log, "log2": Log2, "log10": Log10,
	"exp": Exp, "exp2": Exp2, "exp10": Exp10,
}

// LookupBinary finds an operator by symbol, e.g. "+" or "<=", or a two-argument function by name.
func LookupBinary(symbol string) (BinaryFunc, bool) {
	f, ok := binaryFuncs[symbol]
	return f, ok
}

// LookupUnary finds a one-argument function by name, e.g. "sqrt", or "!", "+" and "-".
func LookupUnary(name string) (UnaryFunc, bool) {
	f, ok := unaryFuncs[name]
	return f, ok
}

// BinarySymbols lists the names LookupBinary knows, sorted.
func BinarySymbols() []string {
	keys := lo.Keys(binaryFuncs)
	slices.Sort(keys)
	return keys
}

// UnaryNames lists the names LookupUnary knows, sorted.
func UnaryNames() []string {
	keys := lo.Keys(unaryFuncs)
	slices.Sort(keys)
	return keys
}

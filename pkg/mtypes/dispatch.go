package mtypes

import (
	"github.com/abstratium-informatique-sarl/mtypes/pkg/logging"
	"github.com/abstratium-informatique-sarl/mtypes/pkg/metrics"
)

// binaryOp is one row of the dispatch table: the operator's implementation per kind. A nil entry
// means the operator is not defined in that kind, and the operands are promoted further until a
// kind with an implementation is reached.
type binaryOp struct {
	name     string
	boolean  func(a, b bool) (any, error)
	integer  func(a, b int64) (any, error)
	rational func(a, b Rational) (any, error)
	real     func(a, b float64) (any, error)
	complex  func(a, b complex128) (any, error)
}

func (op *binaryOp) defined(k Kind) bool {
	switch k {
	case KindBool:
		return op.boolean != nil
	case KindInteger:
		return op.integer != nil
	case KindRational:
		return op.rational != nil
	case KindReal:
		return op.real != nil
	case KindComplex:
		return op.complex != nil
	}
	return false
}

func (op *binaryOp) apply(x, y any) (any, error) {
	a, err := operandOf(x)
	if err != nil {
		return nil, op.failed(err)
	}
	b, err := operandOf(y)
	if err != nil {
		return nil, op.failed(err)
	}

	k := promote(a.kind, b.kind)
	for k <= KindComplex && !op.defined(k) {
		k++
	}
	if k > KindComplex {
		return nil, op.failed(mismatch(op.name, a.kind, b.kind))
	}
	a, b = a.to(k), b.to(k)

	var result any
	switch k {
	case KindBool:
		result, err = op.boolean(a.b, b.b)
	case KindInteger:
		result, err = op.integer(a.i, b.i)
	case KindRational:
		result, err = op.rational(a.r, b.r)
	case KindReal:
		result, err = op.real(a.f, b.f)
	default:
		result, err = op.complex(a.c, b.c)
	}
	if err != nil {
		return nil, op.failed(err)
	}
	metrics.Dispatched(op.name, k.String())
	return result, nil
}

func (op *binaryOp) failed(err error) error {
	return failed(op.name, err)
}

// unaryOp is the single-operand counterpart of binaryOp.
type unaryOp struct {
	name     string
	boolean  func(a bool) (any, error)
	integer  func(a int64) (any, error)
	rational func(a Rational) (any, error)
	real     func(a float64) (any, error)
	complex  func(a complex128) (any, error)
}

func (op *unaryOp) defined(k Kind) bool {
	switch k {
	case KindBool:
		return op.boolean != nil
	case KindInteger:
		return op.integer != nil
	case KindRational:
		return op.rational != nil
	case KindReal:
		return op.real != nil
	case KindComplex:
		return op.complex != nil
	}
	return false
}

func (op *unaryOp) apply(x any) (any, error) {
	a, err := operandOf(x)
	if err != nil {
		return nil, failed(op.name, err)
	}

	k := a.kind
	for k <= KindComplex && !op.defined(k) {
		k++
	}
	if k > KindComplex {
		return nil, failed(op.name, mismatch(op.name, a.kind))
	}
	a = a.to(k)

	var result any
	switch k {
	case KindBool:
		result, err = op.boolean(a.b)
	case KindInteger:
		result, err = op.integer(a.i)
	case KindRational:
		result, err = op.rational(a.r)
	case KindReal:
		result, err = op.real(a.f)
	default:
		result, err = op.complex(a.c)
	}
	if err != nil {
		return nil, failed(op.name, err)
	}
	metrics.Dispatched(op.name, k.String())
	return result, nil
}

func failed(op string, err error) error {
	log := logging.GetLog("mtypes")
	log.Debug().Str("op", op).Err(err).Msg("rejected")
	metrics.Failed(op, ErrorCode(err))
	return err
}

// wrappers for implementations that cannot fail

func ok[T any](f func(a, b T) any) func(a, b T) (any, error) {
	return func(a, b T) (any, error) { return f(a, b), nil }
}

func ok1[T any](f func(a T) any) func(a T) (any, error) {
	return func(a T) (any, error) { return f(a), nil }
}

func real1(f func(float64) float64) func(float64) (any, error) {
	return func(a float64) (any, error) { return f(a), nil }
}

func complex1(f func(complex128) complex128) func(complex128) (any, error) {
	return func(a complex128) (any, error) { return f(a), nil }
}

// lifts an exact Rational result into the (any, error) shape
func rat(r Rational, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return r, nil
}

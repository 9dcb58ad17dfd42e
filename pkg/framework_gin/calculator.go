package framework_gin

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/abstratium-informatique-sarl/mtypes/pkg/logging"
	"github.com/abstratium-informatique-sarl/mtypes/pkg/metrics"
	"github.com/abstratium-informatique-sarl/mtypes/pkg/mtypes"
)

var errUnknown = errors.New("unknown operator or function")

// AddCalculator exposes eval, fn and format under /api.
func AddCalculator(router gin.IRouter) {
	api := router.Group("/api")
	api.GET("/eval", handleEval)
	api.GET("/fn", handleFn)
	api.GET("/format", handleFormat)
}

// AddMetrics exposes the default prometheus registry.
func AddMetrics(router gin.IRouter) {
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
}

func handleEval(c *gin.Context) {
	opts, err := formatOptions(c)
	if err != nil {
		fail(c, err)
		return
	}
	op := c.Query("op")
	f, ok := mtypes.LookupBinary(op)
	if !ok {
		fail(c, fmt.Errorf("%w: %w %q", mtypes.ErrInvalidArgument, errUnknown, op))
		return
	}
	operands, err := parseAll(c.Query("lhs"), c.Query("rhs"))
	if err != nil {
		fail(c, err)
		return
	}
	result, err := f(operands[0], operands[1])
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, result, opts)
}

func handleFn(c *gin.Context) {
	opts, err := formatOptions(c)
	if err != nil {
		fail(c, err)
		return
	}
	name := c.Query("name")
	operands, err := parseAll(c.QueryArray("arg")...)
	if err != nil {
		fail(c, err)
		return
	}

	var result any
	switch len(operands) {
	case 1:
		f, ok := mtypes.LookupUnary(name)
		if !ok {
			fail(c, fmt.Errorf("%w: %w %q", mtypes.ErrInvalidArgument, errUnknown, name))
			return
		}
		result, err = f(operands[0])
	case 2:
		f, ok := mtypes.LookupBinary(name)
		if !ok {
			fail(c, fmt.Errorf("%w: %w %q", mtypes.ErrInvalidArgument, errUnknown, name))
			return
		}
		result, err = f(operands[0], operands[1])
	default:
		err = fmt.Errorf("%w: %s takes one or two args, got %d", mtypes.ErrInvalidArgument, name, len(operands))
	}
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, result, opts)
}

func handleFormat(c *gin.Context) {
	opts, err := formatOptions(c)
	if err != nil {
		fail(c, err)
		return
	}
	values, err := parseAll(c.QueryArray("value")...)
	if err != nil {
		fail(c, err)
		return
	}
	results := make([]string, len(values))
	for i, v := range values {
		if results[i], err = mtypes.ToString(v, opts...); err != nil {
			fail(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

func formatOptions(c *gin.Context) ([]mtypes.Option, error) {
	var opts []mtypes.Option
	if s := c.Query("aligned"); s != "" {
		aligned, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("%w: aligned=%q", mtypes.ErrInvalidArgument, s)
		}
		opts = append(opts, mtypes.Aligned(aligned))
	}
	if s := c.Query("notation"); s != "" {
		if utf8.RuneCountInString(s) != 1 {
			return nil, fmt.Errorf("%w: notation=%q", mtypes.ErrInvalidArgument, s)
		}
		r, _ := utf8.DecodeRuneInString(s)
		opts = append(opts, mtypes.Notation(r))
	}
	if s := c.Query("precision"); s != "" {
		p, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("%w: precision=%q", mtypes.ErrInvalidArgument, s)
		}
		opts = append(opts, mtypes.Precision(p))
	}
	return opts, nil
}

func parseAll(literals ...string) ([]any, error) {
	values := make([]any, len(literals))
	for i, l := range literals {
		v, err := mtypes.Parse(l)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

func respond(c *gin.Context, result any, opts []mtypes.Option) {
	s, err := mtypes.ToString(result, opts...)
	if err != nil {
		fail(c, err)
		return
	}
	kind, _ := mtypes.KindOf(result)
	c.JSON(http.StatusOK, gin.H{"result": s, "kind": kind.String()})
}

func fail(c *gin.Context, err error) {
	code := mtypes.ErrorCode(err)
	status := lo.Ternary(code == "other", http.StatusInternalServerError, http.StatusBadRequest)
	if errors.Is(err, errUnknown) {
		status = http.StatusNotFound
	}
	log := logging.GetLog("framework_gin")
	log.Debug().Err(err).Int("status", status).Str("path", c.FullPath()).Msg("request rejected")
	c.JSON(status, gin.H{"error": err.Error(), "code": code})
}

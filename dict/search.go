package dict

import (
	"github.com/jmespath/go-jmespath"

	"github.com/lowlandresearch/larc/errors"
	"github.com/lowlandresearch/larc/logger"
	"github.com/lowlandresearch/larc/maybe"
)

// Search evaluates the JMESPath expression expr against data. Absent data
// is logged and yields Absent, as does an expression that selects nothing.
func Search(expr string, data any) (any, error) {
	q, err := compile(expr)
	if err != nil {
		return maybe.Absent, err
	}
	return search(q, expr, data)
}

// SearchStage compiles expr once and returns a stage evaluating it. A
// malformed expression makes every run of the stage fail.
func SearchStage(expr string) maybe.Stage {
	q, err := compile(expr)
	return func(v any) maybe.Result {
		if err != nil {
			return maybe.Fail(err)
		}
		out, serr := search(q, expr, v)
		if serr != nil {
			return maybe.Fail(serr)
		}
		return maybe.Continue(out)
	}
}

func compile(expr string) (*jmespath.JMESPath, error) {
	q, err := jmespath.Compile(expr)
	if err != nil {
		return nil, errors.InvalidFormat(expr, "JMESPath expression").WithCause(err)
	}
	return q, nil
}

func search(q *jmespath.JMESPath, expr string, data any) (any, error) {
	if maybe.IsAbsent(data) {
		logger.Get("dict").Error("absent data passed to search", logger.Fields("expression", expr))
		return maybe.Absent, nil
	}
	out, err := q.Search(data)
	if err != nil {
		return maybe.Absent, errors.New(errors.ErrCodeInvalidInput, "jmespath search failed").
			WithDetail("expression", expr).WithCause(err)
	}
	return maybe.Maybe(out), nil
}

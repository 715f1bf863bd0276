package main

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"

	"github.com/sghaida/vec3/vec3"
	"github.com/sghaida/vec3/vec3/random"
)

// opArity is the number of vector operands each operation takes.
var opArity = map[string]int{
	"add": 2, "sub": 2, "mul": 2, "div": 2, "emul": 2, "rem": 2,
	"dot": 2, "cross": 2, "neg": 1, "lensq": 1, "get": 1,

	"not": 1, "and": 2, "or": 2, "xor": 2, "andnot": 2, "shl": 1, "shr": 1,

	"len": 1, "norm": 1, "nearzero": 1, "reflect": 2,
	"sphere": 0, "disk": 0, "unit": 0,
}

var (
	intOnly   = map[string]bool{"not": true, "and": true, "or": true, "xor": true, "andnot": true, "shl": true, "shr": true}
	floatOnly = map[string]bool{"len": true, "norm": true, "nearzero": true, "reflect": true, "sphere": true, "disk": true, "unit": true}
)

// usageError marks mistakes in how the command was invoked (exit code 2).
type usageError struct{ msg string }

// Error implements the error interface.
func (e usageError) Error() string { return e.msg }

// ErrEvalPanic wraps a runtime panic raised while evaluating, such as an
// integer division by zero.
var ErrEvalPanic = errors.New("evaluation panicked")

// evaluate runs op over the textual operands and returns the output lines.
func evaluate(cfg Config, op string, operands []string, logger logrus.FieldLogger) ([]string, error) {
	arity, ok := opArity[op]
	if !ok {
		return nil, usageError{msg: "unknown operation " + strconv.Quote(op)}
	}
	if len(operands) != arity {
		return nil, usageError{msg: op + " takes " + strconv.Itoa(arity) + " vector(s), got " + strconv.Itoa(len(operands))}
	}

	switch cfg.Type {
	case "int":
		if floatOnly[op] {
			return nil, usageError{msg: op + " needs a float type"}
		}
		vs, err := parseVectors(operands, parseInt)
		if err != nil {
			return nil, err
		}
		res, err := safely(func() (any, error) { return evalInt(op, vs, cfg) })
		if err != nil {
			return nil, err
		}
		return []string{render(cfg.Format, res)}, nil
	case "float32":
		return evaluateFloat[float32](cfg, op, operands, 32, logger)
	case "float64":
		return evaluateFloat[float64](cfg, op, operands, 64, logger)
	default:
		return nil, usageError{msg: "unknown type " + strconv.Quote(cfg.Type)}
	}
}

func evaluateFloat[T constraints.Float](cfg Config, op string, operands []string, bits int, logger logrus.FieldLogger) ([]string, error) {
	if intOnly[op] {
		return nil, usageError{msg: op + " needs the int type"}
	}

	switch op {
	case "sphere", "disk", "unit":
		samples := sample[T](op, cfg, logger)
		lines := make([]string, 0, len(samples))
		for _, s := range samples {
			lines = append(lines, render(cfg.Format, s))
		}
		return lines, nil
	}

	vs, err := parseVectors(operands, parseFloat[T](bits))
	if err != nil {
		return nil, err
	}
	res, err := safely(func() (any, error) { return evalFloat(op, vs, cfg) })
	if err != nil {
		return nil, err
	}
	return []string{render(cfg.Format, res)}, nil
}

// evalCommon handles the operations every component type supports.
func evalCommon[T vec3.Number](op string, vs []vec3.Vector3[T], cfg Config) (any, bool, error) {
	switch op {
	case "add":
		return vs[0].Add(vs[1]), true, nil
	case "sub":
		return vs[0].Sub(vs[1]), true, nil
	case "mul":
		return vs[0].Mul(vs[1]), true, nil
	case "div":
		return vs[0].Div(vs[1]), true, nil
	case "emul":
		return vs[0].ElementwiseMul(vs[1]), true, nil
	case "dot":
		return vs[0].Dot(vs[1]), true, nil
	case "cross":
		return vs[0].Cross(vs[1]), true, nil
	case "neg":
		return vs[0].Neg(), true, nil
	case "lensq":
		return vs[0].LengthSquared(), true, nil
	case "get":
		c, err := vs[0].Get(cfg.Index)
		if err != nil {
			return nil, true, err
		}
		return c, true, nil
	}
	return nil, false, nil
}

func evalInt(op string, vs []vec3.Vector3[int64], cfg Config) (any, error) {
	if res, ok, err := evalCommon(op, vs, cfg); ok {
		return res, err
	}
	switch op {
	case "rem":
		return vec3.Rem(vs[0], vs[1]), nil
	case "not":
		return vec3.Not(vs[0]), nil
	case "and":
		return vec3.And(vs[0], vs[1]), nil
	case "or":
		return vec3.Or(vs[0], vs[1]), nil
	case "xor":
		return vec3.Xor(vs[0], vs[1]), nil
	case "andnot":
		return vec3.AndNot(vs[0], vs[1]), nil
	case "shl":
		return vec3.Shl(vs[0], cfg.Shift), nil
	case "shr":
		return vec3.Shr(vs[0], cfg.Shift), nil
	}
	return nil, usageError{msg: op + " is not an int operation"}
}

func evalFloat[T constraints.Float](op string, vs []vec3.Vector3[T], cfg Config) (any, error) {
	if res, ok, err := evalCommon(op, vs, cfg); ok {
		return res, err
	}
	switch op {
	case "rem":
		return vec3.Mod(vs[0], vs[1]), nil
	case "len":
		return vec3.Length(vs[0]), nil
	case "norm":
		return vec3.Normalized(vs[0]), nil
	case "nearzero":
		return vec3.NearZero(vs[0]), nil
	case "reflect":
		return vec3.Reflect(vs[0], vs[1]), nil
	}
	return nil, usageError{msg: op + " is not a float operation"}
}

// sample draws cfg.Samples vectors from a PCG generator seeded with cfg.Seed.
func sample[T constraints.Float](op string, cfg Config, logger logrus.FieldLogger) []vec3.Vector3[T] {
	src := random.WithLogger(rand.New(rand.NewPCG(cfg.Seed, cfg.Seed)), logger, cfg.WarnAfter)

	out := make([]vec3.Vector3[T], 0, cfg.Samples)
	for i := 0; i < cfg.Samples; i++ {
		switch op {
		case "sphere":
			out = append(out, random.InUnitSphere[T](src))
		case "disk":
			out = append(out, random.InUnitDisk[T](src))
		default:
			out = append(out, random.Unit[T](src))
		}
	}
	return out
}

// safely converts a panic inside fn into an ErrEvalPanic error.
func safely(fn func() (any, error)) (res any, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			res = nil
			err = fmt.Errorf("%w: %v", ErrEvalPanic, rec)
		}
	}()
	return fn()
}

// render formats a result with the configured verb; booleans always use %t.
func render(verb string, v any) string {
	if b, ok := v.(bool); ok {
		return strconv.FormatBool(b)
	}
	return fmt.Sprintf("%"+verb, v)
}

//
// Operand parsing.
//

func parseInt(s string) (int64, error) {
	return strconv.ParseInt(s, 0, 64)
}

func parseFloat[T constraints.Float](bits int) func(string) (T, error) {
	return func(s string) (T, error) {
		f, err := strconv.ParseFloat(s, bits)
		return T(f), err
	}
}

func parseVectors[T vec3.Number](operands []string, parse func(string) (T, error)) ([]vec3.Vector3[T], error) {
	out := make([]vec3.Vector3[T], 0, len(operands))
	for _, op := range operands {
		v, err := parseVector(op, parse)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// parseVector reads "x,y,z", "x y z" or "[x, y, z]".
func parseVector[T vec3.Number](s string, parse func(string) (T, error)) (vec3.Vector3[T], error) {
	trimmed := strings.TrimSpace(s)
	trimmed = strings.TrimPrefix(trimmed, "[")
	trimmed = strings.TrimSuffix(trimmed, "]")

	fields := strings.FieldsFunc(trimmed, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
	if len(fields) != 3 {
		return vec3.Vector3[T]{}, usageError{msg: "vector " + strconv.Quote(s) + " needs exactly 3 components"}
	}

	var v vec3.Vector3[T]
	for i, f := range fields {
		c, err := parse(f)
		if err != nil {
			return vec3.Vector3[T]{}, usageError{msg: "vector " + strconv.Quote(s) + ": bad component " + strconv.Quote(f)}
		}
		*v.Ptr(i) = c
	}
	return v, nil
}

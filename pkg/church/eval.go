package church

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDivisionByZero is reported by Eval; the compiled term for x / 0 never reaches a
// normal form.
var ErrDivisionByZero = errors.New("division by zero")

// Eval computes the value Compile's term reduces to, with the same associativity and
// natural-number semantics: subtraction stops at zero, division truncates.
func Eval(input string) (int, error) {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return 0, ErrEmpty
	}
	return eval(tokens)
}

func eval(tokens []string) (int, error) {
	if tokens[len(tokens)-1] == "!" {
		n, err := factorialOperand(tokens)
		if err != nil {
			return 0, err
		}
		return factorial(n), nil
	}

	n, err := parseOperand(tokens[len(tokens)-1])
	if err != nil {
		return 0, err
	}
	tokens = tokens[:len(tokens)-1]
	if len(tokens) > 0 && tokens[len(tokens)-1] == "!" {
		tokens = tokens[:len(tokens)-1]
		n = factorial(n)
	}
	if len(tokens) == 0 {
		return n, nil
	}

	op := tokens[len(tokens)-1]
	tokens = tokens[:len(tokens)-1]
	if _, ok := binary[op]; !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownOperator, op)
	}
	if len(tokens) == 0 {
		return 0, fmt.Errorf("%w: operator %q has no left operand", ErrBadOperand, op)
	}
	left, err := eval(tokens)
	if err != nil {
		return 0, err
	}
	switch op {
	case "+":
		return left + n, nil
	case "-":
		return max(left-n, 0), nil
	case "*":
		return left * n, nil
	default:
		if n == 0 {
			return 0, ErrDivisionByZero
		}
		return left / n, nil
	}
}

func factorial(n int) int {
	r := 1
	for i := 2; i <= n; i++ {
		r *= i
	}
	return r
}

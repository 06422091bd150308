package church

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vic/lambdaviz/pkg/lambda"
)

var (
	// ErrUnknownOperator means no combinator exists for an operator token.
	// Compilation cannot continue; callers treat it as fatal.
	ErrUnknownOperator = errors.New("unknown operator")
	ErrBadOperand      = errors.New("bad operand")
	ErrEmpty           = errors.New("empty expression")
)

// Compile translates whitespace separated arithmetic tokens into a lambda term.
//
// Tokens are consumed from the right: "1 + 2 * 3" is 1 + (2 * 3), and the rightmost
// operator is applied last. "!" is a unary factorial written after ("5 !") or before
// ("! 5") its operand. A trailing "!" ends compilation: "1 + 2 !" is the factorial of
// 2 and the tokens left of the operand are dropped.
func Compile(input string) (lambda.Term, error) {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return nil, ErrEmpty
	}
	return compile(tokens)
}

func compile(tokens []string) (lambda.Term, error) {
	if tokens[len(tokens)-1] == "!" {
		n, err := factorialOperand(tokens)
		if err != nil {
			return nil, err
		}
		return lambda.App{Fun: Fact, Arg: Numeral(n)}, nil
	}

	operand, tokens, err := popOperand(tokens)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return operand, nil
	}

	op := tokens[len(tokens)-1]
	tokens = tokens[:len(tokens)-1]
	comb, ok := binary[op]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperator, op)
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: operator %q has no left operand", ErrBadOperand, op)
	}
	left, err := compile(tokens)
	if err != nil {
		return nil, err
	}
	return lambda.App{
		Fun: lambda.App{Fun: comb, Arg: left},
		Arg: operand,
	}, nil
}

// factorialOperand reads the operand of a trailing factorial marker.
func factorialOperand(tokens []string) (int, error) {
	tokens = tokens[:len(tokens)-1]
	if len(tokens) == 0 {
		return 0, fmt.Errorf("%w: factorial without operand", ErrBadOperand)
	}
	return parseOperand(tokens[len(tokens)-1])
}

// popOperand takes the rightmost operand, with a prefix factorial marker if any.
func popOperand(tokens []string) (lambda.Term, []string, error) {
	n, err := parseOperand(tokens[len(tokens)-1])
	if err != nil {
		return nil, nil, err
	}
	tokens = tokens[:len(tokens)-1]
	operand := Numeral(n)

	if len(tokens) > 0 && tokens[len(tokens)-1] == "!" {
		tokens = tokens[:len(tokens)-1]
		operand = lambda.App{Fun: Fact, Arg: operand}
	}
	return operand, tokens, nil
}

func parseOperand(token string) (int, error) {
	n, err := strconv.Atoi(token)
	if err != nil {
		if _, ok := Combinator(token); ok {
			return 0, fmt.Errorf("%w: operator %q where an operand was expected", ErrBadOperand, token)
		}
		return 0, fmt.Errorf("%w: %q", ErrBadOperand, token)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: negative operand %d", ErrBadOperand, n)
	}
	return n, nil
}

// Normalize prepares a model response for Compile: the factorial marker becomes its
// own token and runs of whitespace collapse to single spaces.
func Normalize(response string) string {
	response = strings.ReplaceAll(response, "!", " !")
	return strings.Join(strings.Fields(response), " ")
}

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vic/lambdaviz/pkg/church"
	"github.com/vic/lambdaviz/pkg/lambda"
)

type TestCase struct {
	Name   string
	Input  string
	Output string // empty for terms without a normal form
}

const reductionTemplate = `package gentests

import _ "embed"
import "testing"
import "github.com/vic/lambdaviz/cmd/gentests/helper"

//go:embed input.lam
var input string

//go:embed output.lam
var output string

func Test_%s_Reduction(t *testing.T) {
	gentests.CheckLambdaReduction(t, "%s", input, output)
}
`

const divergenceTemplate = `package gentests

import _ "embed"
import "testing"
import "github.com/vic/lambdaviz/cmd/gentests/helper"

//go:embed input.lam
var input string

func Test_%s_Divergence(t *testing.T) {
	gentests.CheckLambdaDivergence(t, "%s", input)
}
`

func main() {
	tests := []TestCase{
		// Identity
		{"001_id", "λx.x", "λy.y"},
		{"002_id_id", "(λx.x)(λy.y)", "λz.z"},

		// K Combinator (Erasure)
		{"003_k_1", "(λx.λy.x)ab", "a"},
		{"004_k_2", "(λx.λy.y)ab", "b"},
		{"005_erase_complex", "(λx.λy.x)a((λz.z)b)", "a"},

		// S Combinator (Sharing)
		{"006_s_1", "(λx.λy.λz.xz(yz))(λa.λb.a)(λc.λd.c)e", "e"},
		{"007_s_2", "(λx.λy.λz.xz(yz))(λa.λb.b)(λc.λd.c)e", "λd.e"},

		// Church Numerals
		{"010_zero", "(λf.λx.x)fx", "x"},
		{"011_one", "(λf.λx.fx)fx", "fx"},
		{"012_two", "(λf.λx.f(fx))fx", "f(fx)"},
		{"013_succ_0", "(λn.λf.λx.f(nfx))(λf.λx.x)fx", "fx"},
		{"014_succ_1", "(λn.λf.λx.f(nfx))(λf.λx.fx)fx", "f(fx)"},
		{"015_add_1_1", "(λm.λn.λf.λx.mf(nfx))(λf.λx.fx)(λf.λx.fx)fx", "f(fx)"},
		{"016_mul_2_2", "(λm.λn.λf.m(nf))(λf.λx.f(fx))(λf.λx.f(fx))fx", "f(f(f(fx)))"},

		// Logic
		{"020_true", "(λx.λy.x)ab", "a"},
		{"021_false", "(λx.λy.y)ab", "b"},
		{"022_not_true", "(λb.b(λx.λy.y)(λx.λy.x))(λx.λy.x)ab", "b"},
		{"023_not_false", "(λb.b(λx.λy.y)(λx.λy.x))(λx.λy.y)ab", "a"},
		{"024_and_true_true", "(λp.λq.pqp)(λx.λy.x)(λx.λy.x)ab", "a"},
		{"025_and_true_false", "(λp.λq.pqp)(λx.λy.x)(λx.λy.y)ab", "b"},

		// Pairs
		{"030_pair_fst", "(λp.p(λx.λy.x))((λx.λy.λf.fxy)ab)", "a"},
		{"031_pair_snd", "(λp.p(λx.λy.y))((λx.λy.λf.fxy)ab)", "b"},

		// Complex / Stress
		{"050_deep_app", "(λx.xxx)(λy.y)", "λy.y"},
		{"051_share_app", "(λf.f(fx))(λy.y)", "x"},
		{"060_pow_2_3", "(λb.λe.eb)(λf.λx.f(fx))(λf.λx.f(f(fx)))fx", "f(f(f(f(f(f(f(fx)))))))"},

		// Sharing
		{"070_share_complex", "(λx.x(xa))(λy.y)", "a"},
		{"071_erase_shared", "(λx.λy.y)((λz.z)a)b", "b"},
		{"072_self_app", "(λx.xx)(λy.y)", "λy.y"},

		// Nested Lambdas
		{"080_nested_1", "λx.λy.λz.xyz", "λx.λy.λz.xyz"},
		{"081_nested_app", "(λx.λy.xy)ab", "ab"},

		// Free variables
		{"090_free_1", "x", "x"},
		{"091_free_app", "xy", "xy"},
		{"092_free_abs", "λy.xy", "λy.xy"},

		// Mixed
		{"100_mixed_1", "(λx.x)((λy.y)a)", "a"},

		// Capture
		{"110_capture_abs", "(λx.λy.x)y", "λz.y"},
		{"111_capture_app", "(λx.λy.x)yz", "y"},
		{"112_shadow", "(λx.λx.x)a", "λy.y"},
	}

	// Arithmetic through the church compiler
	for i, expr := range []string{"2 + 3", "6 - 2", "3 * 4", "7 / 2", "3 !", "2 + 3 * 4"} {
		term, err := church.Compile(expr)
		if err != nil {
			fmt.Printf("Error compiling %q: %v\n", expr, err)
			continue
		}
		want, err := church.Eval(expr)
		if err != nil {
			fmt.Printf("Error evaluating %q: %v\n", expr, err)
			continue
		}
		tests = append(tests, TestCase{
			Name:   fmt.Sprintf("%03d_arith", 200+i),
			Input:  term.String(),
			Output: church.Numeral(want).String(),
		})
	}

	// No normal form
	tests = append(tests,
		TestCase{"300_omega", "(λx.xx)(λx.xx)", ""},
		TestCase{"301_growth", "(λx.xxx)(λx.xxx)", ""},
		TestCase{"302_y_id", "(λf.(λx.f(xx))(λx.f(xx)))(λy.y)", ""},
	)

	baseDir := "cmd/gentests/generated"
	os.MkdirAll(baseDir, 0755)

	for _, tc := range tests {
		dir := filepath.Join(baseDir, tc.Name)
		os.MkdirAll(dir, 0755)

		// Normalize Input
		inTerm, err := lambda.Parse(tc.Input)
		if err != nil {
			fmt.Printf("Error parsing input for %s: %v\n", tc.Name, err)
			continue
		}
		os.WriteFile(filepath.Join(dir, "input.lam"), []byte(inTerm.String()), 0644)

		if tc.Output == "" {
			testGo := fmt.Sprintf(divergenceTemplate, tc.Name, tc.Name)
			os.WriteFile(filepath.Join(dir, "reduction_test.go"), []byte(testGo), 0644)
			continue
		}

		// Normalize Output
		outTerm, err := lambda.Parse(tc.Output)
		if err != nil {
			fmt.Printf("Error parsing output for %s: %v\n", tc.Name, err)
			continue
		}

		testGo := fmt.Sprintf(reductionTemplate, tc.Name, tc.Name)

		os.WriteFile(filepath.Join(dir, "output.lam"), []byte(outTerm.String()), 0644)
		os.WriteFile(filepath.Join(dir, "reduction_test.go"), []byte(testGo), 0644)
	}

	fmt.Printf("Generated %d tests\n", len(tests))
}

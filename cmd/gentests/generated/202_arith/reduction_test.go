package gentests

import _ "embed"
import "testing"
import "github.com/vic/lambdaviz/cmd/gentests/helper"

//go:embed input.lam
var input string

//go:embed output.lam
var output string

func Test_202_arith_Reduction(t *testing.T) {
	gentests.CheckLambdaReduction(t, "202_arith", input, output)
}

package gentests

import _ "embed"
import "testing"
import "github.com/vic/lambdaviz/cmd/gentests/helper"

//go:embed input.lam
var input string

func Test_301_growth_Divergence(t *testing.T) {
	gentests.CheckLambdaDivergence(t, "301_growth", input)
}

package nets

import (
	"github.com/reusee/dscope"

	"github.com/vic/lambdaviz/internal/config"
	"github.com/vic/lambdaviz/internal/logs"
)

type Module struct {
	dscope.Module
	Config config.Module
	Logs   logs.Module
}

package config

import "github.com/reusee/dscope"

type Module struct {
	dscope.Module
}

func (Module) Settings(
	loader Loader,
) Settings {
	return Load(loader)
}

package main

import (
	"github.com/reusee/dscope"

	"github.com/vic/lambdaviz/internal/config"
	"github.com/vic/lambdaviz/internal/logs"
	"github.com/vic/lambdaviz/internal/nets"
	"github.com/vic/lambdaviz/pkg/ask"
	"github.com/vic/lambdaviz/pkg/reduction"
)

type Module struct {
	dscope.Module
	Nets nets.Module
}

func (Module) Stats() *reduction.Stats {
	return new(reduction.Stats)
}

func (Module) Reducer(
	settings config.Settings,
	stats *reduction.Stats,
) reduction.Reducer {
	return reduction.Reducer{
		MaxSteps: settings.MaxSteps,
		MaxSize:  settings.MaxSize,
		Stats:    stats,
	}
}

func (Module) AskClient(
	settings config.Settings,
	client nets.HTTPClient,
	logger logs.Logger,
) *ask.Client {
	return &ask.Client{
		BaseURL: settings.Endpoint,
		Model:   settings.Model,
		APIKey:  settings.APIKey,
		HTTP:    client,
		Logger:  logger,
	}
}

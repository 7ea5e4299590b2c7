package handlers

import (
	"oncoscreen/internal/config"
	"oncoscreen/internal/risk"
)

// Env carries the state built once at startup (configuration and the
// loaded model artifacts) into each handler, instead of package globals.
type Env struct {
	Cfg   *config.Config
	Model *risk.Model
}

func New(cfg *config.Config, model *risk.Model) *Env {
	return &Env{Cfg: cfg, Model: model}
}

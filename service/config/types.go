package config

import "github.com/elC0mpa/intra-logtime/model"

type service struct {
	lookup func(string) (string, bool)
}

type ConfigService interface {
	GetConfig() (model.Config, error)
}

package main

import (
	"github.com/elC0mpa/intra-logtime/model"
	"github.com/elC0mpa/intra-logtime/service/config"
)

// LoadConfig reads the intra credentials and logtime settings from environment variables
func LoadConfig() (model.Config, error) {
	return config.NewService().GetConfig()
}

//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/tetragramaton/dcm230-go/internal/client/modbus"
	"github.com/tetragramaton/dcm230-go/internal/client/mqtt"
)

func InitMainHandler() (*MainHandler, error) {
	wire.Build(
		NewMainHandler,
		mqtt.NewClient,
		modbus.NewHandler,
		ProvideRegistry,
	)
	return nil, nil // wire will generate the result
}

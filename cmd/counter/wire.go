//go:build wireinject
// +build wireinject

package main

import (
	"context"

	"github.com/google/wire"

	"github.com/weegigs/wee-counter-go/support"
)

func initializeServer(ctx context.Context, cfg support.Config) (*server, func(), error) {
	panic(wire.Build(Live))
}

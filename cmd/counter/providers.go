package main

import (
	"net/http"

	"github.com/google/wire"
	"github.com/rs/zerolog"

	"github.com/weegigs/wee-counter-go/connectors/wehttp"
	"github.com/weegigs/wee-counter-go/counter"
	"github.com/weegigs/wee-counter-go/pages"
	"github.com/weegigs/wee-counter-go/support"
)

func provideSeedClient(cfg support.Config) *wehttp.SeedClient {
	return wehttp.NewSeedClient(cfg.APIURL, cfg.FetchTimeout)
}

func provideRenderer(seeds pages.SeedSource, log *zerolog.Logger) (*pages.Renderer, error) {
	return pages.NewRenderer(seeds, pages.Logger(log))
}

func provideCache(cfg support.Config) *pages.Cache {
	return pages.NewCache(cfg.PageCacheSize)
}

func provideHandler(renderer *pages.Renderer, cache *pages.Cache, random counter.Randomizer, log *zerolog.Logger) http.Handler {
	return wehttp.NewHandler(renderer, cache, wehttp.Logger(log), wehttp.Randomizer(random))
}

var Live = wire.NewSet(
	support.TracerProvider,
	support.Logger,
	counter.PseudoRandomizer,
	provideSeedClient,
	wire.Bind(new(pages.SeedSource), new(*wehttp.SeedClient)),
	provideRenderer,
	provideCache,
	provideHandler,
	newServer,
)

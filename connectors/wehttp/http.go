package wehttp

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/weegigs/wee-counter-go/counter"
	"github.com/weegigs/wee-counter-go/pages"
	"github.com/weegigs/wee-counter-go/we"
)

const tracerName = "wee-counter"

type HandlerOption func(service *httpService)

func Logger(log *zerolog.Logger) HandlerOption {
	return func(service *httpService) {
		service.log = log
	}
}

// Randomizer replaces the random source behind /api/counter.
func Randomizer(random counter.Randomizer) HandlerOption {
	return func(service *httpService) {
		service.random = random
	}
}

// NewHandler builds the application's route table.
func NewHandler(renderer *pages.Renderer, cache *pages.Cache, options ...HandlerOption) http.Handler {
	service := &httpService{
		renderer:   renderer,
		cache:      cache,
		dispatcher: counter.NewDispatcher(),
	}
	for _, option := range options {
		option(service)
	}
	if service.log == nil {
		service.log = &log.Logger
	}
	if service.random == nil {
		service.random = counter.PseudoRandomizer()
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.HandleFunc("/api/counter", service.randomNumber())
	r.Post("/api/counter/{initialCounter}/commands", service.executeCommand())

	r.Get("/", service.home())
	r.Get("/counter/{initialCounter}", service.counterPage())
	r.Post("/counter/{initialCounter}", service.counterCommand())

	return WithTelemetry(r, "wee-counter")
}

type httpService struct {
	log        *zerolog.Logger
	random     counter.Randomizer
	renderer   *pages.Renderer
	cache      *pages.Cache
	dispatcher *we.RoutedDispatcher[counter.Widget]
}

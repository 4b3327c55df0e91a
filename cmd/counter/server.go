package main

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/weegigs/wee-counter-go/pages"
	"github.com/weegigs/wee-counter-go/support"
)

const shutdownTimeout = 5 * time.Second

type server struct {
	cfg      support.Config
	log      *zerolog.Logger
	handler  http.Handler
	renderer *pages.Renderer
	cache    *pages.Cache
	tracing  *support.Tracing
}

func newServer(
	cfg support.Config,
	log *zerolog.Logger,
	handler http.Handler,
	renderer *pages.Renderer,
	cache *pages.Cache,
	tracing *support.Tracing,
) *server {
	return &server{
		cfg:      cfg,
		log:      log,
		handler:  handler,
		renderer: renderer,
		cache:    cache,
		tracing:  tracing,
	}
}

// Run prerenders the static counter pages, then serves until ctx is done.
func (s *server) Run(ctx context.Context) error {
	paths := pages.StaticPathsWith(s.cfg.StaticPaths)
	if err := pages.Prerender(ctx, s.cache, s.renderer, paths); err != nil {
		return err
	}
	s.log.Info().Strs("paths", paths).Msg("prerendered counter pages")

	httpServer := &http.Server{
		Addr:    s.cfg.Addr,
		Handler: withLogging(s.handler),
	}

	errs := make(chan error, 1)
	go func() {
		errs <- httpServer.ListenAndServe()
	}()

	s.log.Info().Str("addr", s.cfg.Addr).Str("api", s.cfg.APIURL).Msg("listening")

	select {
	case err := <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrap(err, "server failed")
	case <-ctx.Done():
	}

	s.log.Info().Msg("shutting down")

	shutdown, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdown); err != nil {
		return errors.Wrap(err, "failed to shut down")
	}

	return s.tracing.Flush(shutdown)
}

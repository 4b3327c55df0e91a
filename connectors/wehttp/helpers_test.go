package wehttp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/weegigs/wee-counter-go/counter"
	"github.com/weegigs/wee-counter-go/pages"
)

type fixedSeed int

func (s fixedSeed) Seed(context.Context) (int, error) {
	return int(s), nil
}

func newTestHandler(t *testing.T, seeds pages.SeedSource, cache *pages.Cache, random counter.Randomizer) http.Handler {
	log := zerolog.Nop()

	renderer, err := pages.NewRenderer(seeds, pages.Logger(&log))
	require.NoError(t, err)

	return NewHandler(renderer, cache, Logger(&log), Randomizer(random))
}

func constant(value float64) counter.Randomizer {
	return func() float64 { return value }
}

func serve(handler http.Handler, request *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	return recorder
}

func intBody(t *testing.T, recorder *httptest.ResponseRecorder) int {
	n, err := strconv.Atoi(strings.TrimSpace(recorder.Body.String()))
	require.NoError(t, err)

	return n
}

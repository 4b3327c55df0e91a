package wehttp

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/weegigs/wee-counter-go/counter"
	"github.com/weegigs/wee-counter-go/pages"
	"github.com/weegigs/wee-counter-go/we"
)

func (service *httpService) home() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := service.renderer.Home(r.Context())
		if err != nil {
			service.log.Error().Err(err).Msg("failed to render home page")
			http.Error(w, "failed to render page", http.StatusInternalServerError)
			return
		}

		writeHTML(w, http.StatusOK, page)
	}
}

func (service *httpService) counterPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		segment := initialCounter(r)

		page, err := service.cache.Get(segment, func() ([]byte, error) {
			return service.renderer.Counter(r.Context(), segment)
		})
		if err != nil {
			service.log.Error().Err(err).Str("segment", segment).Msg("failed to render counter page")
			http.Error(w, "failed to render page", http.StatusInternalServerError)
			return
		}

		writeHTML(w, http.StatusOK, page)
	}
}

// counterCommand applies a widget action posted from the counter page and
// renders the result. The page carries the widget's value; nothing is
// kept between requests.
func (service *httpService) counterCommand() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		segment := initialCounter(r)

		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}

		name := we.CommandName(r.PostForm.Get("command"))
		if !service.dispatcher.Supports(name) {
			http.Error(w, we.CommandNotFound(name).Error(), http.StatusBadRequest)
			return
		}

		seed := counter.ParseSeed(pages.Segments(segment))
		widget := counter.Restore(seed, formValue(r.PostForm, seed))

		if err := service.dispatcher.Dispatch(r.Context(), widget, we.RemoteCommand{CommandName: name}); err != nil {
			service.log.Info().Err(err).Str("command", name.String()).Msg("failed to execute command")
			http.Error(w, "failed to execute command", http.StatusBadRequest)
			return
		}

		page, err := service.renderer.CounterWith(r.Context(), segment, widget)
		if err != nil {
			service.log.Error().Err(err).Str("segment", segment).Msg("failed to render counter page")
			http.Error(w, "failed to render page", http.StatusInternalServerError)
			return
		}

		writeHTML(w, http.StatusOK, page)
	}
}

func initialCounter(r *http.Request) string {
	raw := chi.URLParam(r, "initialCounter")
	if segment, err := url.PathUnescape(raw); err == nil {
		return segment
	}

	return raw
}

func formValue(form url.Values, fallback int) int {
	value, err := strconv.Atoi(form.Get("value"))
	if err != nil {
		return fallback
	}

	return value
}

func writeHTML(w http.ResponseWriter, status int, page []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(page)
}

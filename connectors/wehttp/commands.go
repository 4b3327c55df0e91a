package wehttp

import (
	"io"
	"mime"
	"net/http"

	"github.com/go-chi/render"
	"github.com/goccy/go-json"

	"github.com/weegigs/wee-counter-go/counter"
	"github.com/weegigs/wee-counter-go/pages"
	"github.com/weegigs/wee-counter-go/we"
)

// CommandRequest carries a widget action and the value the widget showed
// when the action was taken.
type CommandRequest struct {
	we.RemoteCommand
	Value *int `json:"value,omitempty"`
}

func (service *httpService) executeCommand() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		segment := initialCounter(r)

		contentType := r.Header.Get("Content-type")
		mediaType, _, err := mime.ParseMediaType(contentType)
		if mediaType != "application/json" || err != nil {
			writeError(w, r, http.StatusUnsupportedMediaType, "unsupported content type")
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "invalid request body")
			return
		}

		var request CommandRequest
		if err := json.UnmarshalContext(r.Context(), body, &request); err != nil {
			service.log.Info().Err(err).Msg("failed to unmarshal command")
			writeError(w, r, http.StatusBadRequest, "invalid request body")
			return
		}

		if !service.dispatcher.Supports(request.CommandName) {
			writeError(w, r, http.StatusBadRequest, we.CommandNotFound(request.CommandName).Error())
			return
		}

		seed := counter.ParseSeed(pages.Segments(segment))
		value := seed
		if request.Value != nil {
			value = *request.Value
		}
		widget := counter.Restore(seed, value)

		if err := service.dispatcher.Dispatch(r.Context(), widget, request.RemoteCommand); err != nil {
			service.log.Info().Err(err).Str("command", request.CommandName.String()).Msg("failed to execute command")
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}

		render.JSON(w, r, widget.Snapshot())
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	render.Status(r, status)
	render.JSON(w, r, ErrorResponse{Message: message})
}

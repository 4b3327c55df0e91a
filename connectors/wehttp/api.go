package wehttp

import (
	"net/http"

	"github.com/go-chi/render"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/weegigs/wee-counter-go/counter"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

func (service *httpService) randomNumber() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			render.Status(r, http.StatusMethodNotAllowed)
			render.JSON(w, r, ErrorResponse{Message: "Method Not Allowed"})
			return
		}

		_, span := otel.Tracer(tracerName).Start(r.Context(), "draw random number")
		defer span.End()

		bound := counter.ParseBound(r.URL.Query()["maxNumber"])
		n := counter.Draw(service.random, bound)

		span.SetAttributes(attribute.Int("bound", int(bound)), attribute.Int("result", n))

		render.JSON(w, r, n)
	}
}

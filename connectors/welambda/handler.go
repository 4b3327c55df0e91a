package welambda

import (
	"context"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/weegigs/wee-counter-go/counter"
)

type GatewayHandler = func(ctx context.Context, event events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error)

type errorResponse struct {
	Message string `json:"message"`
}

type HandlerOption func(handler *handler)

func Logger(log *zerolog.Logger) HandlerOption {
	return func(handler *handler) {
		handler.log = log
	}
}

type handler struct {
	log    *zerolog.Logger
	random counter.Randomizer
}

// NewHandler serves the random number endpoint behind an API Gateway v2
// HTTP route.
func NewHandler(random counter.Randomizer, options ...HandlerOption) GatewayHandler {
	h := &handler{random: random}
	for _, option := range options {
		option(h)
	}
	if h.log == nil {
		h.log = &log.Logger
	}

	return h.handle
}

func (h *handler) handle(ctx context.Context, event events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	if event.RequestContext.HTTP.Method != http.MethodGet {
		return respond(http.StatusMethodNotAllowed, errorResponse{Message: "Method Not Allowed"})
	}

	bound := counter.ParseBound(queryValues(event.QueryStringParameters, "maxNumber"))
	n := counter.Draw(h.random, bound)

	h.log.Debug().Int("bound", int(bound)).Int("result", n).Msg("drew random number")

	return respond(http.StatusOK, n)
}

// queryValues splits API Gateway's comma joined repeated parameters back
// into their individual values.
func queryValues(parameters map[string]string, name string) []string {
	value, ok := parameters[name]
	if !ok {
		return nil
	}

	return strings.Split(value, ",")
}

func respond(status int, body any) (events.APIGatewayV2HTTPResponse, error) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return events.APIGatewayV2HTTPResponse{StatusCode: http.StatusInternalServerError}, err
	}

	headers := map[string]string{"Content-Type": "application/json"}
	if status == http.StatusMethodNotAllowed {
		headers["Allow"] = http.MethodGet
	}

	return events.APIGatewayV2HTTPResponse{
		StatusCode: status,
		Headers:    headers,
		Body:       string(encoded),
	}, nil
}

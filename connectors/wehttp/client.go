package wehttp

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"

	"github.com/weegigs/wee-counter-go/counter"
)

// StatusError reports a non-success response from the counter endpoint.
type StatusError struct {
	StatusCode int
}

func (e StatusError) Error() string {
	return fmt.Sprintf("HTTP error! Status: %d", e.StatusCode)
}

// SeedClient draws the home page's seed from the counter endpoint over
// HTTP. It makes a single attempt per call.
type SeedClient struct {
	endpoint string
	client   *http.Client
}

type SeedClientOption func(client *SeedClient)

func HTTPClient(client *http.Client) SeedClientOption {
	return func(seeds *SeedClient) {
		seeds.client = client
	}
}

func NewSeedClient(baseURL string, timeout time.Duration, options ...SeedClientOption) *SeedClient {
	query := url.Values{"maxNumber": []string{strconv.Itoa(int(counter.HomeBound))}}

	seeds := &SeedClient{
		endpoint: strings.TrimRight(baseURL, "/") + "/api/counter?" + query.Encode(),
	}
	for _, option := range options {
		option(seeds)
	}
	if seeds.client == nil {
		seeds.client = &http.Client{
			Transport: TracedTransport(nil),
			Timeout:   timeout,
		}
	}

	return seeds
}

func (s *SeedClient) Seed(ctx context.Context) (int, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "fetch seed")
	defer span.End()

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint, nil)
	if err != nil {
		return 0, errors.Wrap(err, "failed to create seed request")
	}

	response, err := s.client.Do(request)
	if err != nil {
		return 0, errors.Wrap(err, "failed to fetch seed")
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return 0, StatusError{StatusCode: response.StatusCode}
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return 0, errors.Wrap(err, "failed to read seed")
	}

	// Any JSON number is accepted; fractions are truncated toward zero.
	var seed *float64
	if err := json.UnmarshalContext(ctx, body, &seed); err != nil {
		return 0, errors.Wrap(err, "failed to decode seed")
	}
	if seed == nil {
		return 0, nil
	}

	return int(math.Trunc(*seed)), nil
}

package support

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

type Config struct {
	Addr   string
	APIURL string

	LogLevel  string
	LogFormat string

	PageCacheSize int
	// StaticPaths are prerendered in addition to the counter pages
	// that are always prerendered.
	StaticPaths   []string
	FetchTimeout  time.Duration

	TraceExporter  string
	OTLPEndpoint   string
	OTLPHeaders    map[string]string
	JaegerEndpoint string
}

func DefaultConfig() Config {
	return Config{
		Addr:           ":3000",
		APIURL:         "http://localhost:3000",
		LogLevel:       "info",
		LogFormat:      "json",
		PageCacheSize:  1024,
		TraceExporter:  "none",
		OTLPEndpoint:   "localhost:4317",
		JaegerEndpoint: "http://localhost:14268/api/traces",
	}
}

// LoadEnv reads files into the environment. With no files it reads .env
// when one exists.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			return errors.Wrap(err, "failed to load .env")
		}
		return nil
	}

	if err := godotenv.Load(files...); err != nil {
		return errors.Wrapf(err, "failed to load %s", strings.Join(files, ", "))
	}

	return nil
}

type Lookup = func(key string) (string, bool)

func FromEnvironment() (Config, error) {
	return ConfigFrom(os.LookupEnv)
}

func ConfigFrom(lookup Lookup) (Config, error) {
	cfg := DefaultConfig()

	if value, ok := lookup("COUNTER_ADDR"); ok && value != "" {
		cfg.Addr = value
	}
	if value, ok := lookup("COUNTER_API_URL"); ok && value != "" {
		cfg.APIURL = value
	}
	if value, ok := lookup("COUNTER_LOG_LEVEL"); ok && value != "" {
		cfg.LogLevel = value
	}
	if value, ok := lookup("COUNTER_LOG_FORMAT"); ok && value != "" {
		cfg.LogFormat = value
	}
	if value, ok := lookup("COUNTER_PAGE_CACHE_SIZE"); ok && value != "" {
		size, err := strconv.Atoi(value)
		if err != nil || size < 0 {
			return Config{}, errors.Errorf("COUNTER_PAGE_CACHE_SIZE must be a non-negative integer, got %q", value)
		}
		cfg.PageCacheSize = size
	}
	if value, ok := lookup("COUNTER_STATIC_PATHS"); ok {
		cfg.StaticPaths = splitList(value)
	}
	if value, ok := lookup("COUNTER_FETCH_TIMEOUT"); ok && value != "" {
		timeout, err := time.ParseDuration(value)
		if err != nil {
			return Config{}, errors.Wrap(err, "COUNTER_FETCH_TIMEOUT")
		}
		cfg.FetchTimeout = timeout
	}
	if value, ok := lookup("COUNTER_TRACE_EXPORTER"); ok && value != "" {
		cfg.TraceExporter = value
	}
	if value, ok := lookup("COUNTER_OTLP_ENDPOINT"); ok && value != "" {
		cfg.OTLPEndpoint = value
	}
	if value, ok := lookup("COUNTER_OTLP_HEADERS"); ok && value != "" {
		headers, err := parseHeaders(value)
		if err != nil {
			return Config{}, err
		}
		cfg.OTLPHeaders = headers
	}
	if value, ok := lookup("COUNTER_JAEGER_ENDPOINT"); ok && value != "" {
		cfg.JaegerEndpoint = value
	}

	return cfg, nil
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}

	return items
}

// parseHeaders reads "key=value,key=value".
func parseHeaders(value string) (map[string]string, error) {
	headers := make(map[string]string)
	for _, pair := range splitList(value) {
		key, val, found := strings.Cut(pair, "=")
		if !found || strings.TrimSpace(key) == "" {
			return nil, errors.Errorf("invalid header %q in COUNTER_OTLP_HEADERS", pair)
		}
		headers[strings.TrimSpace(key)] = strings.TrimSpace(val)
	}

	return headers, nil
}

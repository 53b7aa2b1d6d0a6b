package stats

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/checker-network/leaderboard/internal/models"
	"github.com/checker-network/leaderboard/internal/successrate"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals

const (
	endpointPath = "/retrieval-success-rate"
	dateLayout   = "2006-01-02"
)

var (
	ErrDoingRequest  = errors.New("doing http request")
	ErrBadStatusCode = errors.New("bad status code")
	ErrDecodingBody  = errors.New("decoding response body")
)

type Client struct {
	httpClient *http.Client
	resolver   *URLResolver
	windowDays uint
	timeNow    func() time.Time
}

// New creates a stats API client. A windowDays of 0 omits the
// date range query parameters so the API picks its default range.
func New(httpClient *http.Client, resolver *URLResolver, windowDays uint,
	logger DebugLogger, timeNow func() time.Time) *Client {
	return &Client{
		httpClient: makeLogClient(httpClient, logger),
		resolver:   resolver,
		windowDays: windowDays,
		timeNow:    timeNow,
	}
}

// Endpoint returns the URL requested to fetch the retrieval
// measurements of the network.
func (c *Client) Endpoint(networkID string) string {
	endpoint := c.resolver.BaseURL(networkID) + endpointPath
	if c.windowDays == 0 {
		return endpoint
	}

	to := c.timeNow().UTC()
	from := to.AddDate(0, 0, -int(c.windowDays-1))
	values := url.Values{}
	values.Set("from", from.Format(dateLayout))
	values.Set("to", to.Format(dateLayout))
	return endpoint + "?" + values.Encode()
}

// Fetch requests the retrieval measurements of the network and
// returns its success rate. Any error means the network is unavailable
// for this cycle.
func (c *Client) Fetch(ctx context.Context, network models.Network) (
	result models.NetworkResult, err error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Endpoint(network.ID), nil)
	if err != nil {
		return result, fmt.Errorf("creating request: %w", err)
	}
	request.Header.Set("Accept", "application/json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return result, fmt.Errorf("%w: %w", ErrDoingRequest, err)
	}
	defer response.Body.Close()

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return result, fmt.Errorf("%w: %d: %s",
			ErrBadStatusCode, response.StatusCode, bodyToSingleLine(response.Body))
	}

	var measurements []models.Measurement
	decoder := json.NewDecoder(response.Body)
	err = decoder.Decode(&measurements)
	if err != nil {
		return result, fmt.Errorf("%w: %w", ErrDecodingBody, err)
	}

	rate, err := successrate.Calculate(measurements)
	if err != nil {
		return result, fmt.Errorf("calculating success rate: %w", err)
	}

	return models.NetworkResult{
		Network:     network,
		SuccessRate: rate,
		Days:        len(measurements),
		FetchedAt:   c.timeNow(),
	}, nil
}

func bodyToSingleLine(body io.Reader) (s string) {
	const maxBodyLength = 256
	b, err := io.ReadAll(io.LimitReader(body, maxBodyLength))
	if err != nil {
		return "error reading body: " + err.Error()
	}
	return toSingleLine(string(b))
}

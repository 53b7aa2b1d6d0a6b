// Package healthchecksio pings healthchecks.io around each cycle, so a
// check goes down if cycles stop or keep failing.
package healthchecksio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/checker-network/leaderboard/internal/models"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals

// New creates a new healthchecks.io client.
// If passed an empty uuid string, it acts as no-op implementation.
func New(httpClient *http.Client, baseURL, uuid string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		uuid:       uuid,
	}
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	uuid       string
}

var (
	ErrStatusCode = errors.New("bad status code")
)

type State string

const (
	Ok    State = "ok"
	Start State = "start"
	Fail  State = "fail"
	Exit0 State = "0"
	Exit1 State = "1"
)

// Ping signals the state to the check, without any body.
func (c *Client) Ping(ctx context.Context, state State) (err error) {
	return c.ping(ctx, state, nil)
}

// Report signals the outcome of a cycle to the check. The leaderboard
// is sent as JSON body on success, and the cycle error as text on failure,
// so it shows in the check event log.
func (c *Client) Report(ctx context.Context, board models.Leaderboard,
	cycleErr error) (err error) {
	if cycleErr != nil {
		return c.ping(ctx, Fail, []byte(cycleErr.Error()))
	}

	body, err := json.Marshal(board.JSON())
	if err != nil {
		return fmt.Errorf("encoding leaderboard: %w", err)
	}
	return c.ping(ctx, Ok, body)
}

func (c *Client) ping(ctx context.Context, state State, body []byte) (err error) {
	if c.uuid == "" {
		return nil
	}

	url := c.baseURL + "/" + c.uuid
	if state != Ok {
		url += "/" + string(state)
	}

	method := http.MethodGet
	var bodyReader io.Reader
	if len(body) > 0 {
		method = http.MethodPost
		bodyReader = bytes.NewReader(body)
	}

	request, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("doing http request: %w", err)
	}

	if response.StatusCode != http.StatusOK {
		_ = response.Body.Close()
		return fmt.Errorf("%w: %d %s", ErrStatusCode, response.StatusCode, response.Status)
	}

	err = response.Body.Close()
	if err != nil {
		return fmt.Errorf("closing response body: %w", err)
	}

	return nil
}

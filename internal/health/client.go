package health

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

type Client struct {
	httpClient *http.Client
}

func NewClient() *Client {
	const timeout = 5 * time.Second
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
	}
}

var ErrUnhealthy = errors.New("program is unhealthy")

// Query sends an HTTP request to the health server of the long running
// instance of the program listening on address.
func (c *Client) Query(ctx context.Context, address string) error {
	host, port, err := net.SplitHostPort(address)
	if err != nil {
		return fmt.Errorf("splitting host and port from address: %w", err)
	}
	if host == "" {
		host = "127.0.0.1"
	}

	url := "http://" + net.JoinHostPort(host, port)
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("querying health server: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusOK {
		return nil
	}

	b, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}
	return fmt.Errorf("%w: %s", ErrUnhealthy, strings.TrimSpace(string(b)))
}

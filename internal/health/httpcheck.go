package health

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrHTTPStatusCodeServerError = errors.New("status code is a server error")
)

// CheckHTTP verifies the client can reach the URL. Client error
// status codes are accepted since only the connectivity matters.
func CheckHTTP(ctx context.Context, client *http.Client, url string) (err error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	response, err := client.Do(request)
	if err != nil {
		return fmt.Errorf("performing request: %w", err)
	}
	_ = response.Body.Close()

	if response.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("%w: %d", ErrHTTPStatusCodeServerError, response.StatusCode)
	}

	return nil
}

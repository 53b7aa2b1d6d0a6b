package stats

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"golang.org/x/net/proxy"
)

var ErrDialerNotContextual = errors.New("SOCKS5 dialer does not support contexts")

// NewHTTPClient creates the HTTP client used for outbound requests,
// dialing connections with dialer.
// If socks5Address is not empty, connections are dialed through
// the SOCKS5 proxy at this address.
func NewHTTPClient(timeout time.Duration, socks5Address string, dialer *net.Dialer) (
	client *http.Client, err error) {
	transport := http.DefaultTransport.(*http.Transport).Clone() //nolint:forcetypeassert
	transport.DialContext = dialer.DialContext

	if socks5Address != "" {
		dialer, err := proxy.SOCKS5("tcp", socks5Address, nil, dialer)
		if err != nil {
			return nil, fmt.Errorf("creating SOCKS5 dialer: %w", err)
		}

		contextDialer, ok := dialer.(proxy.ContextDialer)
		if !ok {
			return nil, fmt.Errorf("%w: %T", ErrDialerNotContextual, dialer)
		}
		transport.Proxy = nil
		transport.DialContext = contextDialer.DialContext
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}, nil
}

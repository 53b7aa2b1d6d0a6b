package config

import (
	"fmt"
	"net"
	"time"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Client struct {
	Timeout     time.Duration
	SOCKS5Proxy *string
}

func (c *Client) setDefaults() {
	const defaultTimeout = 10 * time.Second
	c.Timeout = gosettings.DefaultComparable(c.Timeout, defaultTimeout)
	c.SOCKS5Proxy = gosettings.DefaultPointer(c.SOCKS5Proxy, "")
}

func (c Client) Validate() (err error) {
	const minTimeout = time.Second
	if c.Timeout < minTimeout {
		return fmt.Errorf("%w: %s is below the minimum %s",
			ErrTimeoutTooLow, c.Timeout, minTimeout)
	}

	if *c.SOCKS5Proxy != "" {
		_, _, err = net.SplitHostPort(*c.SOCKS5Proxy)
		if err != nil {
			return fmt.Errorf("socks5 proxy address: %w", err)
		}
	}
	return nil
}

func (c Client) String() string {
	return c.toLinesNode().String()
}

func (c Client) toLinesNode() *gotree.Node {
	node := gotree.New("HTTP client")
	node.Appendf("Timeout: %s", c.Timeout)
	if *c.SOCKS5Proxy != "" {
		node.Appendf("SOCKS5 proxy: %s", *c.SOCKS5Proxy)
	}
	return node
}

func (c *Client) read(reader *reader.Reader) (err error) {
	c.Timeout, err = reader.Duration("HTTP_TIMEOUT")
	if err != nil {
		return err
	}
	c.SOCKS5Proxy = reader.Get("HTTP_SOCKS5_PROXY")
	return nil
}

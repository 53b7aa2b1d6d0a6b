// Package resolver resolves the hosts of the stats APIs, using either
// the system resolver or a plaintext DNS server.
package resolver

import (
	"context"
	"fmt"
	"net"
	"time"
)

type Resolver struct {
	resolver *net.Resolver
	timeout  time.Duration
}

func New(settings Settings) (resolver *Resolver, err error) {
	settings.setDefaults()
	err = settings.validate()
	if err != nil {
		return nil, fmt.Errorf("validating settings: %w", err)
	}

	netResolver := net.DefaultResolver
	if *settings.Address != "" {
		dialer := net.Dialer{Timeout: settings.Timeout}
		netResolver = &net.Resolver{
			PreferGo: true,
			Dial: func(ctx context.Context, _, _ string) (net.Conn, error) {
				const protocol = "udp"
				return dialer.DialContext(ctx, protocol, *settings.Address)
			},
		}
	}

	return &Resolver{
		resolver: netResolver,
		timeout:  settings.Timeout,
	}, nil
}

// LookupIP resolves the host, failing if it takes longer than the timeout.
func (r *Resolver) LookupIP(ctx context.Context, network, host string) (
	ips []net.IP, err error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return r.resolver.LookupIP(ctx, network, host)
}

// Dialer returns a dialer resolving hosts with the resolver.
func (r *Resolver) Dialer() *net.Dialer {
	return &net.Dialer{Resolver: r.resolver}
}

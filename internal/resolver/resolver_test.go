package resolver

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrTo[T any](value T) *T { return &value }

func Test_New(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		settings        Settings
		defaultResolver bool
		errWrapped      error
		errMessage      string
	}{
		"default_resolver": {
			defaultResolver: true,
		},
		"custom_resolver": {
			settings: Settings{Address: ptrTo("1.1.1.1:53")},
		},
		"missing_port": {
			settings:   Settings{Address: ptrTo("1.1.1.1:")},
			errWrapped: ErrAddressPortEmpty,
			errMessage: "validating settings: address port is empty: in 1.1.1.1:",
		},
		"timeout_too_low": {
			settings: Settings{
				Address: ptrTo("1.1.1.1:53"),
				Timeout: time.Millisecond,
			},
			errWrapped: ErrTimeoutTooLow,
			errMessage: "validating settings: timeout is too low: 1ms is below the minimum 10ms",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			resolver, err := New(testCase.settings)

			if testCase.errWrapped != nil {
				assert.ErrorIs(t, err, testCase.errWrapped)
				assert.EqualError(t, err, testCase.errMessage)
				return
			}
			require.NoError(t, err)
			assert.Same(t, resolver.resolver, resolver.Dialer().Resolver)
			if testCase.defaultResolver {
				assert.Same(t, net.DefaultResolver, resolver.resolver)
				return
			}
			assert.True(t, resolver.resolver.PreferGo)
			assert.NotNil(t, resolver.resolver.Dial)
		})
	}
}

func Test_Resolver_LookupIP(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		host string
		ips  []net.IP
	}{
		"ipv4_literal": {
			host: "127.0.0.1",
			ips:  []net.IP{net.IPv4(127, 0, 0, 1)},
		},
		"ipv6_literal": {
			host: "::1",
			ips:  []net.IP{net.IPv6loopback},
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			resolver, err := New(Settings{})
			require.NoError(t, err)

			ips, err := resolver.LookupIP(context.Background(), "ip", testCase.host)

			require.NoError(t, err)
			require.Len(t, ips, 1)
			assert.True(t, testCase.ips[0].Equal(ips[0]))
		})
	}
}

func Test_Resolver_LookupIP_timeout(t *testing.T) {
	t.Parallel()

	// The listener never answers the DNS queries.
	conn, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	resolver, err := New(Settings{
		Address: ptrTo(conn.LocalAddr().String()),
		Timeout: 50 * time.Millisecond,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	start := time.Now()
	_, err = resolver.LookupIP(ctx, "ip", "stats.example.com")

	assert.Error(t, err)
	assert.Less(t, time.Since(start), 4*time.Second)
}

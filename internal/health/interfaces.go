package health

import (
	"context"
	"net"
	"time"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . LastCycler,LookupIPer

type LastCycler interface {
	LastCycle() (cycleTime time.Time, cycleErr error)
}

type LookupIPer interface {
	LookupIP(ctx context.Context, network, host string) (ips []net.IP, err error)
}

type Logger interface {
	Debug(s string)
	Info(s string)
	Warn(s string)
	Error(s string)
}

package stats

import (
	"bytes"
	"io"
	"net/http"
	"sort"
	"strings"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . DebugLogger

type DebugLogger interface {
	Debug(s string)
}

// makeLogClient returns a client sharing the transport of client and
// logging each request and response it handles at the debug level.
func makeLogClient(client *http.Client, logger DebugLogger) (newClient *http.Client) {
	transport := client.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}

	return &http.Client{
		Timeout: client.Timeout,
		Transport: &loggingRoundTripper{
			proxied: transport,
			logger:  logger,
		},
	}
}

type loggingRoundTripper struct {
	proxied http.RoundTripper
	logger  DebugLogger
}

// CloseIdleConnections closes the idle connections of the shared
// transport, if it supports it.
func (lrt *loggingRoundTripper) CloseIdleConnections() {
	type closeIdler interface {
		CloseIdleConnections()
	}
	closer, ok := lrt.proxied.(closeIdler)
	if ok {
		closer.CloseIdleConnections()
	}
}

func (lrt *loggingRoundTripper) RoundTrip(request *http.Request) (
	response *http.Response, err error) {
	lrt.logger.Debug(requestToString(request))

	response, err = lrt.proxied.RoundTrip(request)
	if err != nil {
		return response, err
	}

	lrt.logger.Debug(responseToString(response))

	return response, nil
}

func requestToString(request *http.Request) (s string) {
	s = request.Method + " " + request.URL.String()

	if len(request.Header) > 0 {
		s += " | headers: " + headerToString(request.Header)
	}

	if request.Body != nil && request.Body != http.NoBody {
		newBody, bodyString := readAndResetBody(request.Body)
		request.Body = newBody
		s += " | body: " + bodyString
	}

	return s
}

func responseToString(response *http.Response) (s string) {
	s = response.Status

	if len(response.Header) > 0 {
		s += " | headers: " + headerToString(response.Header)
	}

	if response.Body != nil {
		newBody, bodyString := readAndResetBody(response.Body)
		response.Body = newBody
		s += " | body: " + bodyString
	}

	return s
}

func headerToString(header http.Header) (s string) {
	keys := make([]string, 0, len(header))
	for key := range header {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	headers := make([]string, len(keys))
	for i, key := range keys {
		headers[i] = key + ": " + strings.Join(header[key], ",")
	}
	return strings.Join(headers, "; ")
}

// readAndResetBody reads the body entirely, closes it and returns
// a new body containing the same bytes, ready to be read again.
func readAndResetBody(body io.ReadCloser) (
	newBody io.ReadCloser, bodyString string) {
	b, err := io.ReadAll(body)
	_ = body.Close()
	if err != nil {
		return io.NopCloser(bytes.NewReader(nil)), "error reading body: " + err.Error()
	}
	return io.NopCloser(bytes.NewReader(b)), toSingleLine(string(b))
}

func toSingleLine(s string) (line string) {
	line = strings.ReplaceAll(s, "\n", "")
	line = strings.ReplaceAll(line, "\r", "")
	line = strings.ReplaceAll(line, "\t", " ")
	for strings.Contains(line, "  ") {
		line = strings.ReplaceAll(line, "  ", " ")
	}
	return line
}

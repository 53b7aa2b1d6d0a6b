package stats

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/checker-network/leaderboard/internal/stats/mock_stats"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_LogClient(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		requestMethod      string
		requestHeaders     http.Header
		requestBody        string
		requestLineSuffix  string
		responseStatusCode int
		responseBody       string
		responseLineRegex  string
	}{
		"PUT with headers and body": {
			requestMethod: http.MethodPut,
			requestHeaders: http.Header{
				"Key2": []string{"value 3"},
				"Key1": []string{"value 1", "value 2"},
			},
			requestBody:        "request\nbody",
			requestLineSuffix:  " | headers: Key1: value 1,value 2; Key2: value 3 | body: requestbody",
			responseStatusCode: http.StatusAccepted,
			responseBody:       "response body",
			responseLineRegex: `^202 Accepted \| headers: Content-Length: 13; ` +
				`Content-Type: text/plain; charset=utf-8; Date: .+ \| body: response body$`,
		},
		"simple GET": {
			requestMethod:      http.MethodGet,
			responseStatusCode: http.StatusOK,
			responseBody:       `[{"day":"2024-01-01"}]`,
			responseLineRegex: `^200 OK \| headers: Content-Length: 22; ` +
				`Content-Type: text/plain; charset=utf-8; Date: .+ \| ` +
				regexp.QuoteMeta(`body: [{"day":"2024-01-01"}]`) + `$`,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)

			handler := http.HandlerFunc(func(rw http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.requestMethod, request.Method)
				for key, expectedValues := range testCase.requestHeaders {
					assert.Equal(t, expectedValues, request.Header[key])
				}
				b, err := io.ReadAll(request.Body)
				assert.NoError(t, err)
				assert.Equal(t, testCase.requestBody, string(b))

				rw.WriteHeader(testCase.responseStatusCode)
				_, err = rw.Write([]byte(testCase.responseBody))
				assert.NoError(t, err)
			})
			server := httptest.NewServer(handler)
			t.Cleanup(server.Close)

			logger := mock_stats.NewMockDebugLogger(ctrl)
			logger.EXPECT().Debug(testCase.requestMethod + " " + server.URL + testCase.requestLineSuffix)
			logger.EXPECT().Debug(gomock.AssignableToTypeOf("")).
				Do(func(s string) {
					assert.Regexp(t, testCase.responseLineRegex, s)
				})

			client := server.Client()
			logClient := makeLogClient(client, logger)

			assert.Equal(t, client.Timeout, logClient.Timeout)

			var requestBody io.Reader
			if testCase.requestBody != "" {
				requestBody = bytes.NewBufferString(testCase.requestBody)
			}
			request, err := http.NewRequestWithContext(context.Background(),
				testCase.requestMethod, server.URL, requestBody)
			require.NoError(t, err)
			for key, values := range testCase.requestHeaders {
				request.Header[key] = values
			}

			response, err := logClient.Do(request)
			require.NoError(t, err)
			t.Cleanup(func() { _ = response.Body.Close() })

			assert.Equal(t, testCase.responseStatusCode, response.StatusCode)
			b, err := io.ReadAll(response.Body)
			require.NoError(t, err)
			assert.Equal(t, testCase.responseBody, string(b))
		})
	}
}

func Test_toSingleLine(t *testing.T) {
	t.Parallel()

	line := toSingleLine("[\n  {\r\n\t\"day\": \"2024-01-01\"\n  }\n]")

	assert.Equal(t, `[ { "day": "2024-01-01" }]`, line)
}

type idleCloserTransport struct {
	http.RoundTripper
	closeCalls int
}

func (t *idleCloserTransport) CloseIdleConnections() {
	t.closeCalls++
}

func Test_makeLogClient_sharesTransport(t *testing.T) {
	t.Parallel()

	transport := &idleCloserTransport{RoundTripper: http.DefaultTransport}
	client := &http.Client{Transport: transport}

	logClient := makeLogClient(client, nil)

	roundTripper, ok := logClient.Transport.(*loggingRoundTripper)
	require.True(t, ok)
	assert.Same(t, transport, roundTripper.proxied)

	client.CloseIdleConnections()
	logClient.CloseIdleConnections()
	assert.Equal(t, 2, transport.closeCalls)
}

package healthchecksio

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/checker-network/leaderboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Client_Ping(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		uuid       string
		state      State
		status     int
		path       string
		errWrapped error
	}{
		"no uuid": {
			state: Fail,
		},
		"ok": {
			uuid:   "abc",
			state:  Ok,
			status: http.StatusOK,
			path:   "/abc",
		},
		"fail": {
			uuid:   "abc",
			state:  Fail,
			status: http.StatusOK,
			path:   "/abc/fail",
		},
		"exit code 1": {
			uuid:   "abc",
			state:  Exit1,
			status: http.StatusOK,
			path:   "/abc/1",
		},
		"bad status": {
			uuid:       "abc",
			state:      Start,
			status:     http.StatusNotFound,
			path:       "/abc/start",
			errWrapped: ErrStatusCode,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var mutex sync.Mutex
			var path string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				mutex.Lock()
				path = r.URL.Path
				mutex.Unlock()
				w.WriteHeader(testCase.status)
			}))
			t.Cleanup(server.Close)

			client := New(server.Client(), server.URL+"/", testCase.uuid)

			err := client.Ping(context.Background(), testCase.state)

			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped == nil {
				assert.NoError(t, err)
			}
			mutex.Lock()
			defer mutex.Unlock()
			assert.Equal(t, testCase.path, path)
		})
	}
}

func Test_Client_Report(t *testing.T) {
	t.Parallel()

	board := models.Leaderboard{
		ID:   "id",
		Time: time.Unix(0, 0).UTC(),
		Entries: []models.Entry{{
			Rank: 1,
			Result: models.NetworkResult{
				Network:     models.Network{ID: "walrus", Symbol: "WAL"},
				SuccessRate: 50,
			},
		}},
	}

	testCases := map[string]struct {
		cycleErr error
		method   string
		path     string
		body     string
	}{
		"success": {
			method: http.MethodPost,
			path:   "/abc",
			body:   `"network":"walrus"`,
		},
		"failure": {
			cycleErr: errors.New("no network data available"),
			method:   http.MethodPost,
			path:     "/abc/fail",
			body:     "no network data available",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var mutex sync.Mutex
			var method, path, body string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				b, _ := io.ReadAll(r.Body)
				mutex.Lock()
				method, path, body = r.Method, r.URL.Path, string(b)
				mutex.Unlock()
			}))
			t.Cleanup(server.Close)

			client := New(server.Client(), server.URL, "abc")

			err := client.Report(context.Background(), board, testCase.cycleErr)

			require.NoError(t, err)
			mutex.Lock()
			defer mutex.Unlock()
			assert.Equal(t, testCase.method, method)
			assert.Equal(t, testCase.path, path)
			assert.Contains(t, body, testCase.body)
		})
	}
}

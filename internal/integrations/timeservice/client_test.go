package timeservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type observedCall struct {
	target string
	status string
}

type fakeCollector struct {
	calls []observedCall
}

func (f *fakeCollector) ObserveExternal(target, status string, _ time.Duration) {
	f.calls = append(f.calls, observedCall{target, status})
}

func TestGetServerTime(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/time", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"serverTime": 1749556800000}`))
	}))
	defer srv.Close()

	collector := &fakeCollector{}
	client := NewClient(srv.URL, time.Second, collector, nopLogger{})

	got, err := client.GetServerTime(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1749556800000), got)

	require.Len(t, collector.calls, 1)
	assert.Equal(t, observedCall{"time_service", "success"}, collector.calls[0])
}

func TestGetServerTime_ServerErrorObserved(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	collector := &fakeCollector{}
	client := NewClient(srv.URL, time.Second, collector, nopLogger{})

	_, err := client.GetServerTime(context.Background())
	require.ErrorIs(t, err, ErrInvalidResponse)

	require.Len(t, collector.calls, 1)
	assert.Equal(t, observedCall{"time_service", "error"}, collector.calls[0])
}

package spc

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spcwebgw/spc2mqtt/internal/log"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, time.Second, log.NewLogger("error"))
}

func TestClientGet(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/spc/panel", r.URL.Path)
		fmt.Fprint(w, `{"status":"success","data":{"panel":{"sn":"42"}}}`)
	})

	data := c.Get(context.Background(), "spc/panel")
	require.NotNil(t, data)
	require.NotNil(t, data.Panel)
	require.Equal(t, "42", data.Panel.SerialNumber)
}

func TestClientCollapsesFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "http error status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
		},
		{
			name: "payload status not success",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"status":"error","data":{}}`)
			},
		},
		{
			name: "undecodable body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `<html>not json</html>`)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testClient(t, tt.handler)
			require.Nil(t, c.Get(context.Background(), "spc/zone"))
			require.Nil(t, c.Put(context.Background(), "spc/area/1/set"))
		})
	}
}

func TestClientTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		fmt.Fprint(w, `{"status":"success","data":{}}`)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL, 50*time.Millisecond, log.NewLogger("error"))
	require.Nil(t, c.Get(context.Background(), "spc/zone"))
}

func TestClientConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewClient(srv.URL, time.Second, log.NewLogger("error"))
	require.Nil(t, c.Get(context.Background(), "spc/panel"))
}

func TestZoneRecordsTolerateBothShapes(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/spc/zone/1" {
			fmt.Fprint(w, `{"status":"success","data":{"zone":{"id":"1","zone_name":"One"}}}`)
			return
		}
		fmt.Fprint(w, `{"status":"success","data":{"zone":[{"id":"1","zone_name":"One"},{"id":"2","zone_name":"Two"}]}}`)
	})

	single := c.Get(context.Background(), "spc/zone/1")
	require.NotNil(t, single)
	require.Len(t, single.Zones, 1)
	require.Equal(t, "One", single.Zones[0].Name)

	list := c.Get(context.Background(), "spc/zone")
	require.NotNil(t, list)
	require.Len(t, list.Zones, 2)
}

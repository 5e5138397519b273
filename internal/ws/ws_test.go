package ws

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/require"

	"github.com/spcwebgw/spc2mqtt/internal/log"
)

func TestClientReceivesAndReconnects(t *testing.T) {
	var sessions atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessions.Add(1)
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		defer conn.CloseNow()

		msg := []byte(`{"data":{"sia":{"sia_address":"3","sia_code":"ZO"}}}`)
		if err := conn.Write(r.Context(), websocket.MessageText, msg); err != nil {
			return
		}
		// Drop the connection so the client has to reconnect.
		conn.Close(websocket.StatusNormalClosure, "")
	}))
	t.Cleanup(srv.Close)

	received := make(chan []byte, 8)
	handler := func(_ context.Context, message []byte) {
		received <- message
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client := New(url, handler, log.NewLogger("error"))
	client.Start(ctx)

	select {
	case msg := <-received:
		require.JSONEq(t, `{"data":{"sia":{"sia_address":"3","sia_code":"ZO"}}}`, string(msg))
	case <-time.After(5 * time.Second):
		t.Fatal("no message received")
	}

	// The server closed the connection after one message; the client must
	// come back for another session.
	select {
	case <-received:
	case <-time.After(10 * time.Second):
		t.Fatal("client did not reconnect")
	}
	require.GreaterOrEqual(t, sessions.Load(), int32(2))

	cancel()
	select {
	case <-client.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("read loop did not stop")
	}
}

func TestClientStopsWhenServerUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client := New(url, func(context.Context, []byte) {}, log.NewLogger("error"))
	client.Start(ctx)

	// Let it fail to dial at least once, then shut down.
	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case <-client.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("read loop did not stop")
	}
}

package stream

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestHubBroadcast(t *testing.T) {
	hub := NewHub(nil)
	client := hub.Register("trip-1")
	defer hub.Unregister(client)

	payload := []byte("hello")
	hub.Broadcast("trip-1", payload)

	select {
	case msg := <-client.Send:
		if string(msg) != "hello" {
			t.Fatalf("unexpected message")
		}
	case <-time.After(100 * time.Millisecond):
		t.Fatalf("timeout waiting for message")
	}
}

func TestHubHelpers(t *testing.T) {
	ch := redisChannel("abc")
	if ch == "" {
		t.Fatalf("expected channel")
	}
	if tripIDFromChannel(ch) != "abc" {
		t.Fatalf("unexpected trip id")
	}
	if tripIDFromChannel("bad") != "" {
		t.Fatalf("expected empty trip id")
	}
}

func TestUnregisterCloses(t *testing.T) {
	hub := NewHub(nil)
	client := hub.Register("trip-2")
	hub.Unregister(client)
	_, ok := <-client.Send
	if ok {
		t.Fatalf("expected channel closed")
	}
}

func TestUnregisterTwice(t *testing.T) {
	hub := NewHub(nil)
	client := hub.Register("trip-3")
	hub.Unregister(client)
	hub.Unregister(client) // must not close Send again
}

func TestHubRedisBroadcastAndSubscribe(t *testing.T) {
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	defer client.Close()

	hub := NewHub(client)
	ws := hub.Register("trip-redis")
	defer hub.Unregister(ws)

	// give the subscriber goroutine a moment to attach
	time.Sleep(50 * time.Millisecond)

	if err := client.Publish(context.Background(), redisChannel("trip-redis"), "from-redis").Err(); err != nil {
		t.Fatalf("publish: %v", err)
	}

	select {
	case msg := <-ws.Send:
		if string(msg) != "from-redis" {
			t.Fatalf("unexpected message: %s", msg)
		}
	case <-time.After(time.Second):
		t.Fatalf("timeout waiting for redis fan-out")
	}

	hub.Broadcast("trip-redis", []byte("direct"))
	select {
	case msg := <-ws.Send:
		if string(msg) != "direct" {
			t.Fatalf("unexpected message: %s", msg)
		}
	case <-time.After(time.Second):
		t.Fatalf("timeout waiting for direct broadcast")
	}
}

func TestBroadcastDeliversOnceWithRedis(t *testing.T) {
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	defer client.Close()

	hub := NewHub(client)
	ws := hub.Register("trip-once")
	defer hub.Unregister(ws)

	// give the subscriber goroutine a moment to attach
	time.Sleep(50 * time.Millisecond)

	hub.Broadcast("trip-once", []byte("fare update"))

	select {
	case msg := <-ws.Send:
		if string(msg) != "fare update" {
			t.Fatalf("unexpected message: %s", msg)
		}
	case <-time.After(time.Second):
		t.Fatalf("timeout waiting for broadcast")
	}

	select {
	case msg := <-ws.Send:
		t.Fatalf("duplicate delivery: %s", msg)
	case <-time.After(500 * time.Millisecond):
	}
}

package alertstream

import (
	"context"
	"testing"
	"time"

	"monitor-srv/internal/model"
	"monitor-srv/pkg/log"
)

func testHub(maxConnections int) *Hub {
	l := log.Init(log.ZapConfig{Level: "error", Mode: "production", Encoding: "json"})
	return NewHub(l, maxConnections)
}

func waitActive(t *testing.T, hub *Hub, want int64) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for {
		active, _, _ := hub.Stats()
		if active == want {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("active connections = %d, want %d", active, want)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestHubDeliversAlertToOrgSubscribers(t *testing.T) {
	hub := testHub(10)
	go hub.Run()
	defer hub.Shutdown(context.Background())

	subscriber := newConnection(hub.logger, nil, "org-1", "alice")
	bystander := newConnection(hub.logger, nil, "org-2", "bob")
	hub.register <- subscriber
	hub.register <- bystander
	waitActive(t, hub, 2)

	hub.PublishAlert("org-1", model.MonitoringAlert{ID: "alert-1", Title: "hot account"})

	select {
	case event := <-subscriber.send:
		if event.Type != EventTypeAlert {
			t.Errorf("event type = %s, want alert", event.Type)
		}
		if event.Alert == nil || event.Alert.ID != "alert-1" {
			t.Errorf("event alert = %+v", event.Alert)
		}
	case <-time.After(time.Second):
		t.Fatal("subscriber never received the alert")
	}

	select {
	case event := <-bystander.send:
		t.Fatalf("other org received %+v", event)
	default:
	}

	_, sent, dropped := hub.Stats()
	if sent != 1 || dropped != 0 {
		t.Errorf("sent = %d dropped = %d, want 1/0", sent, dropped)
	}
}

func TestHubUnregisterClosesSend(t *testing.T) {
	hub := testHub(10)
	go hub.Run()
	defer hub.Shutdown(context.Background())

	conn := newConnection(hub.logger, nil, "org-1", "alice")
	hub.register <- conn
	waitActive(t, hub, 1)

	hub.unregister <- conn
	waitActive(t, hub, 0)

	select {
	case _, ok := <-conn.send:
		if ok {
			t.Error("expected closed send channel")
		}
	case <-time.After(time.Second):
		t.Fatal("send channel never closed")
	}

	// Publishing to an org with no subscribers is a quiet no-op.
	hub.PublishAlert("org-1", model.MonitoringAlert{ID: "alert-2"})
}

func TestHubSlowConsumerDropsEvents(t *testing.T) {
	hub := testHub(10)
	go hub.Run()
	defer hub.Shutdown(context.Background())

	conn := newConnection(hub.logger, nil, "org-1", "alice")
	hub.register <- conn
	waitActive(t, hub, 1)

	// Nobody drains conn.send, so everything past the buffer is dropped.
	for i := 0; i < sendBuffer+5; i++ {
		hub.PublishAlert("org-1", model.MonitoringAlert{ID: "alert"})
	}

	deadline := time.Now().Add(time.Second)
	for {
		_, sent, dropped := hub.Stats()
		if sent == sendBuffer && dropped == 5 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("sent = %d dropped = %d, want %d/5", sent, dropped, sendBuffer)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestHubShutdownClosesConnections(t *testing.T) {
	hub := testHub(10)
	go hub.Run()

	conn := newConnection(hub.logger, nil, "org-1", "alice")
	hub.register <- conn
	waitActive(t, hub, 1)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := hub.Shutdown(ctx); err != nil {
		t.Fatalf("shutdown: %v", err)
	}

	if _, ok := <-conn.send; ok {
		t.Error("send channel still open after shutdown")
	}
	active, _, _ := hub.Stats()
	if active != 0 {
		t.Errorf("active = %d after shutdown", active)
	}
}

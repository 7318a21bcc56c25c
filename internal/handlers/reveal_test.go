package handlers

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"folio/internal/reveal"
)

type sseEvent struct {
	name string
	data string
}

func parseEvents(t *testing.T, body string) []sseEvent {
	t.Helper()
	var (
		events []sseEvent
		cur    sseEvent
	)
	sc := bufio.NewScanner(strings.NewReader(body))
	for sc.Scan() {
		line := sc.Text()
		switch {
		case strings.HasPrefix(line, "event: "):
			cur.name = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			cur.data = strings.TrimPrefix(line, "data: ")
		case line == "" && cur.name != "":
			events = append(events, cur)
			cur = sseEvent{}
		}
	}
	return events
}

func revealedIDs(t *testing.T, events []sseEvent) []string {
	t.Helper()
	var ids []string
	for _, e := range events {
		if e.name != "reveal" {
			continue
		}
		var s reveal.Step
		if err := json.Unmarshal([]byte(e.data), &s); err != nil {
			t.Fatalf("decode reveal event %q: %v", e.data, err)
		}
		ids = append(ids, s.ID)
	}
	return ids
}

func TestRevealStreamsInOrder(t *testing.T) {
	h := newHarness(t, seededStore(t))
	rr := h.client(t).get("/reveal/home?ids=ach-a%2Cach-b%2Cach-c")

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("Content-Type: got %q", ct)
	}

	events := parseEvents(t, rr.Body.String())
	got := strings.Join(revealedIDs(t, events), ",")
	if got != "ach-a,ach-b,ach-c" {
		t.Errorf("reveal order: got %q", got)
	}
	if len(events) == 0 || events[len(events)-1].name != "done" {
		t.Error("stream should end with a done event")
	}
}

func TestRevealAboutBars(t *testing.T) {
	h := newHarness(t, seededStore(t))
	rr := h.client(t).get("/reveal/about")

	ids := revealedIDs(t, parseEvents(t, rr.Body.String()))
	if len(ids) != 1 || ids[0] != reveal.AboutBarsID {
		t.Errorf("about reveal: got %v", ids)
	}
}

func TestRevealEmptyIDs(t *testing.T) {
	h := newHarness(t, seededStore(t))
	rr := h.client(t).get("/reveal/products")

	events := parseEvents(t, rr.Body.String())
	if len(events) != 1 || events[0].name != "done" {
		t.Errorf("empty cascade should only send done, got %v", events)
	}
}

func TestRevealUnknownPage(t *testing.T) {
	h := newHarness(t, seededStore(t))
	rr := h.client(t).get("/reveal/stats")

	if rr.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", rr.Code)
	}
}

func TestRevealStopsWhenClientLeaves(t *testing.T) {
	h := newHarness(t, seededStore(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodGet, "/reveal/home?ids=a,b,c", nil).WithContext(ctx)
	rr := httptest.NewRecorder()
	h.handler.ServeHTTP(rr, req)

	for _, e := range parseEvents(t, rr.Body.String()) {
		if e.name == "done" {
			t.Fatal("a cancelled stream must not complete")
		}
	}
}

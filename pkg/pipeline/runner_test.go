package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/usmankhanpk/riverboard/pkg/feed"
	"github.com/usmankhanpk/riverboard/pkg/marker"
)

// fakeFeed returns a canned payload and counts calls.
type fakeFeed struct {
	payload *feed.Payload
	err     error
	calls   int
}

func (f *fakeFeed) Fetch(ctx context.Context) (*feed.Payload, error) {
	f.calls++
	return f.payload, f.err
}

// fakePublisher records the last publication.
type fakePublisher struct {
	filename string
	caption  string
	err      error
	calls    int
}

func (p *fakePublisher) Publish(ctx context.Context, filename string, png []byte, caption string) error {
	p.calls++
	p.filename = filename
	p.caption = caption
	return p.err
}

func testPayload() *feed.Payload {
	return &feed.Payload{
		LatestReadingTime: "09-Sep-2025 13:30 PKT",
		Stations: []feed.Station{
			{Name: "Jassar", Status: "NORMAL", OutflowDischarge: "950", OutflowTrend: "Steady"},
			{Name: "Marala", Status: "HIGH", OutflowDischarge: "34250", OutflowTrend: "Rising"},
		},
	}
}

func testClock() clockwork.Clock {
	return clockwork.NewFakeClockAt(time.Date(2025, time.September, 9, 15, 0, 0, 0, time.UTC))
}

func TestRunRendersAndPersists(t *testing.T) {
	dir := t.TempDir()
	store := marker.NewFileStore(filepath.Join(dir, "last_report.txt"))
	runner := NewRunner(&fakeFeed{payload: testPayload()}, store, testClock(), nil)

	result, err := runner.Run(context.Background(), Options{OutDir: dir})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Skipped {
		t.Fatal("first run must not be skipped")
	}
	if result.Rows != 9 {
		t.Errorf("Rows = %d, want 9 (full default table)", result.Rows)
	}

	wantPath := filepath.Join(dir, "9 Sep 1-30 PM.png")
	if result.OutPath != wantPath {
		t.Errorf("OutPath = %q, want %q", result.OutPath, wantPath)
	}
	if _, err := os.Stat(wantPath); err != nil {
		t.Errorf("output image missing: %v", err)
	}

	last, ok, err := store.Last()
	if err != nil || !ok {
		t.Fatalf("marker not persisted: %v %v", ok, err)
	}
	if last != "09-Sep-2025 13:30 PKT" {
		t.Errorf("marker = %q, want the payload timestamp", last)
	}
}

func TestRunSkipsUnchangedTimestamp(t *testing.T) {
	dir := t.TempDir()
	store := marker.NewFileStore(filepath.Join(dir, "last_report.txt"))
	f := &fakeFeed{payload: testPayload()}
	runner := NewRunner(f, store, testClock(), nil)

	if _, err := runner.Run(context.Background(), Options{OutDir: dir}); err != nil {
		t.Fatalf("first Run: %v", err)
	}

	second, err := runner.Run(context.Background(), Options{OutDir: dir})
	if err != nil {
		t.Fatalf("second Run: %v", err)
	}
	if !second.Skipped {
		t.Fatal("second run with the same timestamp must be skipped")
	}
	if second.OutPath != "" {
		t.Errorf("skipped run OutPath = %q, want empty", second.OutPath)
	}
	if f.calls != 2 {
		t.Errorf("fetch calls = %d, want 2 (the gate sits behind the fetch)", f.calls)
	}

	// The skipped run wrote nothing new.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 { // image + marker
		t.Errorf("dir has %d entries, want 2", len(entries))
	}
}

func TestRunForceBypassesGate(t *testing.T) {
	dir := t.TempDir()
	store := marker.NewFileStore(filepath.Join(dir, "last_report.txt"))
	runner := NewRunner(&fakeFeed{payload: testPayload()}, store, testClock(), nil)

	if _, err := runner.Run(context.Background(), Options{OutDir: dir}); err != nil {
		t.Fatalf("first Run: %v", err)
	}

	result, err := runner.Run(context.Background(), Options{OutDir: dir, Force: true})
	if err != nil {
		t.Fatalf("forced Run: %v", err)
	}
	if result.Skipped {
		t.Error("forced run must not be skipped")
	}
}

func TestRunFetchError(t *testing.T) {
	wantErr := errors.New("boom")
	runner := NewRunner(&fakeFeed{err: wantErr}, nil, testClock(), nil)

	_, err := runner.Run(context.Background(), Options{OutDir: t.TempDir()})
	if !errors.Is(err, wantErr) {
		t.Fatalf("Run error = %v, want wrapped %v", err, wantErr)
	}
}

func TestRunPublishes(t *testing.T) {
	dir := t.TempDir()
	pub := &fakePublisher{}
	runner := NewRunner(&fakeFeed{payload: testPayload()}, nil, testClock(), nil)

	_, err := runner.Run(context.Background(), Options{OutDir: dir, Publisher: pub})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if pub.calls != 1 {
		t.Fatalf("publish calls = %d, want 1", pub.calls)
	}
	if pub.filename != "9 Sep 1-30 PM.png" {
		t.Errorf("published filename = %q", pub.filename)
	}
	if pub.caption != "NEOC Daily Rivers Situation Update – 09 Sep 2025 1:30 PM" {
		t.Errorf("caption = %q", pub.caption)
	}
}

func TestRunPublishFailureIsNotFatal(t *testing.T) {
	dir := t.TempDir()
	pub := &fakePublisher{err: errors.New("telegram down")}
	runner := NewRunner(&fakeFeed{payload: testPayload()}, nil, testClock(), nil)

	result, err := runner.Run(context.Background(), Options{OutDir: dir, Publisher: pub})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.OutPath == "" {
		t.Error("image must be written even when publication fails")
	}
}

package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/usmankhanpk/riverboard/pkg/config"
)

func TestRootCommand(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	if root.Use != "riverboard" {
		t.Errorf("Use = %q, want %q", root.Use, "riverboard")
	}

	want := map[string]bool{
		"generate":   false,
		"watch":      false,
		"stations":   false,
		"completion": false,
	}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestWatchInvalidSchedule(t *testing.T) {
	c := New(io.Discard, LogInfo)
	cfg := &config.Config{EndpointURL: "https://example.org", APIKey: "k"}

	err := c.runWatch(&cobra.Command{}, cfg, &generateOpts{}, "not a schedule")
	if err == nil {
		t.Fatal("expected error for unparsable schedule")
	}
	if !strings.Contains(err.Error(), "invalid schedule") {
		t.Errorf("error = %v, want schedule parse failure", err)
	}
}

func TestNewPublisherRequiresConfig(t *testing.T) {
	if _, err := newPublisher(&config.Config{}); err == nil {
		t.Error("expected error when Telegram settings are absent")
	}
}

func TestWatchPublishMisconfigured(t *testing.T) {
	// The publisher is built once before the loop; unconfigured Telegram
	// settings abort the command before any run fires.
	c := New(io.Discard, LogInfo)
	cfg := &config.Config{EndpointURL: "https://example.org", APIKey: "k"}

	err := c.runWatch(&cobra.Command{}, cfg, &generateOpts{publish: true}, "0 * * * *")
	if err == nil {
		t.Fatal("expected error when --publish is set without Telegram config")
	}
	if !strings.Contains(err.Error(), "TELEGRAM") {
		t.Errorf("error = %v, want Telegram configuration failure", err)
	}
}

func TestLoadTableDefault(t *testing.T) {
	table, err := loadTable("")
	if err != nil {
		t.Fatalf("loadTable: %v", err)
	}
	if len(table.Stations) != 9 {
		t.Errorf("len(Stations) = %d, want the built-in 9", len(table.Stations))
	}
}

func TestLoadTableFromFile(t *testing.T) {
	src := `
[[stations]]
key = "alpha"
api_name = "Alpha"
river = "Ravi"
headwork = "Alpha"
short_name = "Alpha"
`
	path := filepath.Join(t.TempDir(), "stations.toml")
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}

	table, err := loadTable(path)
	if err != nil {
		t.Fatalf("loadTable: %v", err)
	}
	if len(table.Stations) != 1 {
		t.Errorf("len(Stations) = %d, want 1", len(table.Stations))
	}
}

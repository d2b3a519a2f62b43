package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// scriptedPrompter answers Choose with a fixed pick and ReadLine with
// queued lines, recording the prompts it saw.
type scriptedPrompter struct {
	t       *testing.T
	pick    int
	lines   []string
	prompts []string
}

func (p *scriptedPrompter) Choose(prompt string, options []string) (string, error) {
	p.prompts = append(p.prompts, prompt)
	if p.pick < 0 || p.pick >= len(options) {
		p.t.Fatalf("scripted pick %d out of range for %d options", p.pick, len(options))
	}
	return options[p.pick], nil
}

func (p *scriptedPrompter) ReadLine(prompt string) (string, error) {
	p.prompts = append(p.prompts, prompt)
	if len(p.lines) == 0 {
		p.t.Fatalf("unexpected ReadLine(%q): script exhausted", prompt)
	}
	line := p.lines[0]
	p.lines = p.lines[1:]
	return line, nil
}

func TestInitialise(t *testing.T) {
	tests := []struct {
		name        string
		configName  string
		wantSection string
	}{
		{
			name:        "defaults section",
			configName:  "",
			wantSection: "defaults",
		},
		{
			name:        "named profile",
			configName:  "work",
			wantSection: "work",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config")
			out := &bytes.Buffer{}
			f := New(path)
			f.Out = out

			prompter := &scriptedPrompter{
				t:     t,
				pick:  1,
				lines: []string{"client-id", "client-secret", "app-id", "example"},
			}
			if err := f.Initialise(prompter, test.configName); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			wantPrompts := []string{
				"Pick a Onelogin API server:",
				"Onelogin API Client ID: ",
				"Onelogin API Client Secret: ",
				"Onelogin App ID for AWS: ",
				"Onelogin subdomain: ",
			}
			if diff := cmp.Diff(wantPrompts, prompter.prompts); diff != "" {
				t.Errorf("prompt sequence mismatch (-want +got):\n%v", diff)
			}

			section := f.Section(test.wantSection)
			want := map[string]string{
				"base_uri":      "https://api.eu.onelogin.com/",
				"client_id":     "client-id",
				"client_secret": "client-secret",
				"aws_app_id":    "app-id",
				"subdomain":     "example",
			}
			for key, wantValue := range want {
				value, err := section.Get(key)
				if err != nil {
					t.Fatalf("unexpected error reading %q: %v", key, err)
				}
				if value != wantValue {
					t.Errorf("expected %v=%q, got %q", key, wantValue, value)
				}
			}

			if !strings.HasPrefix(out.String(), "Configure Onelogin and AWS\n\n") {
				t.Errorf("expected the banner first, got output:\n%v", out.String())
			}
			if !strings.Contains(out.String(), "Configuration written to '"+path+"'.") {
				t.Errorf("expected a save confirmation, got output:\n%v", out.String())
			}

			// Initialise must have persisted the file.
			if _, err := os.Stat(path); err != nil {
				t.Errorf("expected the configuration file on disk: %v", err)
			}
		})
	}
}

func TestInitialiseMarksStoreInitialised(t *testing.T) {
	f := New(filepath.Join(t.TempDir(), "config"))
	f.Out = &bytes.Buffer{}

	prompter := &scriptedPrompter{
		t:     t,
		pick:  0,
		lines: []string{"id", "secret", "app", "sub"},
	}
	if err := f.Initialise(prompter, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !f.IsInitialised() {
		t.Error("expected the store to be initialised after Initialise")
	}
	if !f.HasDefaults() {
		t.Error("expected real settings in the defaults section")
	}
}

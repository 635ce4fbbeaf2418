package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

func parseConfig(t *testing.T, environ map[string]string) config {
	t.Helper()
	var cfg config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	return cfg
}

func messages(t *testing.T, buf *bytes.Buffer) []string {
	t.Helper()
	var out []string
	sc := bufio.NewScanner(buf)
	for sc.Scan() {
		var ln struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(sc.Bytes(), &ln); err != nil {
			t.Fatalf("invalid log line %q: %v", sc.Text(), err)
		}
		out = append(out, ln.Message)
	}
	return out
}

func TestConfigDefaults(t *testing.T) {
	cfg := parseConfig(t, map[string]string{})
	if cfg.LogLevel != "info" || cfg.Order != "insertion" || cfg.MaxKeyLength != 255 || cfg.Namespace != "statdump" || cfg.Textfile != "" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestRun(t *testing.T) {
	cases := []struct {
		name  string
		env   map[string]string
		args  []string
		input string
		want  []string
	}{
		{
			name: "empty",
			want: []string{"Statistics:", "No statistics found."},
		},
		{
			name:  "insertion_order",
			args:  []string{"rx", "tx"},
			input: "drop rx\nrx  drop\n",
			want:  []string{"Statistics:", "rx: 2", "tx: 0", "drop: 2"},
		},
		{
			name:  "name_order",
			env:   map[string]string{"STATDUMP_ORDER": "name"},
			input: "zz aa mm aa",
			want:  []string{"Statistics:", "aa: 2", "mm: 1", "zz: 1"},
		},
		{
			name:  "duplicate_argument",
			args:  []string{"rx", "rx"},
			input: "rx",
			want:  []string{"Statistic entry for rx already exists.", "Statistics:", "rx: 1"},
		},
		{
			name:  "truncated_names",
			env:   map[string]string{"STATDUMP_MAX_KEY_LENGTH": "2"},
			input: "abc abd",
			want:  []string{"Statistics:", "ab: 2"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := parseConfig(t, tc.env)
			if err := run(cfg, tc.args, strings.NewReader(tc.input), zerolog.New(&buf)); err != nil {
				t.Fatalf("run: %v", err)
			}
			got := messages(t, &buf)
			if strings.Join(got, "\n") != strings.Join(tc.want, "\n") {
				t.Fatalf("unexpected output:\ngot  %q\nwant %q", got, tc.want)
			}
		})
	}
}

func TestRun_LogLevelFiltersWarnings(t *testing.T) {
	var buf bytes.Buffer
	cfg := parseConfig(t, map[string]string{"STATDUMP_LOG_LEVEL": "error"})
	if err := run(cfg, []string{"rx", "rx"}, strings.NewReader(""), zerolog.New(&buf)); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := messages(t, &buf); len(got) != 0 {
		t.Fatalf("expected all output filtered at error level, got %q", got)
	}
}

func TestRun_Textfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.prom")
	cfg := parseConfig(t, map[string]string{
		"STATDUMP_TEXTFILE":  path,
		"STATDUMP_NAMESPACE": "switch",
	})
	var buf bytes.Buffer
	if err := run(cfg, nil, strings.NewReader("rx rx tx"), zerolog.New(&buf)); err != nil {
		t.Fatalf("run: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read textfile: %v", err)
	}
	text := string(data)
	for _, want := range []string{
		"# TYPE switch_stat_total counter",
		`switch_stat_total{name="rx"} 2`,
		`switch_stat_total{name="tx"} 1`,
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("textfile missing %q:\n%s", want, text)
		}
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
	}{
		{name: "order", env: map[string]string{"STATDUMP_ORDER": "random"}},
		{name: "level", env: map[string]string{"STATDUMP_LOG_LEVEL": "loud"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := parseConfig(t, tc.env)
			if err := run(cfg, nil, strings.NewReader(""), zerolog.Nop()); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

package observability

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestNewMetricsDisabledIsNilSafe(t *testing.T) {
	m := NewMetrics(nil, MetricsConfig{Enabled: false})
	if m != nil {
		t.Fatalf("expected nil metrics when disabled")
	}
	m.ObserveAPI("GET", "/x", "200", time.Millisecond)
	m.ObserveSeedFile("item", "applied", 1, 0, time.Millisecond)
	m.IncSeedFailure("parse")
	m.APIInflightInc()
	m.APIInflightDec()
	if got := m.SeedFiles("item", "applied"); got != 0 {
		t.Fatalf("nil metrics reported %v", got)
	}
	var buf bytes.Buffer
	if err := m.WritePrometheus(&buf); err != nil || buf.Len() != 0 {
		t.Fatalf("nil metrics wrote %q (err %v)", buf.String(), err)
	}
}

func TestWritePrometheus(t *testing.T) {
	m := NewMetrics(nil, MetricsConfig{Enabled: true})
	m.ObserveSeedFile("item", "applied", 3, 1, 20*time.Millisecond)
	m.ObserveSeedFile("item", "skipped", 0, 0, time.Millisecond)
	m.IncSeedFailure("")
	m.ObserveAPI("GET", "/api/item-types", "200", 30*time.Millisecond)

	var buf bytes.Buffer
	if err := m.WritePrometheus(&buf); err != nil {
		t.Fatalf("WritePrometheus: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"# TYPE pa_seed_files_total counter",
		`pa_seed_files_total{kind="item",outcome="applied"} 1.000000`,
		`pa_seed_files_total{kind="item",outcome="skipped"} 1.000000`,
		`pa_seed_records_total{kind="item",result="created"} 3.000000`,
		`pa_seed_records_total{kind="item",result="existing"} 1.000000`,
		`pa_seed_failures_total{code="unknown"} 1.000000`,
		`pa_seed_file_duration_seconds_bucket{kind="item",outcome="applied",le="0.05"} 1`,
		`pa_seed_file_duration_seconds_bucket{kind="item",outcome="applied",le="0.01"} 0`,
		`pa_api_request_duration_seconds_count{method="GET",route="/api/item-types",status="200"} 1`,
		"pa_api_inflight_requests 0.000000",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, `result="existing"} 0`) {
		t.Fatalf("zero record counts should not be emitted")
	}
}

func TestLabelEscaping(t *testing.T) {
	got := labelString([]string{"route", "status"}, []string{`/a"b\c`})
	want := `{route="/a\"b\\c",status="unknown"}`
	if got != want {
		t.Fatalf("labelString = %s, want %s", got, want)
	}
	if le := withLe("", "+Inf"); le != `{le="+Inf"}` {
		t.Fatalf("withLe = %s", le)
	}
}

package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestMetricsExposition(t *testing.T) {
	m := New()
	m.RecordCommand("advance_time", "ok")
	m.RecordCommand("advance_time", "error")
	m.RecordCompletion("order")
	m.ObserveAdvance(250 * time.Millisecond)
	m.RecordChronicleDrop()

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, req)

	body := rec.Body.String()
	for _, want := range []string{
		`bastion_commands_total{command="advance_time",outcome="ok"} 1`,
		`bastion_commands_total{command="advance_time",outcome="error"} 1`,
		`bastion_task_completions_total{kind="order"} 1`,
		"bastion_advance_time_duration_seconds",
		"bastion_chronicle_forward_drops_total 1",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected exposition to contain %q, got:\n%s", want, body)
		}
	}
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics
	m.RecordCommand("issue_order", "ok")
	m.RecordCompletion("construction")
	m.ObserveAdvance(time.Second)
	m.RecordChronicleDrop()
}

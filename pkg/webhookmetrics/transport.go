package webhookmetrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/mgiudice/ODC-TurnosService/pkg/metrics"
)

// Transport is an http.RoundTripper that records outbound webhook call
// metrics. The target label is taken per request via the Target helper,
// falling back to the request host.
type Transport struct {
	next http.RoundTripper
	m    *metrics.Metrics
}

type targetKey struct{}

// Target annotates req with a stable name for metric labels
// (e.g. "patient_lookup") instead of the raw URL.
func Target(req *http.Request, name string) *http.Request {
	return req.WithContext(contextWithTarget(req.Context(), name))
}

// New wraps next with metric recording. A nil next means http.DefaultTransport.
func New(next http.RoundTripper, m *metrics.Metrics) *Transport {
	if next == nil {
		next = http.DefaultTransport
	}
	return &Transport{next: next, m: m}
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	target := targetFromContext(req.Context())
	if target == "" {
		target = req.URL.Host
	}

	start := time.Now()
	resp, err := t.next.RoundTrip(req)
	t.m.WebhookRequestDuration.WithLabelValues(target).Observe(time.Since(start).Seconds())

	status := "error"
	if err == nil {
		status = strconv.Itoa(resp.StatusCode)
	}
	t.m.WebhookRequestsTotal.WithLabelValues(target, status).Inc()

	return resp, err
}

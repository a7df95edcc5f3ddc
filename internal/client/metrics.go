package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// MetricsSnapshot is the JSON contract with the desktop activity
// tracker's daily rollup endpoint. All time fields are minutes.
type MetricsSnapshot struct {
	Keystrokes    int `json:"keystrokes"`
	MouseClicks   int `json:"mouseClicks"`
	ActiveMinutes int `json:"activeMinutes"`
	IdleMinutes   int `json:"idleMinutes"`
	ScreenMinutes int `json:"screenMinutes"`
}

// ActivityTrackerClient pulls a staff member's daily activity snapshot
// when the tracker has not pushed one yet. Returns (nil, nil) when the
// tracker has no data for that day.
type ActivityTrackerClient interface {
	DailyMetrics(ctx context.Context, staffUserID string, date time.Time) (*MetricsSnapshot, error)
}

// httpActivityTrackerClient is a thin wrapper over net/http: build the
// request, unmarshal the envelope, nothing more.
type httpActivityTrackerClient struct {
	baseURL string       // e.g. "http://activity-tracker:8090/api/internal"
	http    *http.Client // injected so timeouts/mocks can be swapped in
}

// NewActivityTrackerHTTPClient is the constructor used at boot time.
func NewActivityTrackerHTTPClient(baseURL string) ActivityTrackerClient {
	return &httpActivityTrackerClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *httpActivityTrackerClient) DailyMetrics(
	ctx context.Context,
	staffUserID string,
	date time.Time,
) (*MetricsSnapshot, error) {

	url := fmt.Sprintf("%s/metrics/%s?date=%s", c.baseURL, staffUserID, date.Format("2006-01-02"))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build tracker request: %w", err)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("activity-tracker call failed: %w", err)
	}
	defer resp.Body.Close()

	// No rollup for that day is a normal answer, not an error.
	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("activity-tracker returned %s - body: %s", resp.Status, raw)
	}

	// The tracker wraps payloads in a {message, data, timestamp}
	// envelope; only the inner object matters here.
	var env struct {
		Data MetricsSnapshot `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode metrics snapshot: %w", err)
	}
	return &env.Data, nil
}

package scrape

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/advocates/roster/internal/roster"
)

const rollPage = `<html><body>
<table>
  <tr><th>#</th><th>Name</th><th>Firm</th><th>Address</th><th>Email</th><th>Phone</th>
      <th>Plot</th><th>Enrolled</th><th>Renewed</th><th>Certificate</th><th>Status</th></tr>
  <tr><td> 1 </td><td>Jane   Doe</td><td>Doe &amp; Co Advocates</td><td>Kampala Road</td>
      <td>jane@doe.example</td><td>0772 000111</td><td>12</td><td>2010-01-04</td>
      <td>2025-02-01</td><td>CERT/1001</td><td>Active</td></tr>
  <tr><td>2</td><td>John Okello</td><td>Okello Chambers</td><td></td>
      <td></td><td></td><td></td><td>2015-06-10</td>
      <td>2019-02-01</td><td>CERT/2002</td><td>Inactive</td></tr>
  <tr><td colspan="11">Page 1</td></tr>
</table>
</body></html>`

func TestParse_ExtractsRowsAndSkipsShortOnes(t *testing.T) {
	res, err := Parse(strings.NewReader(rollPage))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(res.Records) != 2 {
		t.Fatalf("records = %d, want 2", len(res.Records))
	}
	if res.Skipped != 1 {
		t.Fatalf("skipped = %d, want 1", res.Skipped)
	}

	first := res.Records[0]
	want := roster.Record{
		ID:             "1",
		Name:           "Jane Doe",
		FirmName:       "Doe & Co Advocates",
		Address:        "Kampala Road",
		Email:          "jane@doe.example",
		Phone:          "0772 000111",
		PlotNo:         "12",
		EnrollmentDate: "2010-01-04",
		RenewalDate:    "2025-02-01",
		CertificateNo:  "CERT/1001",
		Status:         roster.StatusActive,
	}
	if first != want {
		t.Fatalf("first record = %#v, want %#v", first, want)
	}
	if res.Records[1].Email != "" || res.Records[1].Status != roster.StatusInactive {
		t.Fatalf("second record = %#v", res.Records[1])
	}
}

func TestParse_NoTableYieldsEmptySlice(t *testing.T) {
	res, err := Parse(strings.NewReader("<html><body><p>maintenance</p></body></html>"))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if res.Records == nil || len(res.Records) != 0 {
		t.Fatalf("records = %#v, want empty non-nil slice", res.Records)
	}
}

func TestParseSourceURL(t *testing.T) {
	u, err := parseSourceURL("")
	if err != nil {
		t.Fatalf("parseSourceURL returned error: %v", err)
	}
	if u.String() != DefaultSourceURL {
		t.Fatalf("url = %q, want %q", u.String(), DefaultSourceURL)
	}

	u, err = parseSourceURL("example.com/roll.php#top")
	if err != nil {
		t.Fatalf("parseSourceURL returned error: %v", err)
	}
	if u.String() != "https://example.com/roll.php" {
		t.Fatalf("url = %q, want https://example.com/roll.php", u.String())
	}
}

func TestClient_FetchRollSendsUserAgent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		userAgent string
		want      string
	}{
		{name: "default", userAgent: "", want: defaultUserAgent},
		{name: "configured", userAgent: "roll-mirror/2.0", want: "roll-mirror/2.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotUserAgent string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserAgent = r.Header.Get("User-Agent")
				w.Header().Set("Content-Type", "text/html")
				_, _ = w.Write([]byte(rollPage))
			}))
			t.Cleanup(server.Close)

			c, err := NewClient(server.URL+"/print_all_advocates.php", tt.userAgent)
			if err != nil {
				t.Fatalf("NewClient returned error: %v", err)
			}

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			t.Cleanup(cancel)

			res, err := c.FetchRoll(ctx)
			if err != nil {
				t.Fatalf("FetchRoll returned error: %v", err)
			}
			if len(res.Records) != 2 {
				t.Fatalf("records = %d, want 2", len(res.Records))
			}
			if gotUserAgent != tt.want {
				t.Fatalf("User-Agent = %q, want %q", gotUserAgent, tt.want)
			}
		})
	}
}

func TestClient_ErrorStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, "")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = c.FetchRoll(context.Background())
	if err == nil || !strings.Contains(err.Error(), "status 503") {
		t.Fatalf("FetchRoll error = %v, want status 503", err)
	}
}

func TestClient_NilReceiver(t *testing.T) {
	var c *Client
	if _, err := c.FetchRoll(context.Background()); err == nil {
		t.Fatal("expected error for nil client")
	}
}

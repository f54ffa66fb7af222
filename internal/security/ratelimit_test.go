package security

import (
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimiterAllowsWithinBudget(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !rl.Allow("1.2.3.4") {
			t.Fatalf("request %d denied within budget", i+1)
		}
	}

	if rl.Allow("1.2.3.4") {
		t.Error("request allowed over budget")
	}

	// Other clients have their own budget
	if !rl.Allow("5.6.7.8") {
		t.Error("separate client denied")
	}
}

func TestClientAddr(t *testing.T) {
	tests := []struct {
		name      string
		forwarded string
		remote    string
		want      string
	}{
		{name: "no proxy", forwarded: "", remote: "10.0.0.1:1234", want: "10.0.0.1:1234"},
		{name: "single hop", forwarded: "203.0.113.9", remote: "10.0.0.1:1234", want: "203.0.113.9"},
		{name: "multiple hops", forwarded: "203.0.113.9, 10.0.0.2", remote: "10.0.0.1:1234", want: "203.0.113.9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tt.remote
			if tt.forwarded != "" {
				r.Header.Set("X-Forwarded-For", tt.forwarded)
			}

			if got := ClientAddr(r); got != tt.want {
				t.Errorf("ClientAddr() = %v, want %v", got, tt.want)
			}
		})
	}
}

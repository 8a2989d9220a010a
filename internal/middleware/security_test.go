package middleware

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestRateLimiter_ConcurrentFirstRequests(t *testing.T) {
	rl := newRateLimiter(1) // burst 1

	var (
		wg      sync.WaitGroup
		allowed atomic.Int32
	)
	start := make(chan struct{})
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if rl.Allow("198.51.100.1") {
				allowed.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	if got := allowed.Load(); got != 1 {
		t.Fatalf("allowed %d requests, want exactly the burst of 1", got)
	}
}

func TestIPAllowed(t *testing.T) {
	allowed := []string{"10.0.0.0/8", "192.0.2.7", "bad/cidr"}

	tests := []struct {
		ip   string
		want bool
	}{
		{"10.200.1.1", true},
		{"192.0.2.7", true},
		{"192.0.2.8", false},
		{"not-an-ip", false},
	}
	for _, tt := range tests {
		if got := ipAllowed(tt.ip, allowed); got != tt.want {
			t.Errorf("ipAllowed(%q) = %v, want %v", tt.ip, got, tt.want)
		}
	}
	if !ipAllowed("203.0.113.1", nil) {
		t.Error("empty allow-list must allow everyone")
	}
}

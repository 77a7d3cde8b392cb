package quickex

import (
	"context"
	"testing"
	"time"
)

func TestUnixTimeUnmarshalJSON(t *testing.T) {
	cases := map[string]struct {
		raw      string
		wantErr  bool
		wantTime UnixTime
	}{
		"number representation": {
			raw:      "1234567",
			wantTime: 1234567,
		},
		"zero time": {
			raw:      "0",
			wantTime: 0,
		},
		"negative number": {
			raw:     "-1",
			wantErr: true,
		},
		"string representation": {
			raw:      `"2019-04-01T00:00:00Z"`,
			wantTime: 1554076800,
		},
		"invalid string": {
			raw:     `"not a time"`,
			wantErr: true,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var got UnixTime
			err := got.UnmarshalJSON([]byte(tc.raw))
			if (err != nil) != tc.wantErr {
				t.Fatalf("unexpected error state: %+v", err)
			}
			if err == nil && got != tc.wantTime {
				t.Fatalf("want %d, got %d", tc.wantTime, got)
			}
		})
	}
}

func TestUnixTimeAdd(t *testing.T) {
	now := AsUnixTime(time.Now())
	if got := now.Add(time.Minute); got != now+60 {
		t.Fatalf("want %d, got %d", now+60, got)
	}
	// Sub-second durations are truncated.
	if got := now.Add(999 * time.Millisecond); got != now {
		t.Fatalf("want %d, got %d", now, got)
	}
}

func TestIsExpired(t *testing.T) {
	now := time.Now()
	ctx := WithBlockTime(context.Background(), now)

	if IsExpired(ctx, AsUnixTime(now.Add(time.Hour))) {
		t.Fatal("future time must not be expired")
	}
	if !IsExpired(ctx, AsUnixTime(now.Add(-time.Hour))) {
		t.Fatal("past time must be expired")
	}
	// Expiration is inclusive.
	if !IsExpired(ctx, AsUnixTime(now)) {
		t.Fatal("present time must be expired")
	}
}

func TestIsExpiredPanicsWithoutBlockTime(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("panic expected")
		}
	}()
	IsExpired(context.Background(), 123)
}

package time_test

import (
	"encoding/json"
	"testing"
	"time"

	timex "github.com/ferdiebergado/bookstore/internal/pkg/time"
)

func TestDuration_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{"Seconds", `"5s"`, 5 * time.Second, false},
		{"Compound", `"1m30s"`, 90 * time.Second, false},
		{"Not a string", `5`, 0, true},
		{"Invalid unit", `"5 parsecs"`, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var d timex.Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if (err != nil) != tt.wantErr {
				t.Fatalf("json.Unmarshal(%s) = %v, wantErr: %v", tt.input, err, tt.wantErr)
			}

			if d.Duration != tt.want {
				t.Errorf("d.Duration = %v, want: %v", d.Duration, tt.want)
			}
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	t.Parallel()

	d := timex.Duration{Duration: 2 * time.Minute}
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}

	got, want := string(b), `"2m0s"`
	if got != want {
		t.Errorf("json.Marshal(%v) = %s, want: %s", d, got, want)
	}
}

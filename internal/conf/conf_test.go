package conf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDuration(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Duration
	}{
		{name: "empty", in: "", want: time.Second},
		{name: "valid", in: "10m", want: 10 * time.Minute},
		{name: "malformed", in: "ten minutes", want: time.Second},
		{name: "negative", in: "-5s", want: time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Duration(tt.in, time.Second))
		})
	}
}

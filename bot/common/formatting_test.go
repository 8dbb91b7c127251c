package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-42, "-42"},
		{-1234567, "-1,234,567"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatAmount(tt.amount))
	}
}

func TestFormatSigned(t *testing.T) {
	assert.Equal(t, "+1,500", FormatSigned(1500))
	assert.Equal(t, "+0", FormatSigned(0))
	assert.Equal(t, "-300", FormatSigned(-300))
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0s"},
		{-5 * time.Second, "0s"},
		{500 * time.Millisecond, "1s"},
		{9 * time.Second, "9s"},
		{90 * time.Second, "1m 30s"},
		{23*time.Hour + 12*time.Minute, "23h 12m"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.d))
	}
}

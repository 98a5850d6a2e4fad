package ical

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{in: "plain", want: "plain"},
		{in: "a, b; c", want: `a\, b\; c`},
		{in: `back\slash`, want: `back\\slash`},
		{in: "line1\nline2\r\nline3", want: `line1\nline2\nline3`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Escape(tt.in))
	}
}

func TestWrite(t *testing.T) {
	start := time.Date(2025, 12, 24, 18, 0, 0, 0, time.UTC)
	stamp := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	err := Write(&buf, Calendar{
		ProductID: "-//Church//Calendar//EN",
		Name:      "Church",
		Events: []Event{
			{UID: "event-1@church", Summary: "Christmas Eve, Service", Location: "Main Sanctuary", Start: start},
		},
	}, stamp)
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "BEGIN:VCALENDAR\r\nVERSION:2.0\r\n"))
	assert.True(t, strings.HasSuffix(out, "END:VCALENDAR\r\n"))
	assert.Contains(t, out, "UID:event-1@church\r\n")
	assert.Contains(t, out, "DTSTAMP:20250601T000000Z\r\n")
	assert.Contains(t, out, "DTSTART:20251224T180000Z\r\n")
	assert.Contains(t, out, "DTEND:20251224T190000Z\r\n")
	assert.Contains(t, out, `SUMMARY:Christmas Eve\, Service`+"\r\n")
	assert.NotContains(t, out, "DESCRIPTION:")
	assert.Equal(t, 0, strings.Count(strings.ReplaceAll(out, "\r\n", ""), "\n"), "only CRLF line endings")
}

func TestFold(t *testing.T) {
	long := "DESCRIPTION:" + strings.Repeat("é", 60)
	parts := fold(long)
	require.Greater(t, len(parts), 1)

	var joined strings.Builder
	for i, p := range parts {
		assert.LessOrEqual(t, len(p), maxLineOctets+1)
		if i > 0 {
			require.True(t, strings.HasPrefix(p, " "))
			p = p[1:]
		}
		joined.WriteString(p)
	}
	assert.Equal(t, long, joined.String())
}

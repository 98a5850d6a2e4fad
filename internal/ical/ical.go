// Package ical writes iCalendar (RFC 5545) feeds.
package ical

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"
)

const (
	dateTimeFormat = "20060102T150405Z"
	maxLineOctets  = 75
)

type Calendar struct {
	ProductID string
	Name      string
	Events    []Event
}

type Event struct {
	UID         string
	Summary     string
	Description string
	Location    string
	URL         string
	Start       time.Time
	// End defaults to Start plus one hour.
	End time.Time
}

// Write renders cal as a PUBLISH calendar with CRLF line endings.
func Write(w io.Writer, cal Calendar, stamp time.Time) error {
	bw := bufio.NewWriter(w)
	lw := &lineWriter{w: bw}

	lw.line("BEGIN:VCALENDAR")
	lw.line("VERSION:2.0")
	lw.prop("PRODID", cal.ProductID)
	lw.line("CALSCALE:GREGORIAN")
	lw.line("METHOD:PUBLISH")
	if cal.Name != "" {
		lw.prop("X-WR-CALNAME", cal.Name)
	}
	lw.line("X-PUBLISHED-TTL:PT1H")

	for _, e := range cal.Events {
		end := e.End
		if end.IsZero() || !end.After(e.Start) {
			end = e.Start.Add(time.Hour)
		}

		lw.line("BEGIN:VEVENT")
		lw.prop("UID", e.UID)
		lw.line("DTSTAMP:" + stamp.UTC().Format(dateTimeFormat))
		lw.line("DTSTART:" + e.Start.UTC().Format(dateTimeFormat))
		lw.line("DTEND:" + end.UTC().Format(dateTimeFormat))
		lw.prop("SUMMARY", e.Summary)
		if e.Description != "" {
			lw.prop("DESCRIPTION", e.Description)
		}
		if e.Location != "" {
			lw.prop("LOCATION", e.Location)
		}
		if e.URL != "" {
			lw.line("URL:" + e.URL)
		}
		lw.line("END:VEVENT")
	}

	lw.line("END:VCALENDAR")

	if lw.err != nil {
		return fmt.Errorf("write calendar: %w", lw.err)
	}

	return bw.Flush()
}

// Escape escapes a TEXT property value.
func Escape(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		";", `\;`,
		",", `\,`,
		"\r\n", `\n`,
		"\n", `\n`,
		"\r", `\n`,
	)
	return r.Replace(s)
}

type lineWriter struct {
	w   io.Writer
	err error
}

func (l *lineWriter) prop(name, value string) {
	l.line(name + ":" + Escape(value))
}

// line writes s folded at 75 octets without splitting UTF-8 sequences.
func (l *lineWriter) line(s string) {
	if l.err != nil {
		return
	}

	for _, part := range fold(s) {
		if _, err := io.WriteString(l.w, part+"\r\n"); err != nil {
			l.err = err
			return
		}
	}
}

func fold(s string) []string {
	if len(s) <= maxLineOctets {
		return []string{s}
	}

	var parts []string
	for len(s) > maxLineOctets {
		cut := maxLineOctets
		for cut > 0 && !isRuneStart(s[cut]) {
			cut--
		}
		parts = append(parts, s[:cut])
		// continuation lines start with a single space
		s = " " + s[cut:]
	}

	return append(parts, s)
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}

// Package timezone pins every timestamp the service produces to the zone
// configured by APP_TIMEZONE (an IANA name such as "Asia/Kolkata" or "UTC").
//
//	now := timezone.Now()
//	at, err := timezone.ParseTimestamp("2025-06-01T08:30:00+05:30")
//	out := timezone.Format(at, time.RFC3339)
//
// The location is loaded once at import time and falls back to UTC.
package timezone

// Package timezone converts between submitted wall-clock times, absolute UTC instants and display zones.
//
// Usage Examples:
//
//  1. Normalizing input for storage:
//     start, err := timezone.ToUTC("2025-06-16T06:00:00+05:30") // 2025-06-16T00:30:00Z
//     start, err := timezone.ToUTC("2025-06-16T06:00:00")       // no offset: read in the input zone (IST by default)
//
//  2. Rendering a stored instant:
//     loc, err := timezone.Resolve(r.URL.Query().Get("timezone"), timezone.DisplayLocation())
//     s := timezone.FromUTC(start, loc)                          // "2025-06-16T06:00:00+05:30" for Asia/Kolkata
//
//  3. Application clock:
//     now := timezone.Now()
//
// Zone names are standard IANA names ("UTC", "Asia/Kolkata", "America/New_York"); "IST" is accepted
// as an alias for Asia/Kolkata. The application, input and display zones are configured through
// APP_TIMEZONE, APP_SCHEDULE_INPUT_TIMEZONE and APP_SCHEDULE_DISPLAY_TIMEZONE and are loaded when the
// package is imported.
package timezone

// Package calendar normalizes and validates the partial dates used in
// timeline documents.
//
// A partial date has the shape [-]Y[-MM[-DD[Thh[:mm[:ss]]]]]. Missing
// trailing components default to the first month, first day and midnight.
// Years are astronomical: year 0 exists and negative years are BCE. Years
// are never range-checked, so -10000 and 250000 are both valid.
//
//	padded, _ := calendar.Pad("-500")      // "-0500-01-01T00:00:00Z"
//	at, _ := calendar.ToUTC("2024-02")     // 2024-02-01T00:00:00Z
//	err := calendar.Validate("2024-02-30") // CodeCalendarInfeasible
package calendar

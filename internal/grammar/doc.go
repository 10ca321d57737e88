// Package grammar scans the time-item lines of a timeline document.
//
// A time item is a marker character followed by named fields in a fixed
// order:
//
//	- [start ~ end] #color {Group name} content | description
//
// Only the marker and the date brackets are mandatory. The scanner reads
// the fields one after another and reports a single failure when the line
// does not fit; it does not validate the dates themselves.
package grammar

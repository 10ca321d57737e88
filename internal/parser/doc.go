// Package parser turns chronos timeline markup into a model.ParseResult.
//
// A document is read line by line. The first non-space character decides
// what a line is:
//
//	# comment
//	- [2024-01-05~2024-02-01] #red {Team} Sprint | description   event
//	@ [2020~2024] #blue Era                                       period
//	* [2024-03-15] Release                                        point
//	= [2024-06] Midsummer                                         marker
//	> orderby start|-content                                      flag
//	~ {arrowType: "->", block1: "Sprint", block2: "Release"}      arrow
//
// Every problem in a document is collected. Parse fails once at the end
// with a *ParseError listing all of them, or returns the full result.
// Arrows may only refer to items declared on earlier lines.
package parser

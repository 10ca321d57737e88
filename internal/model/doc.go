// Package model defines the document model produced by the parser: items,
// markers, groups, flags and the connector arrows between items.
//
// Items carry a kind-specific Detail. The JSON and YAML encodings follow
// the data-item shape understood by vis-timeline.
package model

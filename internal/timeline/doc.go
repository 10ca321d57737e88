// Package timeline prepares parsed documents for display. It caches parse
// results, orders items, places ungrouped items in a default lane, builds
// tooltip text and works out the initial window.
package timeline

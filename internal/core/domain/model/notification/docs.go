// Package notification models the dashboard's notification panel: a local,
// ordered list of alerts that a viewer can accept, view, dismiss, mark read
// or clear. Nothing here is synchronized with an external source; the list
// returns to its seed when the dashboard is reset.
package notification

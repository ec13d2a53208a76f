// Package order models the marketplace order lifecycle as the dashboard sees it.
//
// The package includes:
//   - Status: the 13-value lifecycle enumeration and its transition graph
//   - Badge: the total mapping from status to display label and severity tier
//   - Actions: the (status, role) lookup table of buttons an order card offers
//   - Order: the display entity, mutated locally when a viewer fires an action
//
// Key rules:
//   - exactly one status is active at a time
//   - a viewer sees zero or one action group; mutually exclusive actions never
//     appear together
//   - rejecting an order carries a confirmation prompt
//   - every status has exactly one badge; an unmapped status is a defect
package order

// Package services provides the presenters that turn dashboard aggregates into
// what a viewer sees. They hold no state and perform no I/O.
//
// The package includes:
//   - OrderCardPresenter: the rendering contract of one order for a viewer role
//   - NotificationPanelPresenter: the notification panel with its unread count
package services

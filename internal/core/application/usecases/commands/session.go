// Package commands contains the use cases that change a viewer's dashboard.
// Every command is built through its constructor, validated by its handler and
// applied inside a single DashboardStore.Update, so a failing command leaves
// the dashboard untouched.
package commands

import "marketplace/internal/pkg/errs"

func validateSessionID(sessionID string) error {
	if sessionID == "" {
		return errs.NewValueIsRequiredError("session id")
	}
	return nil
}

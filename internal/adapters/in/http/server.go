// Package http serves the dashboard as server-rendered HTML pages. Every form
// post ends in a redirect back to the dashboard, so a browser refresh never
// repeats an action.
package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server routes HTTP requests to the dashboard use cases.
type Server struct {
	// Command handlers
	applyOrderActionHandler   commands.ApplyOrderActionCommandHandler
	notificationActionHandler commands.NotificationActionCommandHandler
	panelHandler              commands.PanelCommandHandler
	selectRoleHandler         commands.SelectRoleCommandHandler
	resetHandler              commands.ResetDashboardCommandHandler

	// Query handlers
	getDashboardHandler          queries.GetDashboardQueryHandler
	getActionConfirmationHandler queries.GetActionConfirmationQueryHandler

	logger *slog.Logger
}

// NewServer creates the server; logger is tagged with component=http.
func NewServer(
	applyOrderActionHandler commands.ApplyOrderActionCommandHandler,
	notificationActionHandler commands.NotificationActionCommandHandler,
	panelHandler commands.PanelCommandHandler,
	selectRoleHandler commands.SelectRoleCommandHandler,
	resetHandler commands.ResetDashboardCommandHandler,
	getDashboardHandler queries.GetDashboardQueryHandler,
	getActionConfirmationHandler queries.GetActionConfirmationQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		applyOrderActionHandler:      applyOrderActionHandler,
		notificationActionHandler:    notificationActionHandler,
		panelHandler:                 panelHandler,
		selectRoleHandler:            selectRoleHandler,
		resetHandler:                 resetHandler,
		getDashboardHandler:          getDashboardHandler,
		getActionConfirmationHandler: getActionConfirmationHandler,
		logger:                       logger.With("component", "http"),
	}
}

// Register mounts the dashboard routes on e.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/", s.GetDashboard)
	e.GET("/health", s.Health)
	e.POST("/role", s.SelectRole)
	e.POST("/orders/:id/actions/:action", s.ApplyOrderAction)
	e.GET("/orders/:id/actions/:action/confirm", s.ConfirmOrderAction)
	e.POST("/notifications/read-all", s.panelOperation(commands.PanelOperationMarkAllRead))
	e.POST("/notifications/clear", s.panelOperation(commands.PanelOperationClearAll))
	e.POST("/notifications/toggle", s.panelOperation(commands.PanelOperationToggle))
	e.POST("/notifications/:id/:action", s.NotificationAction)
	e.POST("/reset", s.Reset)
}

// GetDashboard handles GET / - renders the dashboard on the session's current tab.
func (s *Server) GetDashboard(c echo.Context) error {
	query, err := queries.NewGetDashboardQuery(sessionID(c))
	if err != nil {
		return s.fail(c, err)
	}
	page, err := s.getDashboardHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.Render(http.StatusOK, "dashboard.html", page)
}

// SelectRole handles POST /role - switches the dashboard tab.
func (s *Server) SelectRole(c echo.Context) error {
	var req selectRoleRequest
	if err := s.bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	role, err := kernel.ParseRole(req.Role)
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewSelectRoleCommand(sessionID(c), role)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.selectRoleHandler.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return s.backToDashboard(c)
}

// ApplyOrderAction handles POST /orders/:id/actions/:action - fires an order card button.
func (s *Server) ApplyOrderAction(c echo.Context) error {
	var req orderActionRequest
	if err := s.bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	role, action, err := parseRoleAndAction(req.Role, req.Action)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewApplyOrderActionCommand(sessionID(c), role, req.OrderID, action, req.Confirmed)
	if err != nil {
		return s.fail(c, err)
	}

	err = s.applyOrderActionHandler.Handle(c.Request().Context(), cmd)
	if errors.Is(err, commands.ErrConfirmationRequired) {
		return c.Redirect(http.StatusSeeOther, confirmURL(req.OrderID, action, role))
	}
	if err != nil {
		return s.fail(c, err)
	}

	return s.backToDashboard(c)
}

// ConfirmOrderAction handles GET /orders/:id/actions/:action/confirm - the
// dialog shown before an irreversible action.
func (s *Server) ConfirmOrderAction(c echo.Context) error {
	var req confirmActionRequest
	if err := s.bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	role, action, err := parseRoleAndAction(req.Role, req.Action)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetActionConfirmationQuery(sessionID(c), role, req.OrderID, action)
	if err != nil {
		return s.fail(c, err)
	}
	dialog, err := s.getActionConfirmationHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	if !dialog.RequiresConfirmation() {
		return s.backToDashboard(c)
	}

	return c.Render(http.StatusOK, "confirm.html", dialog)
}

// NotificationAction handles POST /notifications/:id/:action - accept, dismiss or view.
func (s *Server) NotificationAction(c echo.Context) error {
	var req notificationActionRequest
	if err := s.bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	action, err := notification.ParseAction(req.Action)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewNotificationActionCommand(sessionID(c), req.NotificationID, action)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.notificationActionHandler.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return s.backToDashboard(c)
}

// Reset handles POST /reset - restores the seed data for this browser.
func (s *Server) Reset(c echo.Context) error {
	cmd, err := commands.NewResetDashboardCommand(sessionID(c))
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.resetHandler.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return s.backToDashboard(c)
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}

func (s *Server) panelOperation(op commands.PanelOperation) echo.HandlerFunc {
	return func(c echo.Context) error {
		cmd, err := commands.NewPanelCommand(sessionID(c), op)
		if err != nil {
			return s.fail(c, err)
		}
		if err = s.panelHandler.Handle(c.Request().Context(), cmd); err != nil {
			return s.fail(c, err)
		}
		return s.backToDashboard(c)
	}
}

func (s *Server) bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request", err)
	}
	return c.Validate(req)
}

func (s *Server) backToDashboard(c echo.Context) error {
	return c.Redirect(http.StatusSeeOther, "/")
}

type errorPage struct {
	Status  int
	Title   string
	Message string
}

// fail renders the error page with a status derived from the error kind.
func (s *Server) fail(c echo.Context, err error) error {
	status, title := http.StatusInternalServerError, "Something went wrong"
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status, title = http.StatusNotFound, "Not found"
	case errors.Is(err, order.ErrActionNotAvailable):
		status, title = http.StatusConflict, "Action not available"
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status, title = http.StatusBadRequest, "Invalid request"
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "Request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err,
		)
		message = "The dashboard could not handle this request."
	}

	return c.Render(status, "error.html", errorPage{Status: status, Title: title, Message: message})
}

func parseRoleAndAction(roleCode, actionCode string) (kernel.Role, order.ActionKind, error) {
	role, roleErr := kernel.ParseRole(roleCode)
	action, actionErr := order.ParseActionKind(actionCode)
	if err := errors.Join(roleErr, actionErr); err != nil {
		return kernel.RoleUnknown, order.ActionUnknown, err
	}
	return role, action, nil
}

func confirmURL(orderID string, action order.ActionKind, role kernel.Role) string {
	return fmt.Sprintf("/orders/%s/actions/%s/confirm?role=%s",
		url.PathEscape(orderID), action, url.QueryEscape(role.String()))
}

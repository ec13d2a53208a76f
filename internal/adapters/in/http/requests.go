package http

// selectRoleRequest is POST /role.
type selectRoleRequest struct {
	Role string `form:"role" validate:"required,oneof=buyer seller delivery"`
}

type orderActionRequest struct {
	OrderID   string `param:"id"     validate:"required,max=64"`
	Action    string `param:"action" validate:"required"`
	Role      string `form:"role"    validate:"required,oneof=buyer seller delivery"`
	Confirmed bool   `form:"confirmed"`
}

type confirmActionRequest struct {
	OrderID string `param:"id"     validate:"required,max=64"`
	Action  string `param:"action" validate:"required"`
	Role    string `query:"role"   validate:"required,oneof=buyer seller delivery"`
}

type notificationActionRequest struct {
	NotificationID string `param:"id"     validate:"required,max=64"`
	Action         string `param:"action" validate:"required,oneof=accept dismiss view"`
}

package kernel

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Role is the perspective under which an order is rendered. The same order shows
// different fields and actions to its buyer, its seller and its delivery person.
type Role int

const (
	// RoleUnknown catches uninitialized Role values.
	RoleUnknown Role = iota
	RoleBuyer
	RoleSeller
	RoleDelivery
)

func getRoleCodes() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "unknown",
		RoleBuyer:    "buyer",
		RoleSeller:   "seller",
		RoleDelivery: "delivery",
	}
}

// Roles returns the valid viewer roles in tab order.
func Roles() []Role {
	return []Role{RoleBuyer, RoleSeller, RoleDelivery}
}

// ParseRole converts a role code ("buyer", "seller", "delivery") into a Role.
func ParseRole(code string) (Role, error) {
	for _, r := range Roles() {
		if getRoleCodes()[r] == code {
			return r, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role is invalid",
		fmt.Errorf("%q is not a viewer role", code),
	)
}

// Validate rejects RoleUnknown and out-of-range values.
func (r Role) Validate() error {
	if r < RoleBuyer || r > RoleDelivery {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the role code; invalid values render as "unknown".
func (r Role) String() string {
	if code, ok := getRoleCodes()[r]; ok {
		return code
	}
	return getRoleCodes()[RoleUnknown]
}

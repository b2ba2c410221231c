package domain

import (
	"errors"
	"time"
)

var (
	// ErrInvalidRole is returned for roles outside the known set.
	ErrInvalidRole = errors.New("role must be admin, manager or user")
	// ErrUserNotFound is returned when a profile does not exist.
	ErrUserNotFound = errors.New("user not found")
)

// Role is an access level granted to a back-office user.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleUser    Role = "user"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleManager, RoleUser:
		return true
	}
	return false
}

// User is a back-office profile together with its granted roles.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Roles     []Role    `json:"roles"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// Permission is a named capability of the back office.
type Permission string

const (
	PermViewDashboard     Permission = "View Dashboard"
	PermManageProducts    Permission = "Manage Products"
	PermManageCategories  Permission = "Manage Categories"
	PermManageOrders      Permission = "Manage Orders"
	PermManageCustomers   Permission = "Manage Customers"
	PermManageUsers       Permission = "Manage Users"
	PermManageSettings    Permission = "Manage Settings"
	PermSendNotifications Permission = "Send Notifications"
)

// permissionMatrix maps each permission to the roles holding it. Admin
// holds everything; manager holds the day-to-day operations except
// customers; the plain user role holds nothing until granted more.
var permissionMatrix = map[Permission][]Role{
	PermViewDashboard:     {RoleAdmin, RoleManager},
	PermManageProducts:    {RoleAdmin, RoleManager},
	PermManageCategories:  {RoleAdmin, RoleManager},
	PermManageOrders:      {RoleAdmin, RoleManager},
	PermManageCustomers:   {RoleAdmin},
	PermManageUsers:       {RoleAdmin},
	PermManageSettings:    {RoleAdmin},
	PermSendNotifications: {RoleAdmin, RoleManager},
}

// Permissions returns the known permission names in display order.
func Permissions() []Permission {
	return []Permission{
		PermViewDashboard,
		PermManageProducts,
		PermManageCategories,
		PermManageOrders,
		PermManageCustomers,
		PermManageUsers,
		PermManageSettings,
		PermSendNotifications,
	}
}

// RolesFor returns the roles holding a permission, or nil for unknown
// permissions.
func RolesFor(p Permission) []Role {
	roles, ok := permissionMatrix[p]
	if !ok {
		return nil
	}
	out := make([]Role, len(roles))
	copy(out, roles)
	return out
}

// Allowed reports whether a role holds a permission.
func Allowed(p Permission, r Role) bool {
	for _, role := range permissionMatrix[p] {
		if role == r {
			return true
		}
	}
	return false
}

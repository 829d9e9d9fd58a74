package enums

import "fmt"

// UserRole identifies which portal a mock user belongs to.
type UserRole string

const (
	UserRoleCustomer        UserRole = "CUSTOMER"
	UserRoleAdmin           UserRole = "ADMIN"
	UserRoleStoreManager    UserRole = "STORE_MANAGER"
	UserRoleDeliveryPartner UserRole = "DELIVERY_PARTNER"
	UserRoleSupportAgent    UserRole = "SUPPORT_AGENT"
)

var validUserRoles = []UserRole{
	UserRoleCustomer,
	UserRoleAdmin,
	UserRoleStoreManager,
	UserRoleDeliveryPartner,
	UserRoleSupportAgent,
}

// IsValid checks whether the given role matches the canonical enum.
func (r UserRole) IsValid() bool {
	for _, candidate := range validUserRoles {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseUserRole converts raw strings into UserRole.
func ParseUserRole(value string) (UserRole, error) {
	for _, candidate := range validUserRoles {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid user role %q", value)
}

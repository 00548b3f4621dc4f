package enums

import "fmt"

// UserStatus is the customer loyalty tier. No behavior hangs off it yet.
type UserStatus string

const (
	UserStatusGold   UserStatus = "gold"
	UserStatusSilver UserStatus = "silver"
	UserStatusBronze UserStatus = "bronze"
	UserStatusSimple UserStatus = "simple"
)

var validUserStatuses = []UserStatus{
	UserStatusGold,
	UserStatusSilver,
	UserStatusBronze,
	UserStatusSimple,
}

// String implements fmt.Stringer.
func (s UserStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known UserStatus.
func (s UserStatus) IsValid() bool {
	for _, candidate := range validUserStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseUserStatus converts raw input into a UserStatus.
func ParseUserStatus(value string) (UserStatus, error) {
	for _, candidate := range validUserStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid user status %q", value)
}

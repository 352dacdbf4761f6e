package domain

import (
	"github.com/shopspring/decimal"
)

// UserRole is the capability level attached to a user account.
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// NotificationPreferences controls which notification channels a user opted into.
type NotificationPreferences struct {
	Email          bool `json:"email"`
	SMS            bool `json:"sms"`
	ProductUpdates bool `json:"productUpdates"`
}

// DefaultNotificationPreferences matches the defaults applied at registration.
func DefaultNotificationPreferences() NotificationPreferences {
	return NotificationPreferences{Email: true, SMS: false, ProductUpdates: true}
}

// User represents an account holder with an internal wallet.
type User struct {
	UserID                  string                  `json:"userID"`
	UniID                   string                  `json:"uniID"`
	Name                    string                  `json:"name"`
	Email                   string                  `json:"email"`
	PasswordHash            string                  `json:"-"`
	Role                    UserRole                `json:"role"`
	ProfileImage            string                  `json:"profileImage"`
	WalletBalance           decimal.Decimal         `json:"wallet"`
	NotificationPreferences NotificationPreferences `json:"notificationPreferences"`
	AuthProvider            string                  `json:"-"`
	ProviderUserID          string                  `json:"-"`
	AuditFields
}

// IsAdmin reports whether the user holds the admin capability.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

package models

import (
	"github.com/shopspring/decimal"
)

// User is the persisted representation of an account holder.
type User struct {
	UserID         string          `db:"user_id"`
	UniID          string          `db:"uni_id"`
	Name           string          `db:"name"`
	Email          string          `db:"email"`
	PasswordHash   string          `db:"password_hash"`
	Role           string          `db:"role"`
	ProfileImage   string          `db:"profile_image"`
	WalletBalance  decimal.Decimal `db:"wallet_balance"`
	NotifyPrefs    []byte          `db:"notification_prefs"` // JSONB
	AuthProvider   string          `db:"auth_provider"`
	ProviderUserID string          `db:"provider_user_id"`
	AuditFields
}

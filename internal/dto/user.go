package dto

import (
	"time"

	"github.com/elitecrew/elite-crew-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UserResponse is the public representation of a user account.
type UserResponse struct {
	UserID       string          `json:"userID"`
	UniID        string          `json:"uniID"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Role         string          `json:"role"`
	ProfileImage string          `json:"profileImage"`
	Wallet       decimal.Decimal `json:"wallet"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// UpdateProfileRequest carries profile updates. Pointers distinguish omitted
// fields from zero values. The profile image arrives as a multipart file and
// is set separately by the handler after upload.
type UpdateProfileRequest struct {
	Name     *string `form:"name" json:"name"`
	Email    *string `form:"email" json:"email" binding:"omitempty,email"`
	Password *string `form:"password" json:"password" binding:"omitempty,min=6"`
}

// NotificationPreferencesRequest carries preference updates; omitted fields
// keep their current value.
type NotificationPreferencesRequest struct {
	Email          *bool `json:"email"`
	SMS            *bool `json:"sms"`
	ProductUpdates *bool `json:"productUpdates"`
}

// UserDataExport bundles everything held about a user for download.
type UserDataExport struct {
	Profile            UserResponse                `json:"profile"`
	Purchases          []PurchaseResponse          `json:"purchases"`
	Bookings           []BookingResponse           `json:"bookings"`
	WalletTransactions []WalletTransactionResponse `json:"walletTransactions"`
}

// ToUserResponse converts a domain.User to its public DTO.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:       user.UserID,
		UniID:        user.UniID,
		Name:         user.Name,
		Email:        user.Email,
		Role:         string(user.Role),
		ProfileImage: user.ProfileImage,
		Wallet:       user.WalletBalance,
		CreatedAt:    user.CreatedAt,
	}
}

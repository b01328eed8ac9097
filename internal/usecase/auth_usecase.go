// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterCustomerInput defines the data required to register a new customer.
type RegisterCustomerInput struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"`
}

// RegisterVendorInput defines the data required to register a new vendor.
// The user and their pending shop are created together.
type RegisterVendorInput struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	FirstName       string `json:"firstName" validate:"required"`
	LastName        string `json:"lastName"`
	ShopName        string `json:"shopName" validate:"required"`
	ShopDescription string `json:"shopDescription"`
	District        string `json:"district" validate:"required"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshInput carries the refresh token being exchanged.
type RefreshInput struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// LogoutInput carries the refresh token of the session being ended.
type LogoutInput struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// PasswordResetRequestInput asks for a reset token to be issued.
type PasswordResetRequestInput struct {
	Email string `json:"email" validate:"required,email"`
}

// PasswordResetConfirmInput redeems a reset token for a new password.
type PasswordResetConfirmInput struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated tokens after a successful login or refresh.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// PasswordResetRequestMessage is the reply for every reset request, whether
// or not the email exists, to prevent account enumeration.
const PasswordResetRequestMessage = "If an account exists for that email, a reset link has been sent"

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	RegisterCustomer(ctx context.Context, input *RegisterCustomerInput) (*RegisterOutput, error)
	RegisterVendor(ctx context.Context, input *RegisterVendorInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	Refresh(ctx context.Context, input *RefreshInput) (*LoginOutput, error)
	Logout(ctx context.Context, input *LogoutInput) error
	// RequestPasswordReset never reveals whether the email is registered;
	// the handler always answers PasswordResetRequestMessage on success.
	RequestPasswordReset(ctx context.Context, input *PasswordResetRequestInput) error
	ConfirmPasswordReset(ctx context.Context, input *PasswordResetConfirmInput) error
}

// Package api talks JSON over HTTP to the remote account service and
// normalizes its failures into a small error taxonomy.
package api

import (
	"context"

	"github.com/dmitrijs2005/accountcli/internal/client/models"
)

// SignupRequest is the payload for account creation.
type SignupRequest struct {
	Email           string `json:"email"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// AuthResponse is returned by login and signup. Token may be empty when the
// server chose not to auto-login (signup pending confirmation, for example).
type AuthResponse struct {
	Token   string              `json:"token"`
	User    *models.UserProfile `json:"user"`
	Message string              `json:"message"`
}

// Client defines the remote operations the screens depend on.
//
// Contract:
//   - Mutating calls return the server's human-readable message on success.
//   - Failures come back as ErrUnavailable (transport), *Error (server
//     payload), or something matching ErrUnauthorized (HTTP 401).
//   - Authenticated calls are attempted even without a token on hand; the
//     server's rejection travels back through the normal error path.
//
// All methods honor context cancellation. No timeouts or retries are applied
// by the implementation.
type Client interface {
	Signup(ctx context.Context, req SignupRequest) (*AuthResponse, error)
	Login(ctx context.Context, email, password string) (*AuthResponse, error)
	Me(ctx context.Context) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, firstName, lastName, currentPassword string) (string, error)
	ChangePassword(ctx context.Context, oldPassword, newPassword, confirmPassword string) (string, error)
	DeleteAccount(ctx context.Context, password string) (string, error)

	Notifications(ctx context.Context) (*models.NotificationPrefs, error)
	SaveNotifications(ctx context.Context, prefs models.NotificationPrefs) (string, error)
	Billing(ctx context.Context) (*models.BillingSummary, error)
	SaveBilling(ctx context.Context, upd models.BillingUpdate) (string, error)
	Plans(ctx context.Context) (*models.PlanSelection, error)
	SavePlans(ctx context.Context, sel models.PlanSelection, totalPrice int, currency string) (string, error)

	Ping(ctx context.Context) error
}

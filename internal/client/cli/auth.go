package cli

import (
	"context"
	"errors"
	"os"

	"github.com/dmitrijs2005/accountcli/internal/client/api"
	"github.com/dmitrijs2005/accountcli/internal/client/form"
	"github.com/dmitrijs2005/accountcli/internal/client/validate"
	"github.com/dmitrijs2005/accountcli/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to the interactive input helpers and can be swapped
// in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getYesNo = GetYesNo

// newLoginForm builds the login screen's controller: email format is the
// only local check, the rest is the server's call.
func (a *App) newLoginForm() *form.Controller {
	return form.New(
		func(c *form.Controller) error {
			if !validate.Email(c.Field("email")) {
				return form.Invalid("please enter a valid email address")
			}
			return nil
		},
		func(ctx context.Context, c *form.Controller) (string, error) {
			resp, err := a.api.Login(ctx, c.Field("email"), c.Field("password"))
			if err != nil {
				return "", err
			}
			if resp.Token == "" {
				msg := resp.Message
				if msg == "" {
					msg = "login rejected"
				}
				return "", errors.New(msg)
			}
			if err := a.session.Set(ctx, resp.Token, resp.User); err != nil {
				return "", err
			}
			return "Logged in as " + c.Field("email"), nil
		},
	)
}

// Login prompts for credentials and authenticates. On success the session
// is stored and the command loop switches to the authenticated command set.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	f := a.newLoginForm()
	f.SetField("email", email)
	f.SetField("password", string(password))

	err = f.Submit(ctx)
	a.showStatus(f)
	return err
}

// newSignupForm builds the signup screen's controller. All checks run
// before any request: email format, password strength, confirmation match.
func (a *App) newSignupForm() *form.Controller {
	return form.New(
		func(c *form.Controller) error {
			if !validate.Email(c.Field("email")) {
				return form.Invalid("please enter a valid email address")
			}
			if err := validate.Password(c.Field("password")); err != nil {
				return form.InvalidErr(err)
			}
			if c.Field("password") != c.Field("confirm_password") {
				return form.Invalid("passwords do not match")
			}
			return nil
		},
		func(ctx context.Context, c *form.Controller) (string, error) {
			resp, err := a.api.Signup(ctx, api.SignupRequest{
				Email:           c.Field("email"),
				FirstName:       c.Field("first_name"),
				LastName:        c.Field("last_name"),
				Password:        c.Field("password"),
				ConfirmPassword: c.Field("confirm_password"),
			})
			if err != nil {
				return "", err
			}

			// Auto-login when the server hands back a token; otherwise
			// surface its message and let the user log in explicitly.
			if resp.Token != "" {
				if err := a.session.Set(ctx, resp.Token, resp.User); err != nil {
					return "", err
				}
				return "Account created, logged in as " + c.Field("email"), nil
			}
			if resp.Message != "" {
				return resp.Message, nil
			}
			return "Account created, please log in", nil
		},
	)
}

// Signup walks through account creation and, when the server allows it,
// logs the new user straight in.
func (a *App) Signup(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	firstName, err := getSimpleText(a.reader, "First name", os.Stdout)
	if err != nil {
		return err
	}
	lastName, err := getSimpleText(a.reader, "Last name", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Choose a password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword("Confirm password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	f := a.newSignupForm()
	f.SetField("email", email)
	f.SetField("first_name", firstName)
	f.SetField("last_name", lastName)
	f.SetField("password", string(password))
	f.SetField("confirm_password", string(confirm))

	err = f.Submit(ctx)
	a.showStatus(f)
	return err
}

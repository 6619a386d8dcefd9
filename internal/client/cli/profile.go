package cli

import (
	"context"
	"os"

	"github.com/dmitrijs2005/accountcli/internal/client/form"
	"github.com/dmitrijs2005/accountcli/internal/client/models"
	"github.com/dmitrijs2005/accountcli/internal/client/validate"
	"github.com/dmitrijs2005/accountcli/internal/common"
)

// profileMode is the profile screen's state. The screen always starts in
// view mode and returns to it after any sub-screen finishes or cancels.
type profileMode int

const (
	modeView profileMode = iota
	modeEditName
	modeChangePassword
	modeDeleteAccount
	modeLeave
)

// newEditNameForm builds the controller for the name-change sub-screen.
// The server demands the current password for any profile mutation, so it
// is collected alongside the new names. All three fields are required.
func (a *App) newEditNameForm() *form.Controller {
	return form.New(
		func(c *form.Controller) error {
			if c.Field("first_name") == "" || c.Field("last_name") == "" {
				return form.Invalid("first and last name are required")
			}
			if c.Field("current_password") == "" {
				return form.Invalid("current password is required")
			}
			return nil
		},
		func(ctx context.Context, c *form.Controller) (string, error) {
			msg, err := a.api.UpdateProfile(ctx, c.Field("first_name"), c.Field("last_name"), c.Field("current_password"))
			if err != nil {
				return "", err
			}
			// Keep the cached identity in step so the prompt and whoami
			// reflect the rename without another round trip.
			if u := a.session.User(); u != nil {
				updated := *u
				updated.FirstName = c.Field("first_name")
				updated.LastName = c.Field("last_name")
				a.session.SetUser(&updated)
			}
			return msg, nil
		},
	)
}

// newChangePasswordForm builds the controller for the password sub-screen.
// Strength rules apply to the new password only; the old one is the
// server's to judge.
func (a *App) newChangePasswordForm() *form.Controller {
	return form.New(
		func(c *form.Controller) error {
			if c.Field("old_password") == "" {
				return form.Invalid("current password is required")
			}
			if err := validate.Password(c.Field("new_password")); err != nil {
				return form.InvalidErr(err)
			}
			if c.Field("new_password") != c.Field("confirm_password") {
				return form.Invalid("passwords do not match")
			}
			return nil
		},
		func(ctx context.Context, c *form.Controller) (string, error) {
			msg, err := a.api.ChangePassword(ctx, c.Field("old_password"), c.Field("new_password"), c.Field("confirm_password"))
			if err != nil {
				return "", err
			}
			c.ClearFields("old_password", "new_password", "confirm_password")
			return msg, nil
		},
	)
}

// newDeleteAccountForm builds the controller for account deletion. On
// success the local session is dropped; the caller leaves the screen.
func (a *App) newDeleteAccountForm() *form.Controller {
	return form.New(
		func(c *form.Controller) error {
			if c.Field("password") == "" {
				return form.Invalid("password is required")
			}
			return nil
		},
		func(ctx context.Context, c *form.Controller) (string, error) {
			msg, err := a.api.DeleteAccount(ctx, c.Field("password"))
			if err != nil {
				return "", err
			}
			if err := a.session.Clear(ctx); err != nil {
				a.log.Error(ctx, "clearing session after account deletion", "error", err)
			}
			if msg == "" {
				msg = "Account deleted."
			}
			return msg, nil
		},
	)
}

// Profile shows the identity fetched from the server and drives the screen's
// state machine until the user backs out or the account is deleted.
func (a *App) Profile(ctx context.Context) error {
	user, err := a.api.Me(ctx)
	if err != nil {
		printlnFn(a.styles.Error.Render("Could not load profile: " + err.Error()))
		return err
	}
	a.session.SetUser(user)

	mode := modeView
	for {
		switch mode {
		case modeView:
			a.printProfile(a.session.User())
			next, err := a.pickProfileMode()
			if err != nil {
				return err
			}
			mode = next

		case modeEditName:
			_ = a.editName(ctx)
			mode = modeView

		case modeChangePassword:
			_ = a.changePassword(ctx)
			mode = modeView

		case modeDeleteAccount:
			deleted, err := a.deleteAccount(ctx)
			if err == nil && deleted {
				return nil
			}
			mode = modeView

		case modeLeave:
			return nil
		}
	}
}

func (a *App) pickProfileMode() (profileMode, error) {
	choice, err := getSimpleText(a.reader, "[n] change name, [p] change password, [d] delete account, [b] back", os.Stdout)
	if err != nil {
		return modeLeave, err
	}
	switch choice {
	case "n":
		return modeEditName, nil
	case "p":
		return modeChangePassword, nil
	case "d":
		return modeDeleteAccount, nil
	case "b", "":
		return modeLeave, nil
	default:
		printlnFn("Unknown choice:", choice)
		return modeView, nil
	}
}

func (a *App) printProfile(u *models.UserProfile) {
	printlnFn(a.styles.Header.Render("Profile"))
	printlnFn("  Name: ", u.FullName())
	printlnFn("  Email:", u.Email)
}

func (a *App) editName(ctx context.Context) error {
	firstName, err := getSimpleText(a.reader, "First name", os.Stdout)
	if err != nil {
		return err
	}
	lastName, err := getSimpleText(a.reader, "Last name", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword("Current password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	f := a.newEditNameForm()
	f.SetField("first_name", firstName)
	f.SetField("last_name", lastName)
	f.SetField("current_password", string(password))

	err = f.Submit(ctx)
	a.showStatus(f)
	return err
}

func (a *App) changePassword(ctx context.Context) error {
	oldPw, err := getPassword("Current password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(oldPw)

	newPw, err := getPassword("New password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(newPw)

	confirm, err := getPassword("Confirm new password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	f := a.newChangePasswordForm()
	f.SetField("old_password", string(oldPw))
	f.SetField("new_password", string(newPw))
	f.SetField("confirm_password", string(confirm))

	err = f.Submit(ctx)
	a.showStatus(f)
	return err
}

// deleteAccount returns deleted=true when the account was removed and the
// profile screen must close.
func (a *App) deleteAccount(ctx context.Context) (bool, error) {
	confirmed, err := getYesNo(a.reader, "Delete this account permanently?", false, os.Stdout)
	if err != nil {
		return false, err
	}
	if !confirmed {
		printlnFn("Deletion cancelled.")
		return false, nil
	}

	password, err := getPassword("Password", os.Stdout)
	if err != nil {
		return false, err
	}
	defer common.WipeByteArray(password)

	f := a.newDeleteAccountForm()
	f.SetField("password", string(password))

	err = f.Submit(ctx)
	a.showStatus(f)
	if err != nil {
		return false, err
	}
	return true, nil
}

package cli

import (
	"context"
	"os"

	"github.com/dmitrijs2005/accountcli/internal/client/form"
	"github.com/dmitrijs2005/accountcli/internal/client/models"
)

// newNotificationsForm builds the controller for the notification toggles.
// There is nothing to validate locally; any combination of toggles is fine.
func (a *App) newNotificationsForm() *form.Controller {
	return form.New(nil,
		func(ctx context.Context, c *form.Controller) (string, error) {
			return a.api.SaveNotifications(ctx, models.NotificationPrefs{
				EmailNotifications: c.Toggle("email"),
				SMSNotifications:   c.Toggle("sms"),
				PushNotifications:  c.Toggle("push"),
			})
		},
	)
}

// Notifications loads the current preferences, walks the user through the
// three toggles, and saves the result.
func (a *App) Notifications(ctx context.Context) error {
	prefs, err := a.api.Notifications(ctx)
	if err != nil {
		printlnFn(a.styles.Error.Render("Could not load notification settings: " + err.Error()))
		return err
	}

	printlnFn(a.styles.Header.Render("Notification settings"))

	email, err := getYesNo(a.reader, "Email notifications", prefs.EmailNotifications, os.Stdout)
	if err != nil {
		return err
	}
	sms, err := getYesNo(a.reader, "SMS notifications", prefs.SMSNotifications, os.Stdout)
	if err != nil {
		return err
	}
	push, err := getYesNo(a.reader, "Push notifications", prefs.PushNotifications, os.Stdout)
	if err != nil {
		return err
	}

	f := a.newNotificationsForm()
	f.SetToggle("email", email)
	f.SetToggle("sms", sms)
	f.SetToggle("push", push)

	err = f.Submit(ctx)
	a.showStatus(f)
	return err
}

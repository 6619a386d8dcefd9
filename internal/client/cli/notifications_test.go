package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/accountcli/internal/client/api"
	"github.com/dmitrijs2005/accountcli/internal/client/models"
)

func TestNotifications_SaveToggles(t *testing.T) {
	silencePrintln(t)
	// email: keep on, sms: turn on, push: turn off.
	stubYesNo(t, true, true, false)

	f := &fakeAPI{notifPrefs: &models.NotificationPrefs{
		EmailNotifications: true,
		SMSNotifications:   false,
		PushNotifications:  true,
	}}
	a := newTestApp(f)

	if err := a.Notifications(context.Background()); err != nil {
		t.Fatalf("Notifications err: %v", err)
	}
	if f.savedNotif == nil {
		t.Fatalf("nothing saved")
	}
	want := models.NotificationPrefs{EmailNotifications: true, SMSNotifications: true}
	if *f.savedNotif != want {
		t.Fatalf("saved prefs mismatch: got %+v, want %+v", *f.savedNotif, want)
	}
}

func TestNotifications_LoadFailureSkipsPrompts(t *testing.T) {
	silencePrintln(t)

	f := &fakeAPI{notifErr: api.ErrUnavailable}
	a := newTestApp(f)

	if err := a.Notifications(context.Background()); !errors.Is(err, api.ErrUnavailable) {
		t.Fatalf("want ErrUnavailable, got %v", err)
	}
	if f.savedNotif != nil {
		t.Fatalf("save attempted after failed load")
	}
}

func TestNotifications_SaveFailureSurfaces(t *testing.T) {
	silencePrintln(t)
	stubYesNo(t, false, false, false)

	f := &fakeAPI{
		notifPrefs: &models.NotificationPrefs{},
		saveNotErr: &api.Error{Status: 500, Message: "storage unavailable"},
	}
	a := newTestApp(f)

	err := a.Notifications(context.Background())
	var apiErr *api.Error
	if !errors.As(err, &apiErr) || apiErr.Status != 500 {
		t.Fatalf("want server error, got %v", err)
	}
}

package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/accountcli/internal/client/api"
	"github.com/dmitrijs2005/accountcli/internal/client/form"
	"github.com/dmitrijs2005/accountcli/internal/client/models"
	"github.com/dmitrijs2005/accountcli/internal/client/validate"
)

func TestProfile_LoadFailure(t *testing.T) {
	silencePrintln(t)

	f := &fakeAPI{meErr: api.ErrUnavailable}
	a := newTestApp(f)

	if err := a.Profile(context.Background()); !errors.Is(err, api.ErrUnavailable) {
		t.Fatalf("want ErrUnavailable, got %v", err)
	}
}

func TestProfile_EditName(t *testing.T) {
	silencePrintln(t)
	// choice "n", new first/last name, then "b" to leave.
	stubInputs(t,
		[]string{"n", "Ann", "Lee", "b"},
		[]string{"Password1"},
	)

	f := &fakeAPI{
		meUser: &models.UserProfile{Email: "ann@example.org", FirstName: "Anna", LastName: "Lee"},
		updMsg: "profile updated",
	}
	a := newTestApp(f)

	if err := a.Profile(context.Background()); err != nil {
		t.Fatalf("Profile err: %v", err)
	}
	if f.updFirst != "Ann" || f.updLast != "Lee" || f.updPass != "Password1" {
		t.Fatalf("update args mismatch: %q %q %q", f.updFirst, f.updLast, f.updPass)
	}
	u := a.session.User()
	if u == nil || u.FirstName != "Ann" || u.LastName != "Lee" {
		t.Fatalf("cached profile not updated: %+v", u)
	}
}

func TestProfile_EditName_RequiresPassword(t *testing.T) {
	silencePrintln(t)
	stubInputs(t,
		[]string{"n", "Ann", "Lee", "b"},
		[]string{""},
	)

	f := &fakeAPI{meUser: &models.UserProfile{Email: "ann@example.org"}}
	a := newTestApp(f)

	if err := a.Profile(context.Background()); err != nil {
		t.Fatalf("Profile err: %v", err)
	}
	if f.updFirst != "" {
		t.Fatalf("request was sent without a password")
	}
}

func TestProfile_ChangePassword(t *testing.T) {
	silencePrintln(t)
	stubInputs(t,
		[]string{"p", "b"},
		[]string{"OldPass1", "NewPass12", "NewPass12"},
	)

	f := &fakeAPI{
		meUser: &models.UserProfile{Email: "ann@example.org"},
		chMsg:  "password changed",
	}
	a := newTestApp(f)

	if err := a.Profile(context.Background()); err != nil {
		t.Fatalf("Profile err: %v", err)
	}
	if f.chOld != "OldPass1" || f.chNew != "NewPass12" || f.chConfirm != "NewPass12" {
		t.Fatalf("change args mismatch: %q %q %q", f.chOld, f.chNew, f.chConfirm)
	}
}

func TestProfile_ChangePassword_WeakNewPassword(t *testing.T) {
	silencePrintln(t)
	stubInputs(t,
		[]string{"p", "b"},
		[]string{"OldPass1", "short", "short"},
	)

	f := &fakeAPI{meUser: &models.UserProfile{Email: "ann@example.org"}}
	a := newTestApp(f)

	if err := a.Profile(context.Background()); err != nil {
		t.Fatalf("Profile err: %v", err)
	}
	if f.chNew != "" {
		t.Fatalf("request was sent despite weak new password")
	}
}

func TestProfile_DeleteAccount(t *testing.T) {
	silencePrintln(t)
	stubInputs(t, []string{"d"}, []string{"Password1"})
	stubYesNo(t, true)

	f := &fakeAPI{meUser: &models.UserProfile{Email: "ann@example.org"}}
	a := newTestApp(f)
	if err := a.session.Set(context.Background(), "tok", f.meUser); err != nil {
		t.Fatalf("seed session: %v", err)
	}

	if err := a.Profile(context.Background()); err != nil {
		t.Fatalf("Profile err: %v", err)
	}
	if !f.delCalled || f.delPass != "Password1" {
		t.Fatalf("delete not issued correctly: called=%v pass=%q", f.delCalled, f.delPass)
	}
	if a.session.Authenticated() {
		t.Fatalf("session must be cleared after deletion")
	}
}

func TestProfile_DeleteAccount_Cancelled(t *testing.T) {
	silencePrintln(t)
	stubInputs(t, []string{"d", "b"}, nil)
	stubYesNo(t, false)

	f := &fakeAPI{meUser: &models.UserProfile{Email: "ann@example.org"}}
	a := newTestApp(f)

	if err := a.Profile(context.Background()); err != nil {
		t.Fatalf("Profile err: %v", err)
	}
	if f.delCalled {
		t.Fatalf("delete issued despite cancellation")
	}
}

func TestProfile_DeleteAccount_ServerRejection(t *testing.T) {
	silencePrintln(t)
	stubInputs(t, []string{"d", "b"}, []string{"wrong"})
	stubYesNo(t, true)

	f := &fakeAPI{
		meUser: &models.UserProfile{Email: "ann@example.org"},
		delErr: &api.Error{Status: 403, Message: "incorrect password"},
	}
	a := newTestApp(f)
	if err := a.session.Set(context.Background(), "tok", f.meUser); err != nil {
		t.Fatalf("seed session: %v", err)
	}

	if err := a.Profile(context.Background()); err != nil {
		t.Fatalf("Profile err: %v", err)
	}
	if !a.session.Authenticated() {
		t.Fatalf("session must survive a rejected deletion")
	}
}

// Sanity check that the password sub-screen surfaces the strength sentinel
// through the controller.
func TestChangePasswordForm_SentinelSurvives(t *testing.T) {
	a := newTestApp(&fakeAPI{})

	f := a.newChangePasswordForm()
	f.SetField("old_password", "OldPass1")
	f.SetField("new_password", "alllowercase1")
	f.SetField("confirm_password", "alllowercase1")

	err := f.Submit(context.Background())
	var verr *form.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want ValidationError, got %v", err)
	}
	if !errors.Is(err, validate.ErrPasswordUppercase) {
		t.Fatalf("sentinel lost: %v", err)
	}
}

package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/accountcli/internal/client/form"
	"github.com/dmitrijs2005/accountcli/internal/client/models"
)

func TestPlans_PaidSelectionWithCard(t *testing.T) {
	silencePrintln(t)
	stubInputs(t, []string{"pro"}, nil)
	// extra storage on, priority support off, confirm save.
	stubYesNo(t, true, false, true)

	f := &fakeAPI{
		plansSel:       &models.PlanSelection{Plan: models.PlanBasic},
		billingSummary: &models.BillingSummary{CardLast4: "4242"},
	}
	a := newTestApp(f)

	if err := a.Plans(context.Background()); err != nil {
		t.Fatalf("Plans err: %v", err)
	}
	if f.savedSel == nil {
		t.Fatalf("nothing saved")
	}
	want := models.PlanSelection{Plan: models.PlanPro, ExtraStorage: true}
	if *f.savedSel != want {
		t.Fatalf("selection mismatch: got %+v, want %+v", *f.savedSel, want)
	}
	if f.savedTotal != 698 {
		t.Fatalf("total mismatch: got %d, want 698", f.savedTotal)
	}
	if f.savedCurrency != "usd" {
		t.Fatalf("currency mismatch: %q", f.savedCurrency)
	}
}

func TestPlans_PaidSelectionWithoutCardBlocked(t *testing.T) {
	silencePrintln(t)
	stubInputs(t, []string{"pro"}, nil)
	stubYesNo(t, false, false, true)

	f := &fakeAPI{
		plansSel:       &models.PlanSelection{Plan: models.PlanBasic},
		billingSummary: &models.BillingSummary{},
	}
	a := newTestApp(f)

	err := a.Plans(context.Background())
	var verr *form.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want ValidationError, got %v", err)
	}
	if f.savedSel != nil {
		t.Fatalf("save issued despite missing payment method")
	}
}

func TestPlans_FreeSelectionNeedsNoCard(t *testing.T) {
	silencePrintln(t)
	stubInputs(t, []string{"basic"}, nil)
	stubYesNo(t, false, false, true)

	f := &fakeAPI{
		plansSel:       &models.PlanSelection{Plan: models.PlanPro, ExtraStorage: true},
		billingSummary: &models.BillingSummary{},
	}
	a := newTestApp(f)

	if err := a.Plans(context.Background()); err != nil {
		t.Fatalf("Plans err: %v", err)
	}
	if f.savedSel == nil {
		t.Fatalf("nothing saved")
	}
	if f.savedSel.Plan != models.PlanBasic || f.savedTotal != 0 {
		t.Fatalf("downgrade mismatch: sel=%+v total=%d", *f.savedSel, f.savedTotal)
	}
}

func TestPlans_EmptyInputKeepsCurrentPlan(t *testing.T) {
	silencePrintln(t)
	stubInputs(t, []string{""}, nil)
	stubYesNo(t, true, true, true)

	f := &fakeAPI{
		plansSel:       &models.PlanSelection{Plan: models.PlanEnterprise},
		billingSummary: &models.BillingSummary{CardLast4: "4242"},
	}
	a := newTestApp(f)

	if err := a.Plans(context.Background()); err != nil {
		t.Fatalf("Plans err: %v", err)
	}
	if f.savedSel == nil || f.savedSel.Plan != models.PlanEnterprise {
		t.Fatalf("current plan not kept: %+v", f.savedSel)
	}
	if f.savedTotal != 1499+199+299 {
		t.Fatalf("total mismatch: got %d", f.savedTotal)
	}
}

func TestPlans_UnknownPlanRejected(t *testing.T) {
	silencePrintln(t)
	stubInputs(t, []string{"platinum"}, nil)
	stubYesNo(t, false, false, true)

	f := &fakeAPI{
		plansSel:       &models.PlanSelection{Plan: models.PlanBasic},
		billingSummary: &models.BillingSummary{CardLast4: "4242"},
	}
	a := newTestApp(f)

	err := a.Plans(context.Background())
	var verr *form.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want ValidationError, got %v", err)
	}
	if f.savedSel != nil {
		t.Fatalf("save issued for unknown plan")
	}
}

func TestPlans_DeclinedConfirmationSavesNothing(t *testing.T) {
	silencePrintln(t)
	stubInputs(t, []string{"pro"}, nil)
	stubYesNo(t, false, false, false)

	f := &fakeAPI{
		plansSel:       &models.PlanSelection{Plan: models.PlanBasic},
		billingSummary: &models.BillingSummary{CardLast4: "4242"},
	}
	a := newTestApp(f)

	if err := a.Plans(context.Background()); err != nil {
		t.Fatalf("Plans err: %v", err)
	}
	if f.savedSel != nil {
		t.Fatalf("save issued despite declined confirmation")
	}
}

func TestFormatPrice(t *testing.T) {
	cases := map[int]string{0: "$0.00", 499: "$4.99", 698: "$6.98", 1997: "$19.97"}
	for cents, want := range cases {
		if got := formatPrice(cents); got != want {
			t.Fatalf("formatPrice(%d) = %q, want %q", cents, got, want)
		}
	}
}

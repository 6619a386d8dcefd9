package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/accountcli/internal/client/form"
	"github.com/dmitrijs2005/accountcli/internal/client/models"
)

const planCurrency = "usd"

// newPlansForm builds the controller for the plan screen. The payment gate
// is a local check: a paid selection is rejected before any request when no
// card was on file at screen load. The billing snapshot is taken once per
// visit, so a card added from another session is only noticed on re-entry.
func (a *App) newPlansForm(hasPayment bool) *form.Controller {
	return form.New(
		func(c *form.Controller) error {
			sel := selectionFromFields(c)
			if !sel.Plan.Valid() {
				return form.Invalid("unknown plan: " + string(sel.Plan))
			}
			if sel.Total() > 0 && !hasPayment {
				return form.Invalid("a payment method is required for paid plans, add a card in billing settings first")
			}
			return nil
		},
		func(ctx context.Context, c *form.Controller) (string, error) {
			sel := selectionFromFields(c)
			return a.api.SavePlans(ctx, sel, sel.Total(), planCurrency)
		},
	)
}

func selectionFromFields(c *form.Controller) models.PlanSelection {
	return models.PlanSelection{
		Plan:            models.Plan(c.Field("plan")),
		ExtraStorage:    c.Toggle("extra_storage"),
		PrioritySupport: c.Toggle("priority_support"),
	}
}

// Plans shows the current subscription, lets the user pick a tier and
// add-ons, and saves the selection with its derived total.
func (a *App) Plans(ctx context.Context) error {
	current, err := a.api.Plans(ctx)
	if err != nil {
		printlnFn(a.styles.Error.Render("Could not load plan settings: " + err.Error()))
		return err
	}

	// The gate needs to know whether a card is on file; the plans payload
	// does not carry that, so billing is fetched separately.
	billing, err := a.api.Billing(ctx)
	if err != nil {
		printlnFn(a.styles.Error.Render("Could not load billing settings: " + err.Error()))
		return err
	}

	a.printPlans(current, billing.HasPaymentMethod())

	plan, err := getSimpleText(a.reader, fmt.Sprintf("Plan [basic/pro/enterprise] (current: %s, empty to keep)", current.Plan), os.Stdout)
	if err != nil {
		return err
	}
	if plan == "" {
		plan = string(current.Plan)
	}

	storage, err := getYesNo(a.reader, fmt.Sprintf("Extra storage (+%s/mo)", formatPrice(models.PriceExtraStorage)), current.ExtraStorage, os.Stdout)
	if err != nil {
		return err
	}
	support, err := getYesNo(a.reader, fmt.Sprintf("Priority support (+%s/mo)", formatPrice(models.PricePrioritySupport)), current.PrioritySupport, os.Stdout)
	if err != nil {
		return err
	}

	f := a.newPlansForm(billing.HasPaymentMethod())
	f.SetField("plan", plan)
	f.SetToggle("extra_storage", storage)
	f.SetToggle("priority_support", support)

	sel := selectionFromFields(f)
	printlnFn("Monthly total:", formatPrice(sel.Total()))

	confirmed, err := getYesNo(a.reader, "Save this selection?", true, os.Stdout)
	if err != nil {
		return err
	}
	if !confirmed {
		printlnFn("No changes saved.")
		return nil
	}

	err = f.Submit(ctx)
	a.showStatus(f)
	return err
}

func (a *App) printPlans(sel *models.PlanSelection, hasPayment bool) {
	printlnFn(a.styles.Header.Render("Plan settings"))
	printlnFn("  Plan:            ", string(sel.Plan))
	printlnFn("  Extra storage:   ", yesNo(sel.ExtraStorage))
	printlnFn("  Priority support:", yesNo(sel.PrioritySupport))
	printlnFn("  Monthly total:   ", formatPrice(sel.Total()))
	if !hasPayment {
		printlnFn(a.styles.Muted.Render("  No payment method on file; paid plans are unavailable."))
	}
}

// formatPrice renders minor units as dollars, e.g. 698 -> "$6.98".
func formatPrice(cents int) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

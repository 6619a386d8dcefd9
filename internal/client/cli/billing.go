package cli

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/dmitrijs2005/accountcli/internal/client/form"
	"github.com/dmitrijs2005/accountcli/internal/client/models"
	"github.com/dmitrijs2005/accountcli/internal/client/validate"
	"github.com/dmitrijs2005/accountcli/internal/common"
)

// nowFn is a test seam so expiry-year checks run against a fixed clock.
var nowFn = time.Now

// newBillingForm builds the controller for the billing screen.
//
// Card fields are all-or-none: leaving every card field empty keeps the
// stored card and updates only the cardholder name or invoice email. As
// soon as one card field is filled, all of them must pass validation.
func (a *App) newBillingForm() *form.Controller {
	return form.New(
		func(c *form.Controller) error {
			if email := c.Field("invoice_email"); email != "" && !validate.Email(email) {
				return form.Invalid("please enter a valid invoice email address")
			}

			upd := billingUpdateFromFields(c)
			if !upd.HasCardFields() {
				return nil
			}

			if c.Field("cardholder_name") == "" {
				return form.Invalid("cardholder name is required when updating the card")
			}
			if err := validate.CardNumber(c.Field("card_number")); err != nil {
				return form.InvalidErr(err)
			}
			month, err := strconv.Atoi(c.Field("expiry_month"))
			if err != nil {
				return form.InvalidErr(validate.ErrExpiryMonth)
			}
			if err := validate.ExpiryMonth(month); err != nil {
				return form.InvalidErr(err)
			}
			year, err := strconv.Atoi(c.Field("expiry_year"))
			if err != nil {
				return form.InvalidErr(validate.ErrExpiryYear)
			}
			if err := validate.ExpiryYear(year, nowFn()); err != nil {
				return form.InvalidErr(err)
			}
			if err := validate.CVV(c.Field("cvv")); err != nil {
				return form.InvalidErr(err)
			}
			return nil
		},
		func(ctx context.Context, c *form.Controller) (string, error) {
			msg, err := a.api.SaveBilling(ctx, billingUpdateFromFields(c))
			if err != nil {
				return "", err
			}
			c.ClearFields("card_number", "cvv")
			return msg, nil
		},
	)
}

// billingUpdateFromFields assembles the write payload. The card number is
// submitted digits-only; month and year parse errors surface as zero values
// and are caught by validation before this payload is ever sent.
func billingUpdateFromFields(c *form.Controller) models.BillingUpdate {
	month, _ := strconv.Atoi(c.Field("expiry_month"))
	year, _ := strconv.Atoi(c.Field("expiry_year"))
	return models.BillingUpdate{
		CardholderName: c.Field("cardholder_name"),
		CardNumber:     validate.StripNonDigits(c.Field("card_number")),
		ExpiryMonth:    month,
		ExpiryYear:     year,
		CVV:            c.Field("cvv"),
		InvoiceEmail:   c.Field("invoice_email"),
	}
}

// Billing shows the stored billing summary and optionally walks through an
// update. The CVV is collected without echo and never displayed back.
func (a *App) Billing(ctx context.Context) error {
	summary, err := a.api.Billing(ctx)
	if err != nil {
		printlnFn(a.styles.Error.Render("Could not load billing settings: " + err.Error()))
		return err
	}

	a.printBilling(summary)

	edit, err := getYesNo(a.reader, "Update billing details?", false, os.Stdout)
	if err != nil {
		return err
	}
	if !edit {
		return nil
	}

	f := a.newBillingForm()

	name, err := getSimpleText(a.reader, "Cardholder name (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	f.SetField("cardholder_name", name)

	invoiceEmail, err := getSimpleText(a.reader, "Invoice email (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	f.SetField("invoice_email", invoiceEmail)

	number, err := getSimpleText(a.reader, "Card number (empty to keep current card)", os.Stdout)
	if err != nil {
		return err
	}
	f.SetField("card_number", number)

	if number != "" {
		month, err := getSimpleText(a.reader, "Expiry month (1-12)", os.Stdout)
		if err != nil {
			return err
		}
		f.SetField("expiry_month", month)

		year, err := getSimpleText(a.reader, "Expiry year (e.g. 2028)", os.Stdout)
		if err != nil {
			return err
		}
		f.SetField("expiry_year", year)

		cvv, err := getPassword("Security code", os.Stdout)
		if err != nil {
			return err
		}
		f.SetField("cvv", string(cvv))
		common.WipeByteArray(cvv)
	}

	err = f.Submit(ctx)
	a.showStatus(f)
	if err != nil {
		return err
	}

	// Reload so the user sees the stored card the way the server now has
	// it, masked to the last four digits.
	if refreshed, err := a.api.Billing(ctx); err == nil {
		a.printBilling(refreshed)
	}
	return nil
}

func (a *App) printBilling(s *models.BillingSummary) {
	printlnFn(a.styles.Header.Render("Billing settings"))
	if s.HasPaymentMethod() {
		printlnFn("  Card:          ", s.MaskedNumber())
	} else {
		printlnFn("  Card:          ", a.styles.Muted.Render("none on file"))
	}
	if s.CardholderName != "" {
		printlnFn("  Cardholder:    ", s.CardholderName)
	}
	if s.InvoiceEmail != "" {
		printlnFn("  Invoice email: ", s.InvoiceEmail)
	}
}

package models

import "strings"

// BillingSummary is what the server returns for billing settings. The full
// card number never leaves the server; only the last four digits come back.
type BillingSummary struct {
	CardholderName string `json:"cardholder_name"`
	CardLast4      string `json:"card_last4"`
	InvoiceEmail   string `json:"invoice_email"`
}

// HasPaymentMethod reports whether a card is on file.
func (b BillingSummary) HasPaymentMethod() bool {
	return b.CardLast4 != ""
}

// MaskedNumber reconstructs the display form of the stored card,
// e.g. "**** **** **** 4242". Empty when no card is on file.
func (b BillingSummary) MaskedNumber() string {
	if b.CardLast4 == "" {
		return ""
	}
	return strings.Repeat("**** ", 3) + b.CardLast4
}

// BillingUpdate is the write shape for billing settings. CardNumber holds
// digits only; CVV is write-only and must never be stored or echoed.
type BillingUpdate struct {
	CardholderName string `json:"cardholder_name,omitempty"`
	CardNumber     string `json:"card_number,omitempty"`
	ExpiryMonth    int    `json:"expiry_month,omitempty"`
	ExpiryYear     int    `json:"expiry_year,omitempty"`
	CVV            string `json:"cvv,omitempty"`
	InvoiceEmail   string `json:"invoice_email,omitempty"`
}

// HasCardFields reports whether any of the card-related fields were filled
// in. Card fields are all-or-none on submit.
func (b BillingUpdate) HasCardFields() bool {
	return b.CardNumber != "" || b.ExpiryMonth != 0 || b.ExpiryYear != 0 || b.CVV != ""
}

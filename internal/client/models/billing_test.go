package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBillingSummary_MaskedNumber(t *testing.T) {
	b := BillingSummary{CardLast4: "4242"}
	require.Equal(t, "**** **** **** 4242", b.MaskedNumber())

	require.Empty(t, BillingSummary{}.MaskedNumber())
}

func TestBillingSummary_HasPaymentMethod(t *testing.T) {
	require.True(t, BillingSummary{CardLast4: "1111"}.HasPaymentMethod())
	require.False(t, BillingSummary{CardholderName: "A. Payer"}.HasPaymentMethod())
}

func TestBillingUpdate_HasCardFields(t *testing.T) {
	require.False(t, BillingUpdate{CardholderName: "A. Payer", InvoiceEmail: "a@b.co"}.HasCardFields())
	require.True(t, BillingUpdate{CardNumber: "4111111111111111"}.HasCardFields())
	require.True(t, BillingUpdate{ExpiryMonth: 12}.HasCardFields())
	require.True(t, BillingUpdate{CVV: "123"}.HasCardFields())
}

func TestUserProfile_FullName(t *testing.T) {
	require.Equal(t, "Ada Lovelace", UserProfile{FirstName: "Ada", LastName: "Lovelace"}.FullName())
	require.Equal(t, "Ada", UserProfile{FirstName: "Ada"}.FullName())
	require.Equal(t, "Lovelace", UserProfile{LastName: "Lovelace"}.FullName())
}

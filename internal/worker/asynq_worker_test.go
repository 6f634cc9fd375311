package worker

import (
	"testing"

	"github.com/bunai-store/internal/constants"
	"github.com/bunai-store/internal/models"
)

func TestNeedsFollowUp(t *testing.T) {
	if needsFollowUp(nil) {
		t.Fatalf("nil order should not need follow up")
	}
	if !needsFollowUp(&models.Order{Status: constants.OrderStatusPending}) {
		t.Fatalf("pending order should need follow up")
	}
	if needsFollowUp(&models.Order{Status: constants.OrderStatusConfirmed}) {
		t.Fatalf("confirmed order should not need follow up")
	}
	if needsFollowUp(&models.Order{Status: constants.OrderStatusCanceled}) {
		t.Fatalf("canceled order should not need follow up")
	}
	if !needsFollowUp(&models.Order{Status: "  Pending "}) {
		t.Fatalf("status matching should ignore case and spaces")
	}
}

func TestBuildFollowUpNote(t *testing.T) {
	if got := buildFollowUpNote(nil); got != "" {
		t.Fatalf("expected empty note for nil order, got %q", got)
	}

	order := &models.Order{
		OrderNo:      "BN20260101120000123456",
		CustomerName: "Asha",
		Currency:     "INR",
		TotalAmount:  models.NewMoneyFromInt(2500),
	}
	got := buildFollowUpNote(order)
	want := "Asha placed order BN20260101120000123456 (INR 2500.00) and has not confirmed yet"
	if got != want {
		t.Fatalf("unexpected note, want %q got %q", want, got)
	}

	order.CustomerName = "  "
	got = buildFollowUpNote(order)
	if got != "customer placed order BN20260101120000123456 (INR 2500.00) and has not confirmed yet" {
		t.Fatalf("blank customer name should fall back to generic label, got %q", got)
	}
}

package orders

import (
	"testing"

	"github.com/taskcord/store-bot/pkg/models"
)

func TestOrderIcon(t *testing.T) {
	cases := []struct {
		name  string
		order models.Order
		want  string
	}{
		{
			name: "cancelled wins over everything",
			order: models.Order{
				ConfirmationStatus: models.ConfirmationCancelled,
				PaymentStatus:      models.PaymentCompleted,
				DeliveryStatus:     models.DeliveryDelivered,
			},
			want: "❌",
		},
		{
			name: "delivered",
			order: models.Order{
				ConfirmationStatus: models.ConfirmationConfirmed,
				PaymentStatus:      models.PaymentCompleted,
				DeliveryStatus:     models.DeliveryDelivered,
			},
			want: "📬",
		},
		{
			name: "paid but not delivered",
			order: models.Order{
				ConfirmationStatus: models.ConfirmationConfirmed,
				PaymentStatus:      models.PaymentCompleted,
				DeliveryStatus:     models.DeliveryPending,
			},
			want: "✅",
		},
		{
			name: "fresh order",
			order: models.Order{
				ConfirmationStatus: models.ConfirmationPending,
				PaymentStatus:      models.PaymentPending,
				DeliveryStatus:     models.DeliveryPending,
			},
			want: "⏳",
		},
	}

	for _, tc := range cases {
		if got := orderIcon(&tc.order); got != tc.want {
			t.Errorf("%s: orderIcon = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestStatusLine(t *testing.T) {
	order := &models.Order{
		PaymentStatus:      models.PaymentPending,
		ConfirmationStatus: models.ConfirmationPending,
		DeliveryStatus:     models.DeliveryPending,
	}
	want := "payment: pending | confirmation: pending | delivery: pending"
	if got := statusLine(order); got != want {
		t.Errorf("statusLine = %q, want %q", got, want)
	}
}

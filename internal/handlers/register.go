// Package handlers wires modal and component interactions to their
// handlers. Routing is by custom-ID prefix; IDs that carry a document ID
// append it after an underscore.
package handlers

import (
	"github.com/taskcord/store-bot/pkg/discord"
)

// RegisterHandlers registers all modal and component handlers
func RegisterHandlers(client *discord.ExtendedClient) {
	// Modals
	client.RegisterModalHandler("addProductModal", handleAddProductModal)
	client.RegisterModalHandler("updateProductModal", handleUpdateProductModal)
	client.RegisterModalHandler("addPaymentMethodModal", handleAddPaymentMethodModal)
	client.RegisterModalHandler("updatePaymentMethodModal", handleUpdatePaymentMethodModal)
	client.RegisterModalHandler("deliveryProduct", handleDeliveryModal)
	client.RegisterModalHandler("createStoreModal", handleCreateStoreModal)

	// Buttons
	client.RegisterComponentHandler("paymentMethod", handlePaymentMethodButton)
	client.RegisterComponentHandler("copyPhoneNumber", handleCopyPhoneNumberButton)
}

// Package handlers - product modal submissions
package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/taskcord/store-bot/pkg/database"
	"github.com/taskcord/store-bot/pkg/discord"
	"github.com/taskcord/store-bot/pkg/embeds"
	"go.mongodb.org/mongo-driver/bson"
)

// parsePrice parses a modal price field into a non-negative float
func parsePrice(raw string) (float64, error) {
	price, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
	if err != nil || price < 0 {
		return 0, fmt.Errorf("invalid price %q", raw)
	}
	return price, nil
}

// handleAddProductModal creates a product from the add-product modal
func handleAddProductModal(ctx *discord.CommandContext, customID string) error {
	name := ctx.ModalValue("name")
	description := ctx.ModalValue("description")
	priceRaw := ctx.ModalValue("price")

	price, err := parsePrice(priceRaw)
	if err != nil {
		return ctx.ReplyEphemeral("❌ The price must be a non-negative number, e.g. `9.99`.")
	}

	product, err := database.CreateProduct(ctx.Interaction.GuildID, name, description, price)
	if err != nil {
		if errors.Is(err, database.ErrProductExists) {
			return ctx.ReplyEphemeral(fmt.Sprintf("❌ A product named **%s** already exists.", name))
		}
		return err
	}

	return ctx.ReplyEmbed(embeds.Success("Product Added",
		fmt.Sprintf("**%s** was added to the catalog at %.2f.", product.Name, product.Price)))
}

// handleUpdateProductModal applies the update-product modal to the
// product encoded in the custom ID
func handleUpdateProductModal(ctx *discord.CommandContext, customID string) error {
	productID := strings.TrimPrefix(customID, "updateProductModal_")

	price, err := parsePrice(ctx.ModalValue("price"))
	if err != nil {
		return ctx.ReplyEphemeral("❌ The price must be a non-negative number, e.g. `9.99`.")
	}

	available := strings.EqualFold(ctx.ModalValue("available"), "yes")

	updates := bson.M{
		"name":        ctx.ModalValue("name"),
		"description": ctx.ModalValue("description"),
		"price":       price,
		"isAvailable": available,
	}

	product, err := database.UpdateProduct(ctx.Interaction.GuildID, productID, updates)
	if err != nil {
		if errors.Is(err, database.ErrProductNotFound) || errors.Is(err, database.ErrInvalidProductID) {
			return ctx.ReplyEphemeral("❌ That product could not be found.")
		}
		return err
	}

	return ctx.ReplyEmbed(embeds.Success("Product Updated",
		fmt.Sprintf("**%s** has been updated.", product.Name)))
}

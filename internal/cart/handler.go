package cart

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cyralabs/cyra-shop-backend/internal/flight"
	"github.com/cyralabs/cyra-shop-backend/internal/product"
	"github.com/cyralabs/cyra-shop-backend/internal/recommended"
)

// Handler exposes the cart/wishlist aggregate over HTTP. Adding an item may
// also spawn a flight animation when the client supplies the two anchor rects.
type Handler struct {
	store    *Store
	products *product.Service
	flights  *flight.Controller
}

func NewHandler(store *Store, products *product.Service, flights *flight.Controller) *Handler {
	return &Handler{store: store, products: products, flights: flights}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/cart", h.getCart)
	app.Post("/api/v1/cart/items", h.addItem)
	app.Patch("/api/v1/cart/items/:id", h.updateQuantity)
	app.Delete("/api/v1/cart/items/:id", h.removeItem)
	app.Get("/api/v1/wishlist", h.getWishlist)
	app.Post("/api/v1/wishlist", h.toggleWishlist)
	app.Get("/api/v1/flights", h.getFlights)
}

type addItemRequest struct {
	ProductID string `json:"productId"`
	// Anchor rects for the add-to-cart animation. The trigger element snapshots
	// its own bounding box at click time; the target is the cart icon's box.
	Origin *flight.Rect `json:"origin,omitempty"`
	Target *flight.Rect `json:"target,omitempty"`
}

type quantityRequest struct {
	Delta int `json:"delta"`
}

type wishlistRequest struct {
	ProductID string `json:"productId"`
}

func (h *Handler) cartResponse() fiber.Map {
	return fiber.Map{
		"items": h.store.Items(),
		"count": h.store.Count(),
		"total": h.store.Total(),
	}
}

func (h *Handler) getCart(c *fiber.Ctx) error {
	return c.JSON(h.cartResponse())
}

func (h *Handler) addItem(c *fiber.Ctx) error {
	payload := new(addItemRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid productId"})
	}

	p, err := h.products.GetByID(payload.ProductID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
	}

	h.store.AddItem(p)

	resp := h.cartResponse()
	if payload.Origin != nil && payload.Target != nil {
		resp["flightId"] = h.flights.Spawn(p.Image, *payload.Origin, *payload.Target)
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *Handler) updateQuantity(c *fiber.Ctx) error {
	payload := new(quantityRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	h.store.UpdateQuantity(c.Params("id"), payload.Delta)
	return c.JSON(h.cartResponse())
}

func (h *Handler) removeItem(c *fiber.Ctx) error {
	h.store.RemoveItem(c.Params("id"))
	return c.JSON(h.cartResponse())
}

func (h *Handler) toggleWishlist(c *fiber.Ctx) error {
	payload := new(wishlistRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid productId"})
	}
	wishlisted := h.store.ToggleWishlist(payload.ProductID)
	return c.JSON(fiber.Map{"productId": payload.ProductID, "wishlisted": wishlisted})
}

func (h *Handler) getWishlist(c *fiber.Ctx) error {
	// resolve ids to full products for the wishlist drawer
	return c.JSON(recommended.Resolve(h.store.Wishlist(), h.products.List()))
}

func (h *Handler) getFlights(c *fiber.Ctx) error {
	return c.JSON(h.flights.Active())
}

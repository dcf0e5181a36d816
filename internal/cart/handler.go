package cart

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tidemart/storefront-backend/internal/session"
)

// Handler maps the cart HTTP surface onto the cart service. Every route
// resolves the session first and answers with the refreshed cart view.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/api/v1/cart", h.getCart)
	app.Post("/api/v1/cart/items", h.addItem)
	app.Put("/api/v1/cart/items/:id", h.updateQuantity)
	app.Delete("/api/v1/cart/items/:id", h.removeItem)
	app.Post("/api/v1/cart/promo", h.applyPromo)
	app.Delete("/api/v1/cart", h.clearCart)
}

// itemView mirrors the persisted item shape plus the derived line total.
type itemView struct {
	Item
	LineTotal float64 `json:"lineTotal"`
}

type cartView struct {
	Items           []itemView `json:"items"`
	DiscountPercent float64    `json:"discountPercent"`
	Subtotal        float64    `json:"subtotal"`
	DiscountAmount  float64    `json:"discountAmount"`
	Tax             float64    `json:"tax"`
	Total           float64    `json:"total"`
}

func newCartView(ct *Cart) cartView {
	items := make([]itemView, 0, len(ct.Items))
	for _, it := range ct.Items {
		items = append(items, itemView{Item: it, LineTotal: it.LineTotal()})
	}
	return cartView{
		Items:           items,
		DiscountPercent: ct.DiscountPercent,
		Subtotal:        ct.Subtotal(),
		DiscountAmount:  ct.DiscountAmount(),
		Tax:             ct.Tax(),
		Total:           ct.Total(),
	}
}

type addItemRequest struct {
	ProductName string `json:"productName"`
	// Price is the raw string the storefront read off the product markup;
	// the service decides whether it parses.
	Price string `json:"price"`
}

func (h *Handler) addItem(c *fiber.Ctx) error {
	payload := new(addItemRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	sid, err := session.FromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	ct, err := h.service.AddItem(c.Context(), sid, payload.ProductName, payload.Price)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(newCartView(ct))
}

func (h *Handler) getCart(c *fiber.Ctx) error {
	sid, err := session.FromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	return c.JSON(newCartView(h.service.Get(c.Context(), sid)))
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) updateQuantity(c *fiber.Ctx) error {
	payload := new(updateQuantityRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	sid, err := session.FromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	ct, err := h.service.UpdateQuantity(c.Context(), sid, c.Params("id"), payload.Quantity)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(newCartView(ct))
}

func (h *Handler) removeItem(c *fiber.Ctx) error {
	sid, err := session.FromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	ct, err := h.service.RemoveItem(c.Context(), sid, c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(newCartView(ct))
}

type promoRequest struct {
	Code string `json:"code"`
}

func (h *Handler) applyPromo(c *fiber.Ctx) error {
	payload := new(promoRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	sid, err := session.FromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	ct, res, err := h.service.ApplyPromo(c.Context(), sid, payload.Code)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	status := fiber.StatusOK
	if !res.Applied {
		status = fiber.StatusUnprocessableEntity
	}
	return c.Status(status).JSON(fiber.Map{"result": res, "cart": newCartView(ct)})
}

func (h *Handler) clearCart(c *fiber.Ctx) error {
	sid, err := session.FromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	if _, err := h.service.Clear(c.Context(), sid); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

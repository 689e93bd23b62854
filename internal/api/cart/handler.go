package cart

import (
	"context"
	"encoding/json"
	"net/http"

	"gocart/internal/api/respond"
	"gocart/internal/domain"
	apperror "gocart/internal/errors"
	"gocart/internal/pkg/logger"
)

// CartService define o contrato que o Handler espera da camada de
// Serviço de carrinho.
type CartService interface {
	SetQuantity(ctx context.Context, userID, sku string, quantity int) error
	RemoveItem(ctx context.Context, userID, sku string) error
	View(ctx context.Context, userID string) (domain.CartView, error)
}

// CheckoutService define o contrato do Checkout Engine usado pelo Handler.
type CheckoutService interface {
	Checkout(ctx context.Context, userID, promoCode string) (domain.Transaction, error)
}

// Handler agrupa os métodos HTTP de carrinho e checkout.
type Handler struct {
	Cart     CartService
	Checkout CheckoutService
	Logger   logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando os Services e o Logger.
func NewHandler(cartSvc CartService, checkoutSvc CheckoutService, log logger.Logger) *Handler {
	return &Handler{Cart: cartSvc, Checkout: checkoutSvc, Logger: log}
}

// GetCartHandler lida com GET /carts/{userID}.
func (h *Handler) GetCartHandler(w http.ResponseWriter, r *http.Request) {
	h.respondWithView(w, r, r.PathValue("userID"), http.StatusOK)
}

// AddItemHandler lida com POST /carts/{userID}/items.
func (h *Handler) AddItemHandler(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userID")

	var item domain.CartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		respond.Error(w, r, h.Logger, apperror.NewValidationError("invalid JSON payload"))
		return
	}
	if item.SKU == "" {
		respond.Error(w, r, h.Logger, apperror.NewValidationError("sku is required"))
		return
	}

	if err := h.Cart.SetQuantity(r.Context(), userID, item.SKU, item.Quantity); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	h.respondWithView(w, r, userID, http.StatusCreated)
}

// UpdateItemHandler lida com PATCH /carts/{userID}/items/{sku}.
// Quantidade <= 0 equivale a remover o item.
func (h *Handler) UpdateItemHandler(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userID")
	sku := r.PathValue("sku")

	var patch domain.QuantityUpdate
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respond.Error(w, r, h.Logger, apperror.NewValidationError("invalid JSON payload"))
		return
	}

	if err := h.Cart.SetQuantity(r.Context(), userID, sku, patch.Quantity); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	h.respondWithView(w, r, userID, http.StatusOK)
}

// RemoveItemHandler lida com DELETE /carts/{userID}/items/{sku}.
func (h *Handler) RemoveItemHandler(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userID")

	if err := h.Cart.RemoveItem(r.Context(), userID, r.PathValue("sku")); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	h.respondWithView(w, r, userID, http.StatusOK)
}

// CheckoutHandler lida com POST /carts/{userID}/checkout.
func (h *Handler) CheckoutHandler(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userID")

	var req domain.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, r, h.Logger, apperror.NewValidationError("invalid JSON payload"))
		return
	}

	tx, err := h.Checkout.Checkout(r.Context(), userID, req.PromoCode)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, r, h.Logger, http.StatusOK, tx)
}

// respondWithView devolve a visão atual do carrinho, o corpo de resposta
// comum a todas as mutações de carrinho.
func (h *Handler) respondWithView(w http.ResponseWriter, r *http.Request, userID string, status int) {
	view, err := h.Cart.View(r.Context(), userID)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, r, h.Logger, status, view)
}

package promo

import (
	"context"
	"encoding/json"
	"net/http"

	"gocart/internal/api/respond"
	"gocart/internal/domain"
	apperror "gocart/internal/errors"
	"gocart/internal/pkg/logger"
)

// PromoService define o contrato que o Handler espera da camada de
// Serviço de promoções.
type PromoService interface {
	CreatePromo(ctx context.Context, data domain.PromoCreate) (domain.Promo, error)
	ListPromos(ctx context.Context) ([]domain.Promo, error)
}

// Handler agrupa os métodos HTTP de códigos promocionais.
type Handler struct {
	Service PromoService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc PromoService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

// CreatePromoHandler lida com POST /admin/promos.
func (h *Handler) CreatePromoHandler(w http.ResponseWriter, r *http.Request) {
	var data domain.PromoCreate
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		respond.Error(w, r, h.Logger, apperror.NewValidationError("invalid JSON payload"))
		return
	}

	promo, err := h.Service.CreatePromo(r.Context(), data)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, r, h.Logger, http.StatusCreated, promo)
}

// ListPromosHandler lida com GET /admin/promos.
func (h *Handler) ListPromosHandler(w http.ResponseWriter, r *http.Request) {
	promos, err := h.Service.ListPromos(r.Context())
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, r, h.Logger, http.StatusOK, promos)
}

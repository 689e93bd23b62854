package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"gocart/internal/api/respond"
	"gocart/internal/domain"
	apperror "gocart/internal/errors"
	"gocart/internal/pkg/logger"
)

// CatalogService define o contrato que o Handler espera da camada de
// Serviço de catálogo.
type CatalogService interface {
	CreateProduct(ctx context.Context, data domain.ProductCreate) (domain.Product, error)
	UpdateProduct(ctx context.Context, id int, data domain.ProductUpdate) (domain.Product, error)
	DeleteProduct(ctx context.Context, id int) error
	GetProductByID(ctx context.Context, id int) (domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
}

// Handler agrupa os métodos HTTP do catálogo de produtos.
type Handler struct {
	Service CatalogService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc CatalogService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

// CreateProductHandler lida com POST /admin/products.
func (h *Handler) CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var data domain.ProductCreate
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		respond.Error(w, r, h.Logger, apperror.NewValidationError("invalid JSON payload"))
		return
	}

	product, err := h.Service.CreateProduct(r.Context(), data)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, r, h.Logger, http.StatusCreated, product)
}

// UpdateProductHandler lida com PUT /admin/products/{id}.
func (h *Handler) UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	var data domain.ProductUpdate
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		respond.Error(w, r, h.Logger, apperror.NewValidationError("invalid JSON payload"))
		return
	}

	product, err := h.Service.UpdateProduct(r.Context(), id, data)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, r, h.Logger, http.StatusOK, product)
}

// DeleteProductHandler lida com DELETE /admin/products/{id}.
func (h *Handler) DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	if err := h.Service.DeleteProduct(r.Context(), id); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, r, h.Logger, http.StatusNoContent, nil)
}

// GetProductHandler lida com GET /products/{id}.
func (h *Handler) GetProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	product, err := h.Service.GetProductByID(r.Context(), id)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, r, h.Logger, http.StatusOK, product)
}

// ListProductsHandler lida com GET /products.
func (h *Handler) ListProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := h.Service.ListProducts(r.Context())
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, r, h.Logger, http.StatusOK, products)
}

// productID extrai e valida o id do produto do path.
func productID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return 0, apperror.NewValidationError("product id must be an integer")
	}
	return id, nil
}

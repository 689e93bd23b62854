package router

import (
	"net/http"

	"gocart/internal/api/cart"
	"gocart/internal/api/catalog"
	"gocart/internal/api/promo"
	"gocart/internal/api/transaction"
)

// NewRouter configura e retorna o roteador HTTP principal.
// Recebe os Handlers já inicializados por injeção de dependências.
// Usamos o ServeMux padrão do net/http com method patterns; middlewares
// globais (rate limit, request id) envolvem o mux no main.go.
func NewRouter(catalogHandler *catalog.Handler, promoHandler *promo.Handler, cartHandler *cart.Handler, txHandler *transaction.Handler) http.Handler {
	mux := http.NewServeMux()

	// --- 1. Health Check ---
	mux.HandleFunc("GET /ping", PingHandler)

	// --- 2. Catálogo (admin + público) ---
	mux.HandleFunc("POST /admin/products", catalogHandler.CreateProductHandler)
	mux.HandleFunc("PUT /admin/products/{id}", catalogHandler.UpdateProductHandler)
	mux.HandleFunc("DELETE /admin/products/{id}", catalogHandler.DeleteProductHandler)
	mux.HandleFunc("GET /products", catalogHandler.ListProductsHandler)
	mux.HandleFunc("GET /products/{id}", catalogHandler.GetProductHandler)

	// --- 3. Promoções (admin) ---
	mux.HandleFunc("POST /admin/promos", promoHandler.CreatePromoHandler)
	mux.HandleFunc("GET /admin/promos", promoHandler.ListPromosHandler)

	// --- 4. Carrinho + Checkout (usuário) ---
	mux.HandleFunc("GET /carts/{userID}", cartHandler.GetCartHandler)
	mux.HandleFunc("POST /carts/{userID}/items", cartHandler.AddItemHandler)
	mux.HandleFunc("PATCH /carts/{userID}/items/{sku}", cartHandler.UpdateItemHandler)
	mux.HandleFunc("DELETE /carts/{userID}/items/{sku}", cartHandler.RemoveItemHandler)
	mux.HandleFunc("POST /carts/{userID}/checkout", cartHandler.CheckoutHandler)

	// --- 5. Histórico de transações (usuário) ---
	mux.HandleFunc("GET /users/{userID}/transactions", txHandler.ListTransactionsHandler)

	return mux
}

// PingHandler é uma função utilitária para o health check.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}

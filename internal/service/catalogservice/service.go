package catalogservice

import (
	"context"
	"fmt"

	"gocart/internal/domain"
	apperror "gocart/internal/errors"
	"gocart/internal/pkg/logger"
	"gocart/internal/pkg/memstore"
)

// CatalogStore define o contrato que o Serviço de Catálogo espera do
// store em memória. A implementação não tem lock próprio; este serviço
// segura o memstore.Guard durante a operação inteira.
type CatalogStore interface {
	NextID() int
	HasSKU(sku string) bool
	SKUOwnedByOther(sku string, productID int) bool
	Save(p domain.Product)
	FindByID(id int) (domain.Product, bool)
	All() []domain.Product
	UpdateInfo(id int, name, description *string) bool
	ReplaceVariants(id int, variants []domain.Variant) bool
	Remove(id int) (domain.Product, bool)
	FindVariant(sku string) (int, domain.Variant, bool)
	SetStock(sku string, stock int) bool
}

// CartSweeper é a fatia do Cart Store que o delete de produto usa para
// varrer dos carrinhos os SKUs que deixaram de existir.
type CartSweeper interface {
	Sweep(keep func(sku string) bool)
}

// Service implementa as operações do Catalog Store: CRUD de produtos,
// derivação de SKUs, resolução de variantes e ajuste de estoque.
type Service struct {
	guard   *memstore.Guard
	catalog CatalogStore
	carts   CartSweeper
	logger  logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Catálogo.
func NewService(guard *memstore.Guard, catalog CatalogStore, carts CartSweeper, logger logger.Logger) *Service {
	return &Service{guard: guard, catalog: catalog, carts: carts, logger: logger}
}

// CreateProduct atribui um id sequencial, deriva o SKU de cada variante e
// armazena o produto. A checagem de unicidade de SKU acontece ANTES de
// qualquer gravação: ou o produto inteiro entra, ou nada entra.
func (s *Service) CreateProduct(ctx context.Context, data domain.ProductCreate) (domain.Product, error) {
	if data.Name == "" {
		return domain.Product{}, apperror.NewValidationError("product name is required")
	}
	if err := validateVariantInputs(data.Variants); err != nil {
		return domain.Product{}, err
	}

	s.guard.Lock()
	defer s.guard.Unlock()

	id := s.catalog.NextID()

	variants := make([]domain.Variant, 0, len(data.Variants))
	seen := make(map[string]struct{}, len(data.Variants))
	for _, in := range data.Variants {
		sku := domain.MakeSKU(id, in.Size, in.Color)
		if _, dup := seen[sku]; dup || s.catalog.HasSKU(sku) {
			s.logger.Warn("SKU duplicado na criação de produto.", map[string]interface{}{"sku": sku})
			return domain.Product{}, apperror.NewConflictError(fmt.Sprintf("duplicate SKU %s", sku))
		}
		seen[sku] = struct{}{}
		variants = append(variants, domain.Variant{
			SKU:   sku,
			Size:  in.Size,
			Color: in.Color,
			Price: in.Price,
			Stock: in.Stock,
		})
	}

	product := domain.Product{
		ID:          id,
		Name:        data.Name,
		Description: data.Description,
		Variants:    variants,
	}
	s.catalog.Save(product)

	s.logger.Info("Produto criado.", map[string]interface{}{"id": id, "variants": len(variants)})
	return product, nil
}

// UpdateProduct substitui nome/descrição quando informados e, se a lista
// de variantes vier no payload, substitui a lista INTEIRA. Os novos SKUs
// são validados contra o índice (ignorando os do próprio produto) antes
// de remover qualquer entrada antiga, então uma colisão deixa catálogo e
// índice intactos.
func (s *Service) UpdateProduct(ctx context.Context, id int, data domain.ProductUpdate) (domain.Product, error) {
	if data.Variants != nil {
		if err := validateVariantInputs(data.Variants); err != nil {
			return domain.Product{}, err
		}
	}

	s.guard.Lock()
	defer s.guard.Unlock()

	if _, ok := s.catalog.FindByID(id); !ok {
		return domain.Product{}, apperror.NewNotFoundError("Product not found")
	}

	if data.Variants != nil {
		variants := make([]domain.Variant, 0, len(data.Variants))
		seen := make(map[string]struct{}, len(data.Variants))
		for _, in := range data.Variants {
			sku := domain.MakeSKU(id, in.Size, in.Color)
			if _, dup := seen[sku]; dup || s.catalog.SKUOwnedByOther(sku, id) {
				s.logger.Warn("SKU duplicado na substituição de variantes.", map[string]interface{}{"product_id": id, "sku": sku})
				return domain.Product{}, apperror.NewConflictError(fmt.Sprintf("duplicate SKU %s", sku))
			}
			seen[sku] = struct{}{}
			variants = append(variants, domain.Variant{
				SKU:   sku,
				Size:  in.Size,
				Color: in.Color,
				Price: in.Price,
				Stock: in.Stock,
			})
		}
		s.catalog.ReplaceVariants(id, variants)
	}

	s.catalog.UpdateInfo(id, data.Name, data.Description)

	updated, _ := s.catalog.FindByID(id)
	s.logger.Info("Produto atualizado.", map[string]interface{}{"id": id})
	return updated, nil
}

// DeleteProduct remove o produto, desregistra seus SKUs do índice e
// varre TODOS os carrinhos removendo entradas cujo SKU deixou de ser
// válido — tudo na mesma seção crítica.
func (s *Service) DeleteProduct(ctx context.Context, id int) error {
	s.guard.Lock()
	defer s.guard.Unlock()

	removed, ok := s.catalog.Remove(id)
	if !ok {
		return apperror.NewNotFoundError("Product not found")
	}

	s.carts.Sweep(func(sku string) bool {
		return s.catalog.HasSKU(sku)
	})

	s.logger.Info("Produto removido e carrinhos varridos.", map[string]interface{}{"id": id, "skus": len(removed.Variants)})
	return nil
}

// GetProductByID busca um produto pelo id.
func (s *Service) GetProductByID(ctx context.Context, id int) (domain.Product, error) {
	s.guard.RLock()
	defer s.guard.RUnlock()

	product, ok := s.catalog.FindByID(id)
	if !ok {
		return domain.Product{}, apperror.NewNotFoundError("Product not found")
	}
	return product, nil
}

// ListProducts retorna todos os produtos em ordem de inserção.
func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	s.guard.RLock()
	defer s.guard.RUnlock()

	return s.catalog.All(), nil
}

// FindVariant resolve um SKU para (id do produto, variante).
func (s *Service) FindVariant(ctx context.Context, sku string) (int, domain.Variant, error) {
	s.guard.RLock()
	defer s.guard.RUnlock()

	productID, variant, ok := s.catalog.FindVariant(sku)
	if !ok {
		return 0, domain.Variant{}, apperror.NewNotFoundError("SKU not found")
	}
	return productID, variant, nil
}

// AdjustStock aplica um delta ao estoque de uma variante. A checagem de
// estoque resultante não-negativo e a gravação acontecem sob o mesmo
// lock: estoque negativo nunca é observável.
func (s *Service) AdjustStock(ctx context.Context, sku string, delta int) (int, error) {
	s.guard.Lock()
	defer s.guard.Unlock()

	_, variant, ok := s.catalog.FindVariant(sku)
	if !ok {
		return 0, apperror.NewNotFoundError("SKU not found")
	}

	newStock := variant.Stock + delta
	if newStock < 0 {
		s.logger.Warn("Ajuste rejeitado: estoque insuficiente.", map[string]interface{}{"sku": sku, "stock": variant.Stock, "delta": delta})
		return 0, apperror.NewValidationError("insufficient stock")
	}

	s.catalog.SetStock(sku, newStock)

	s.logger.Debug("Estoque ajustado.", map[string]interface{}{"sku": sku, "delta": delta, "new_stock": newStock})
	return newStock, nil
}

// validateVariantInputs valida tamanho, cor, preço e estoque de cada
// variante do payload.
func validateVariantInputs(variants []domain.VariantInput) error {
	for i, v := range variants {
		if !v.Size.Valid() {
			return apperror.NewValidationError(fmt.Sprintf("variant %d: size must be one of s, m, l", i+1))
		}
		if !v.Color.Valid() {
			return apperror.NewValidationError(fmt.Sprintf("variant %d: unknown color %q", i+1, string(v.Color)))
		}
		if v.Price <= 0 {
			return apperror.NewValidationError(fmt.Sprintf("variant %d: price must be positive", i+1))
		}
		if v.Stock < 0 {
			return apperror.NewValidationError(fmt.Sprintf("variant %d: stock must not be negative", i+1))
		}
	}
	return nil
}

package seed

import (
	"context"

	"gocart/internal/domain"
	"gocart/internal/pkg/logger"
)

// Catalog é a fatia do Serviço de Catálogo que o seeding usa.
type Catalog interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	CreateProduct(ctx context.Context, data domain.ProductCreate) (domain.Product, error)
}

// DemoProduct monta a fixture de demonstração: um produto com 3 tamanhos
// x 4 cores (12 variantes), estoque 10 em cada.
func DemoProduct() domain.ProductCreate {
	prices := []struct {
		size  domain.Size
		price float64
	}{
		{domain.SizeS, 100.0},
		{domain.SizeM, 120.0},
		{domain.SizeL, 140.0},
	}
	colors := []domain.Color{domain.ColorBiru, domain.ColorCoklat, domain.ColorHijau, domain.ColorPink}

	variants := make([]domain.VariantInput, 0, len(prices)*len(colors))
	for _, p := range prices {
		for _, c := range colors {
			variants = append(variants, domain.VariantInput{
				Size:  p.size,
				Color: c,
				Price: p.price,
				Stock: 10,
			})
		}
	}

	return domain.ProductCreate{
		Name:        "Tas Anyam",
		Description: "Tas anyaman dengan berbagai ukuran dan warna",
		Variants:    variants,
	}
}

// Demo popula o catálogo com a fixture de demonstração no startup,
// apenas se o catálogo estiver vazio. É uma fixture, não comportamento
// de negócio: falha de seeding não derruba o servidor.
func Demo(ctx context.Context, catalog Catalog, log logger.Logger) error {
	products, err := catalog.ListProducts(ctx)
	if err != nil {
		return err
	}
	if len(products) > 0 {
		log.Debug("Catálogo já populado, seeding ignorado.", map[string]interface{}{"products": len(products)})
		return nil
	}

	product, err := catalog.CreateProduct(ctx, DemoProduct())
	if err != nil {
		return err
	}

	log.Info("Catálogo de demonstração semeado.", map[string]interface{}{"id": product.ID, "variants": len(product.Variants)})
	return nil
}

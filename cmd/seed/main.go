// seed carga datos de demostración en el catálogo. La API no expone endpoints
// de creación: este comando (o un fixture equivalente) es la única vía de alta.
//
// Uso: go run ./cmd/seed
// Lee la misma configuración de BD que cmd/api (DATABASE_URL o DB_*).
package main

import (
	"context"
	"time"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/postgres"
	"github.com/jhoicas/catalogo-api/pkg/config"
	"github.com/jhoicas/catalogo-api/pkg/logger"
	"github.com/shopspring/decimal"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	articleRepo := postgres.NewArticleRepository(pool)

	now := time.Now()

	type articleSeed struct {
		name  string
		price string
	}
	type productSeed struct {
		name     string
		active   bool
		articles []articleSeed
	}
	type categorySeed struct {
		name        string
		description string
		active      bool
		products    []productSeed
	}

	seeds := []categorySeed{
		{
			name: "Fruits", description: "Fruits frais", active: true,
			products: []productSeed{
				{name: "Ananas", active: true, articles: []articleSeed{
					{name: "Ananas pièce", price: "3.50"},
					{name: "Ananas lot de 2", price: "6.00"},
				}},
				{name: "Banane", active: false, articles: []articleSeed{
					{name: "Banane kg", price: "1.99"},
				}},
			},
		},
		{
			name: "Légumes", description: "Légumes de saison", active: true,
			products: []productSeed{
				{name: "Tomate", active: true, articles: []articleSeed{
					{name: "Tomate grappe kg", price: "2.80"},
				}},
			},
		},
		{
			name: "Ordinateur", description: "Matériel informatique", active: false,
		},
	}

	for _, cs := range seeds {
		category := &entity.Category{
			Name:        cs.name,
			Description: cs.description,
			Active:      cs.active,
			DateCreated: now,
			DateUpdated: now,
		}
		if err := categoryRepo.Create(category); err != nil {
			log.Fatal().Err(err).Str("category", cs.name).Msg("insertar categoría")
		}
		for _, ps := range cs.products {
			product := &entity.Product{
				CategoryID:  category.ID,
				Name:        ps.name,
				Active:      ps.active,
				DateCreated: now,
				DateUpdated: now,
			}
			if err := productRepo.Create(product); err != nil {
				log.Fatal().Err(err).Str("product", ps.name).Msg("insertar producto")
			}
			for _, as := range ps.articles {
				price, err := decimal.NewFromString(as.price)
				if err != nil {
					log.Fatal().Err(err).Str("article", as.name).Msg("precio inválido")
				}
				article := &entity.Article{
					ProductID:   product.ID,
					Name:        as.name,
					Price:       price,
					Active:      true,
					DateCreated: now,
					DateUpdated: now,
				}
				if err := articleRepo.Create(article); err != nil {
					log.Fatal().Err(err).Str("article", as.name).Msg("insertar artículo")
				}
			}
		}
		log.Info().Str("category", cs.name).Int("products", len(cs.products)).Msg("categoría sembrada")
	}

	log.Info().Msg("seed completado")
}

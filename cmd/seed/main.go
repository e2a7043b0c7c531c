// Seed del catálogo: descarga los productos del API Fake Store y los
// upserta por external_id, así que puede correrse las veces que haga falta.
//
//	go run ./cmd/seed
package main

import (
	"context"
	"time"

	"github.com/tu-usuario/storefront-api/internal/infrastructure/fakestore"
	"github.com/tu-usuario/storefront-api/internal/infrastructure/postgres"
	"github.com/tu-usuario/storefront-api/pkg/config"
	"github.com/tu-usuario/storefront-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info", Service: "seed"})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("aplicar esquema")
	}

	client := fakestore.NewClient(cfg.Seed.FakeStoreURL)
	products, err := client.FetchProducts(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("descargar catálogo de Fake Store")
	}

	repo := postgres.NewProductRepository(pool)
	created, updated := 0, 0
	for _, p := range products {
		isNew, err := repo.UpsertByExternalID(p)
		if err != nil {
			log.Fatal().Err(err).Int("external_id", *p.ExternalID).Msg("upsert de producto")
		}
		if isNew {
			created++
		} else {
			updated++
		}
	}

	log.Info().
		Int("created", created).
		Int("updated", updated).
		Msg("catálogo importado desde Fake Store")
}

// /internal/database/seed.go
package database

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// SeedDessert é uma sobremesa inicial inserida pelo seed.
type SeedDessert struct {
	Name   string
	Recipe string
}

// DefaultSeed é o cardápio inicial usado quando SEED_DESSERTS=true.
var DefaultSeed = []SeedDessert{
	{Name: "Tiramisu", Recipe: "layer, chill"},
	{Name: "Brigadeiro", Recipe: "condensed milk, cocoa, butter; stir, roll"},
	{Name: "Pudim", Recipe: "caramel, eggs, milk; bake in water bath"},
}

// SeedDesserts insere items somente se a tabela estiver vazia.
// Retorna quantas linhas foram inseridas.
func SeedDesserts(ctx context.Context, store *DessertStore, items []SeedDessert) (int, error) {
	n, err := store.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		log.WithField("count", n).Info("Desserts table not empty, skipping seed")
		return 0, nil
	}

	inserted := 0
	for _, item := range items {
		name, recipe := item.Name, item.Recipe
		if _, err := store.Create(ctx, &name, &recipe); err != nil {
			return inserted, fmt.Errorf("seed %q: %w", item.Name, err)
		}
		inserted++
	}
	log.WithField("count", inserted).Info("Seeded desserts")
	return inserted, nil
}

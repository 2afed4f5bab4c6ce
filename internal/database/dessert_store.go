// /internal/database/dessert_store.go
package database

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ericoliveiras/dessert-api/internal/model"
)

// DessertStore executa os quatro comandos da tabela desserts.
// Cada método é um único comando parametrizado, sem transação explícita.
type DessertStore struct {
	DB *gorm.DB
}

// NewDessertStore cria o store sobre um handle já conectado.
func NewDessertStore(db *gorm.DB) *DessertStore {
	return &DessertStore{DB: db}
}

// List retorna todas as sobremesas na ordem natural do SQLite.
func (s *DessertStore) List(ctx context.Context) ([]model.Dessert, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	desserts := make([]model.Dessert, 0)
	if err := s.DB.WithContext(ctx).Find(&desserts).Error; err != nil {
		return nil, &StorageError{Op: "list desserts", Err: err}
	}
	return desserts, nil
}

// Create insere uma sobremesa e retorna o id atribuído pelo SQLite.
func (s *DessertStore) Create(ctx context.Context, name, recipe *string) (int64, error) {
	if err := s.ready(); err != nil {
		return 0, err
	}
	dessert := model.Dessert{DessertName: name, Recipe: recipe}
	if err := s.DB.WithContext(ctx).Create(&dessert).Error; err != nil {
		return 0, &StorageError{Op: "create dessert", Err: err}
	}
	return dessert.ID, nil
}

// UpdateName troca o nome da sobremesa com o id informado.
// O id vai para o comando como veio da rota; nenhuma linha afetada não é erro.
func (s *DessertStore) UpdateName(ctx context.Context, id string, name *string) error {
	if err := s.ready(); err != nil {
		return err
	}
	err := s.DB.WithContext(ctx).
		Model(&model.Dessert{}).
		Where("id = ?", id).
		Update("dessert_name", name).Error
	if err != nil {
		return &StorageError{Op: fmt.Sprintf("update dessert %q", id), Err: err}
	}
	return nil
}

// Delete remove a sobremesa com o id informado, se existir.
func (s *DessertStore) Delete(ctx context.Context, id string) error {
	if err := s.ready(); err != nil {
		return err
	}
	if err := s.DB.WithContext(ctx).Where("id = ?", id).Delete(&model.Dessert{}).Error; err != nil {
		return &StorageError{Op: fmt.Sprintf("delete dessert %q", id), Err: err}
	}
	return nil
}

// Count retorna o total de linhas; usado pelo seed.
func (s *DessertStore) Count(ctx context.Context) (int64, error) {
	if err := s.ready(); err != nil {
		return 0, err
	}
	var n int64
	if err := s.DB.WithContext(ctx).Model(&model.Dessert{}).Count(&n).Error; err != nil {
		return 0, &StorageError{Op: "count desserts", Err: err}
	}
	return n, nil
}

func (s *DessertStore) ready() error {
	if s == nil || s.DB == nil {
		return errors.New("storage is not configured")
	}
	return nil
}

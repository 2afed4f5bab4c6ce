// /internal/model/dessert.go
package model

// Dessert representa uma linha da tabela desserts.
// Nome e receita aceitam NULL, por isso são ponteiros.
type Dessert struct {
	ID          int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	DessertName *string `json:"dessert_name" gorm:"column:dessert_name"`
	Recipe      *string `json:"recipe" gorm:"column:recipe"`
}

// TableName fixa o nome da tabela usada pelo GORM.
func (Dessert) TableName() string {
	return "desserts"
}

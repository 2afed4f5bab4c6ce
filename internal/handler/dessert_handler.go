package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	log "github.com/sirupsen/logrus"

	"github.com/ericoliveiras/dessert-api/internal/database"
	"github.com/ericoliveiras/dessert-api/internal/model"
)

// Mensagens de sucesso devolvidas ao cliente.
const (
	MsgDessertAdded   = "Dessert added successfully!"
	MsgDessertUpdated = "Dessert updated successfully!"
	MsgDessertDeleted = "Dessert deleted successfully!"
)

// DessertStore é o acesso ao banco que os handlers precisam.
type DessertStore interface {
	List(ctx context.Context) ([]model.Dessert, error)
	Create(ctx context.Context, name, recipe *string) (int64, error)
	UpdateName(ctx context.Context, id string, name *string) error
	Delete(ctx context.Context, id string) error
}

// DessertHandler agrupa os handlers de /desserts.
type DessertHandler struct {
	Store DessertStore
}

// CreateDessertRequest é o corpo aceito pelo POST. Campos ausentes viram NULL;
// números e booleanos são gravados como texto.
type CreateDessertRequest struct {
	DessertName any `json:"dessert_name"`
	Recipe      any `json:"recipe"`
}

// UpdateDessertRequest é o corpo aceito pelo PUT.
type UpdateDessertRequest struct {
	DessertName any `json:"dessert_name"`
}

// ListDesserts retorna todas as sobremesas.
func (h *DessertHandler) ListDesserts(c *gin.Context) {
	desserts, err := h.Store.List(c.Request.Context())
	if err != nil {
		h.storageError(c, err)
		return
	}
	c.JSON(http.StatusOK, desserts)
}

// CreateDessert insere uma sobremesa e devolve o id gerado.
func (h *DessertHandler) CreateDessert(c *gin.Context) {
	var req CreateDessertRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	id, err := h.Store.Create(c.Request.Context(), textValue(req.DessertName), textValue(req.Recipe))
	if err != nil {
		h.storageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "message": MsgDessertAdded})
}

// UpdateDessert troca o nome. Um id inexistente também responde 200.
func (h *DessertHandler) UpdateDessert(c *gin.Context) {
	var req UpdateDessertRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	if err := h.Store.UpdateName(c.Request.Context(), c.Param("id"), textValue(req.DessertName)); err != nil {
		h.storageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": MsgDessertUpdated})
}

// DeleteDessert remove a sobremesa. Um id inexistente também responde 200.
func (h *DessertHandler) DeleteDessert(c *gin.Context) {
	if err := h.Store.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.storageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": MsgDessertDeleted})
}

// storageError responde 500 com a mensagem do engine e loga o erro completo.
func (h *DessertHandler) storageError(c *gin.Context, err error) {
	log.WithFields(log.Fields{
		"request_id": c.GetString(RequestIDKey),
		"err":        err,
	}).Error("Storage operation failed")

	msg := err.Error()
	var storageErr *database.StorageError
	if errors.As(err, &storageErr) {
		msg = storageErr.Err.Error()
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}

// bindOptionalJSON só lê o corpo quando ele é application/json; qualquer
// outro tipo, ou corpo vazio, vale como objeto vazio.
// JSON sintaticamente inválido responde 400 e retorna false.
func bindOptionalJSON(c *gin.Context, dst any) bool {
	if c.ContentType() != binding.MIMEJSON {
		return true
	}
	err := c.ShouldBindJSON(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	return false
}

// textValue converte um valor JSON no texto que a coluna TEXT guardaria.
func textValue(v any) *string {
	var text string
	switch x := v.(type) {
	case nil:
		return nil
	case string:
		text = x
	case float64:
		text = strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		text = "0"
		if x {
			text = "1"
		}
	default:
		raw, err := json.Marshal(x)
		if err != nil {
			return nil
		}
		text = string(raw)
	}
	return &text
}

package handler

import "github.com/gin-gonic/gin"

// NewRouter monta o engine com os middlewares e as rotas de /desserts.
func NewRouter(desserts *DessertHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), AccessLog())

	router.GET("/desserts", desserts.ListDesserts)
	router.POST("/desserts", desserts.CreateDessert)
	router.PUT("/desserts/:id", desserts.UpdateDessert)
	router.DELETE("/desserts/:id", desserts.DeleteDessert)

	return router
}

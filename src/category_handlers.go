package main

import (
	"ers/src/middlewares"
	"ers/src/types"
	"ers/src/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

func categoryPublicHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/categories", func(ctx *gin.Context) {
			categories, err := utils.GetCategories()
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": categories})
		}).
		GET("/categories/:slug", func(ctx *gin.Context) {
			var params types.SlugRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			category, err := utils.GetCategoryBySlug(params.Slug)
			if err != nil {
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": category})
		})
	return g
}

func categoryHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.POST("/categories", middlewares.RequireRole(types.ROLE_ADMIN), func(ctx *gin.Context) {
		var body types.CreateCategoryRequestBody
		if err := ctx.ShouldBindJSON(&body); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		category, err := utils.CreateCategory(&body)
		if err != nil {
			respondError(ctx, err)
			return
		}
		ctx.JSON(http.StatusCreated, gin.H{"data": category})
	})
	return g
}

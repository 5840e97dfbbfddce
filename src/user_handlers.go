package main

import (
	"ers/src/db"
	"ers/src/models"
	"ers/src/types"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

func userHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/users/me", func(ctx *gin.Context) {
			userId := ctx.GetUint("id")
			db := db.GetDb()
			var user models.User
			if err := db.
				Where(&models.User{ID: userId}).
				First(&user).
				Error; err != nil {
				log.Printf("Error retrieving user [%d]: %s\n", userId, err.Error())
				ctx.Status(http.StatusNotFound)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": user})
		}).
		PATCH("/users/me", func(ctx *gin.Context) {
			var body types.UpdateProfileRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			userId := ctx.GetUint("id")
			updates := map[string]any{}
			if body.Name != nil {
				updates["name"] = *body.Name
			}
			if body.Phone != nil {
				updates["phone"] = *body.Phone
			}
			db := db.GetDb()
			if len(updates) > 0 {
				if err := db.
					Model(&models.User{}).
					Where(&models.User{ID: userId}).
					Updates(updates).
					Error; err != nil {
					log.Printf("Error updating user [%d]: %s\n", userId, err.Error())
					ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
					return
				}
			}
			var user models.User
			if err := db.
				Where(&models.User{ID: userId}).
				First(&user).
				Error; err != nil {
				ctx.Status(http.StatusNotFound)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": user})
		})
	return g
}

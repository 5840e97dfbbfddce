package main

import (
	"ers/src/common"
	"ers/src/types"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// registrationHandlers exposes every action under the plural resource and
// keeps the legacy singular paths as aliases so older clients keep working.
// Static segments (user/event) register before the :id actions.
func registrationHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	create := func(ctx *gin.Context) {
		var body types.CreateRegistrationRequestBody
		if err := ctx.ShouldBindJSON(&body); err != nil {
			log.Printf("Error in validating request: %s\n", err.Error())
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		userId := ctx.GetUint("id")
		registration, err := common.RegisterForEvent(userId, &body)
		if err != nil {
			log.Printf("Error registering user [%d] for event [%d]: %s\n", userId, body.EventID, err.Error())
			respondError(ctx, err)
			return
		}
		ctx.JSON(http.StatusCreated, gin.H{"data": registration})
	}

	listOwn := func(ctx *gin.Context) {
		userId := ctx.GetUint("id")
		registrations, err := common.GetRegistrationsByUser(userId)
		if err != nil {
			respondError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"data": registrations})
	}

	listByEvent := func(ctx *gin.Context) {
		var params types.EventIDRequestParams
		if err := ctx.ShouldBindUri(&params); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		userId := ctx.GetUint("id")
		role := ctx.GetString("role")
		registrations, err := common.GetRegistrationsByEvent(params.EventID, userId, role)
		if err != nil {
			respondError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"data": registrations})
	}

	cancel := func(ctx *gin.Context) {
		var params types.SimpleRequestParams
		if err := ctx.ShouldBindUri(&params); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		userId := ctx.GetUint("id")
		role := ctx.GetString("role")
		registration, err := common.CancelRegistration(userId, role, params.ID)
		if err != nil {
			log.Printf("Error cancelling registration [%d]: %s\n", params.ID, err.Error())
			respondError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"data": registration})
	}

	checkIn := func(ctx *gin.Context) {
		var params types.SimpleRequestParams
		if err := ctx.ShouldBindUri(&params); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		userId := ctx.GetUint("id")
		role := ctx.GetString("role")
		registration, err := common.CheckInAttendee(userId, role, params.ID)
		if err != nil {
			log.Printf("Error checking in registration [%d]: %s\n", params.ID, err.Error())
			respondError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"data": registration})
	}

	downloadQR := func(ctx *gin.Context) {
		var params types.SimpleRequestParams
		if err := ctx.ShouldBindUri(&params); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		userId := ctx.GetUint("id")
		role := ctx.GetString("role")
		data, err := common.GetRegistrationQR(userId, role, params.ID)
		if err != nil {
			log.Printf("Error downloading QR for registration [%d]: %s\n", params.ID, err.Error())
			respondError(ctx, err)
			return
		}
		ctx.Data(http.StatusOK, "image/jpeg", data)
	}

	g.
		POST("/registrations", create).
		GET("/registrations", listOwn).
		DELETE("/registrations/:id", cancel).
		POST("/registrations/:id/checkin", checkIn).
		GET("/registrations/:id/qr", downloadQR)

	g.
		POST("/registration", create).
		GET("/registration/user/my-registrations", listOwn).
		GET("/registration/event/:eventId", listByEvent).
		POST("/registration/:id/cancel", cancel).
		POST("/registration/:id/check-in", checkIn)

	return g
}

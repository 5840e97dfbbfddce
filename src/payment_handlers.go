package main

import (
	"encoding/json"
	"ers/src/common"
	"ers/src/types"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

func paymentHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.POST("/payments/checkout", func(ctx *gin.Context) {
		var body types.CreateCheckoutRequestBody
		if err := ctx.ShouldBindJSON(&body); err != nil {
			log.Printf("Error in validating request: %s\n", err.Error())
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		userId := ctx.GetUint("id")
		url, err := common.CreateCheckoutSession(userId, body.RegistrationID)
		if err != nil {
			respondError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"url": url})
	})
	g.GET("/payments/:id", func(ctx *gin.Context) {
		var params types.SimpleRequestParams
		if err := ctx.ShouldBindUri(&params); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		userId := ctx.GetUint("id")
		role := ctx.GetString("role")
		payment, err := common.GetPayment(userId, role, params.ID)
		if err != nil {
			respondError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"data": payment})
	})
	return g
}

func stripeWebhookRoute(g *gin.Engine) *gin.RouterGroup {
	apiv1 := apiv1Group(g)
	handler := func(ctx *gin.Context) {
		payload, err := io.ReadAll(ctx.Request.Body)
		if err != nil {
			log.Printf("Error reading request body: %s\n", err.Error())
			ctx.Status(http.StatusServiceUnavailable)
			return
		}
		whsecret := os.Getenv("STRIPE_WEBHOOK_SECRET")
		event, err := webhook.ConstructEvent(payload, ctx.GetHeader("Stripe-Signature"), whsecret)
		if err != nil {
			log.Printf("Error verifying webhook signature: %s\n", err.Error())
			ctx.Status(http.StatusBadRequest)
			return
		}
		log.Printf("[StripeEvent] %s\n", event.Type)
		switch event.Type {
		case "checkout.session.completed":
			var cs stripe.CheckoutSession
			if err := json.Unmarshal(event.Data.Raw, &cs); err != nil {
				log.Printf("[Stripe] Error parsing CheckoutSession: %s\n", err.Error())
				break
			}
			if err := common.CompletePayment(cs.ID); err != nil {
				log.Printf("Error completing payment for session %s: %s\n", cs.ID, err.Error())
			}
		default:
			log.Printf("[StripeEvent] Unhandled event type: %s\n", event.Type)
		}
		ctx.Status(http.StatusOK)
	}
	apiv1.POST("/payments/webhook", handler)
	apiv1.POST("/webhook/stripe", handler)
	return apiv1
}

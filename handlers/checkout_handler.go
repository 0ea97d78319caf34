package handlers

import (
	"carcommerce/models"
	"carcommerce/store"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"net/http"
)

// CheckoutHandler snapshots the session's cart into an order and clears the
// cart. Prices come from the catalog at checkout time, not cart-add time; a
// cart line whose product cannot be resolved is kept in the snapshot with a
// null product and a price of zero, matching the cart view's degrade policy.
// An empty cart is not an error and produces an order with a zero total.
func CheckoutHandler(c *gin.Context, s store.Store) {
	var checkoutReq struct {
		SessionID *string `json:"session_id"`
	}
	if err := c.ShouldBindJSON(&checkoutReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "failed to bind request body",
			"error":   err.Error(),
		})
		return
	}
	if checkoutReq.SessionID == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "invalid checkout request",
			"field":   "session_id",
			"error":   "session_id is required",
		})
		return
	}
	sessionID := *checkoutReq.SessionID

	items, err := s.FindCartItems(c, sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "failed to read cart",
			"error":   err.Error(),
		})
		return
	}

	total := decimal.Zero
	snapshots := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		price := decimal.Zero
		var product *models.Car
		if car, err := s.GetCar(c, item.ProductID); err == nil {
			product = &car
			price = decimal.NewFromFloat(car.Price)
		}
		subtotal := price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(subtotal)
		snapshots = append(snapshots, models.OrderItem{
			Product:  product,
			Quantity: item.Quantity,
			Subtotal: subtotal.InexactFloat64(),
		})
	}

	order := models.Order{
		SessionID: sessionID,
		Items:     snapshots,
		//totals round half to even at the cent
		Total:  total.RoundBank(2).InexactFloat64(),
		Status: "created",
	}

	orderID, err := s.InsertOrder(c, order)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "failed to create order",
			"error":   err.Error(),
		})
		return
	}

	//cart clearing is unconditional once the order is persisted; there is no
	//transaction linking the two writes
	if _, err := s.DeleteCartItems(c, sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "failed to clear cart",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order_id": orderID,
		"total":    order.Total,
	})
}

package handlers

import (
	"carcommerce/models"
	"carcommerce/store"
	"github.com/gin-gonic/gin"
	"net/http"
)

func AddToCartHandler(c *gin.Context, s store.Store) {
	var cartItemReq struct {
		SessionID string `json:"session_id"`
		ProductID string `json:"product_id"`
		Quantity  *int   `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&cartItemReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "failed to bind request body",
			"error":   err.Error(),
		})
		return
	}

	//quantity defaults to 1 when the field is absent
	quantity := 1
	if cartItemReq.Quantity != nil {
		quantity = *cartItemReq.Quantity
	}

	item := models.CartItem{
		SessionID: cartItemReq.SessionID,
		ProductID: cartItemReq.ProductID,
		Quantity:  quantity,
	}
	if verr := item.Validate(); verr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "invalid cart item",
			"field":   verr.Field,
			"error":   verr.Message,
		})
		return
	}

	//product_id is stored as given; a dangling reference surfaces as a null
	//product when the cart is read back
	id, err := s.InsertCartItem(c, item)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "failed to add to cart",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// GetCartHandler returns the session's cart items joined to their cars. A cart
// line whose product reference is malformed or no longer exists degrades to a
// null product with the quantity intact instead of failing the whole call.
func GetCartHandler(c *gin.Context, s store.Store) {
	sessionID := c.Param("sessionID")

	items, err := s.FindCartItems(c, sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "failed to read cart",
			"error":   err.Error(),
		})
		return
	}

	lines := make([]models.CartLine, 0, len(items))
	for _, item := range items {
		var product *models.Car
		if car, err := s.GetCar(c, item.ProductID); err == nil {
			product = &car
		}
		lines = append(lines, models.CartLine{
			ID:       item.ID.Hex(),
			Product:  product,
			Quantity: item.Quantity,
		})
	}

	c.JSON(http.StatusOK, lines)
}

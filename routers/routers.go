package routers

import (
	"carcommerce/handlers"
	"carcommerce/middleware"
	"carcommerce/store"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"net/http"
)

func SetupRouters(s store.Store, rdb *redis.Client) *gin.Engine {
	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestIDMiddleware())

	err := router.SetTrustedProxies(nil)
	if err != nil {
		return nil
	}

	router.OPTIONS("/*path", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	//liveness
	router.GET("/", handlers.RootHandler)
	//store connectivity probe
	router.GET("/test", func(c *gin.Context) {
		handlers.TestDatabaseHandler(c, s, rdb)
	})
	//insert demo cars into an empty catalog
	router.POST("/seed", func(c *gin.Context) {
		handlers.SeedHandler(c, s, rdb)
	})
	//list the catalog
	router.GET("/cars", func(c *gin.Context) {
		handlers.GetCarListHandler(c, s, rdb)
	})
	//create a car
	router.POST("/cars", func(c *gin.Context) {
		handlers.CreateCarHandler(c, s, rdb)
	})
	//fetch one car
	router.GET("/cars/:carID", func(c *gin.Context) {
		handlers.GetCarDataHandler(c, s)
	})
	//add an item to a session cart
	router.POST("/cart", func(c *gin.Context) {
		handlers.AddToCartHandler(c, s)
	})
	//view a session cart with products joined in
	router.GET("/cart/:sessionID", func(c *gin.Context) {
		handlers.GetCartHandler(c, s)
	})
	//turn a session cart into an order
	router.POST("/checkout", func(c *gin.Context) {
		handlers.CheckoutHandler(c, s)
	})

	return router
}

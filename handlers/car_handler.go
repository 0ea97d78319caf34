package handlers

import (
	"carcommerce/models"
	"carcommerce/store"
	"encoding/json"
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"log"
	"net/http"
	"time"
)

const (
	carListCacheKey = "cars"
	carListCacheTTL = 5 * time.Minute
)

// drop the cached car list after a catalog write
func invalidateCarListCache(c *gin.Context, rdb *redis.Client) {
	if rdb == nil {
		return
	}
	if err := rdb.Del(c, carListCacheKey).Err(); err != nil {
		log.Printf("failed to invalidate car list cache: %v", err)
	}
}

// GetCarListHandler returns every car in the catalog, served from Redis when
// the cache is warm and read through from Mongo otherwise.
func GetCarListHandler(c *gin.Context, s store.Store, rdb *redis.Client) {
	if rdb != nil {
		cached, err := rdb.Get(c, carListCacheKey).Result()
		if err == nil {
			var cars []models.Car
			if err := json.Unmarshal([]byte(cached), &cars); err == nil {
				c.JSON(http.StatusOK, cars)
				return
			}
		}
	}

	cars, err := s.ListCars(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "failed to list cars",
			"error":   err.Error(),
		})
		return
	}
	if cars == nil {
		cars = []models.Car{}
	}

	if rdb != nil {
		carsJSON, err := json.Marshal(cars)
		if err == nil {
			if err := rdb.Set(c, carListCacheKey, carsJSON, carListCacheTTL).Err(); err != nil {
				log.Printf("failed to cache car list: %v", err)
			}
		}
	}

	c.JSON(http.StatusOK, cars)
}

func CreateCarHandler(c *gin.Context, s store.Store, rdb *redis.Client) {
	var carReq struct {
		Title       string  `json:"title"`
		Brand       string  `json:"brand"`
		Description string  `json:"description"`
		Price       float64 `json:"price"`
		ImageURL    string  `json:"imageUrl"`
		ModelURL    string  `json:"modelUrl"`
		InStock     *bool   `json:"in_stock"`
	}
	if err := c.ShouldBindJSON(&carReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "failed to bind request body",
			"error":   err.Error(),
		})
		return
	}

	//in_stock defaults to true when the field is absent
	inStock := true
	if carReq.InStock != nil {
		inStock = *carReq.InStock
	}

	car := models.Car{
		Title:       carReq.Title,
		Brand:       carReq.Brand,
		Description: carReq.Description,
		Price:       carReq.Price,
		ImageURL:    carReq.ImageURL,
		ModelURL:    carReq.ModelURL,
		InStock:     inStock,
	}
	if verr := car.Validate(); verr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "invalid car data",
			"field":   verr.Field,
			"error":   verr.Message,
		})
		return
	}

	id, err := s.InsertCar(c, car)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "failed to create car",
			"error":   err.Error(),
		})
		return
	}

	invalidateCarListCache(c, rdb)

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func GetCarDataHandler(c *gin.Context, s store.Store) {
	carID := c.Param("carID")

	car, err := s.GetCar(c, carID)
	if errors.Is(err, store.ErrInvalidID) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return
	}
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "failed to read car",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, car)
}

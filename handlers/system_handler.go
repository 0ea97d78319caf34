package handlers

import (
	"carcommerce/models"
	"carcommerce/store"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"net/http"
	"os"
)

func RootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Car Commerce API running"})
}

// TestDatabaseHandler reports store and cache connectivity for quick
// deployment checks.
func TestDatabaseHandler(c *gin.Context, s store.Store, rdb *redis.Client) {
	response := gin.H{
		"backend":           "running",
		"database":          "not available",
		"database_url":      "not set",
		"connection_status": "not connected",
		"collections":       []string{},
	}
	if os.Getenv("DATABASE_URL") != "" {
		response["database_url"] = "set"
	}

	if s != nil {
		if err := s.Ping(c); err != nil {
			response["database"] = "error: " + err.Error()
		} else {
			response["database"] = "connected"
			response["connection_status"] = "connected"
			if collections, err := s.ListCollections(c); err == nil {
				if len(collections) > 10 {
					collections = collections[:10]
				}
				response["collections"] = collections
			}
		}
	}

	if rdb != nil {
		if err := rdb.Ping(c).Err(); err != nil {
			response["redis"] = "error: " + err.Error()
		} else {
			response["redis"] = "connected"
		}
	}

	c.JSON(http.StatusOK, response)
}

var demoCars = []models.Car{
	{
		Title:       "Falcon GT",
		Brand:       "Flames",
		Description: "High-performance electric sports car",
		Price:       125000,
		ImageURL:    "https://images.unsplash.com/photo-1549924231-f129b911e442",
		ModelURL:    "https://prod.spline.design/8fw9Z-c-rqW3nWBN/scene.splinecode",
		InStock:     true,
	},
	{
		Title:       "Nebula X",
		Brand:       "Flames",
		Description: "Luxury sedan with adaptive AI drive",
		Price:       98000,
		ImageURL:    "https://images.unsplash.com/photo-1503376780353-7e6692767b70",
		ModelURL:    "https://prod.spline.design/8fw9Z-c-rqW3nWBN/scene.splinecode",
		InStock:     true,
	},
}

// SeedHandler inserts the demo cars, but only into an empty catalog.
func SeedHandler(c *gin.Context, s store.Store, rdb *redis.Client) {
	count, err := s.CountCars(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "failed to count cars",
			"error":   err.Error(),
		})
		return
	}
	if count > 0 {
		c.JSON(http.StatusOK, gin.H{
			"seeded":  false,
			"message": "cars already exist",
		})
		return
	}

	ids := make([]string, 0, len(demoCars))
	for _, car := range demoCars {
		id, err := s.InsertCar(c, car)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "failed to seed cars",
				"error":   err.Error(),
			})
			return
		}
		ids = append(ids, id)
	}

	invalidateCarListCache(c, rdb)

	c.JSON(http.StatusOK, gin.H{
		"seeded": true,
		"ids":    ids,
	})
}

package httpserver

import (
	"errors"
	"net/http"

	"nike-dashboard/internal/domain"
	catalogsvc "nike-dashboard/internal/service/catalog"
	"nike-dashboard/internal/stats"
	"github.com/gin-gonic/gin"
)

// Ranking parameters carried over from the scraping pipeline's reports.
const (
	topExpensiveLimit  = 10
	topRatedLimit      = 20
	topRatedMinReviews = 150
)

func listProductsHandler(svc *catalogsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		products := svc.Load(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{
			"total":   len(products),
			"results": products,
		})
	}
}

func getProductHandler(svc *catalogsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		styleCode := c.Param("styleCode")
		p, err := svc.Get(c.Request.Context(), styleCode)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func statsHandler(svc *catalogsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		summary := stats.Summarize(svc.Load(c.Request.Context()))
		c.JSON(http.StatusOK, gin.H{
			"totalProducts":   summary.TotalProducts,
			"categoryCount":   summary.CategoryCount,
			"categoryLabels":  summary.CategoryLabels,
			"averageRating":   summary.AverageRatingLabel(),
			"ratingAvailable": summary.RatingAvailable,
		})
	}
}

func mostExpensiveHandler(svc *catalogsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		products := svc.Load(c.Request.Context())
		ranked := stats.MostExpensive(products, topExpensiveLimit)
		c.JSON(http.StatusOK, gin.H{
			"total":   len(ranked),
			"results": ranked,
		})
	}
}

func topRatedHandler(svc *catalogsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		products := svc.Load(c.Request.Context())
		ranked := stats.TopRated(products, topRatedMinReviews, topRatedLimit)
		c.JSON(http.StatusOK, gin.H{
			"total":   len(ranked),
			"results": ranked,
		})
	}
}

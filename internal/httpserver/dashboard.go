package httpserver

import (
	"net/http"

	catalogsvc "nike-dashboard/internal/service/catalog"
	"nike-dashboard/internal/stats"
	"github.com/gin-gonic/gin"
)

// dashboardView is everything dashboard.html needs for one render.
type dashboardView struct {
	Title         string
	Summary       stats.Summary
	AverageRating string
	Cards         []productCard
}

// dashboardHandler renders the catalog page. Data is loaded fresh on every
// request and the response opts out of caching, so the page always reflects
// the table as of this request.
func dashboardHandler(svc *catalogsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		products := svc.Load(c.Request.Context())
		summary := stats.Summarize(products)

		c.Header("Cache-Control", "no-store")
		c.HTML(http.StatusOK, "dashboard.html", dashboardView{
			Title:         "Nike Catalog Dashboard",
			Summary:       summary,
			AverageRating: summary.AverageRatingLabel(),
			Cards:         buildCards(products),
		})
	}
}

package controller

import (
	"time"

	"sargalayam/config"
	"sargalayam/metrics"
	"sargalayam/poster"
	"sargalayam/repository"
	"sargalayam/service"

	"github.com/gin-contrib/cache"
	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PosterController struct {
	resultService *service.ResultService
}

func NewPosterController(db *gorm.DB) *PosterController {
	return &PosterController{
		resultService: service.NewResultService(db),
	}
}

func setupPosterController(db *gorm.DB, cacheStore persistence.CacheStore) []RouteInfo {
	e := NewPosterController(db)
	baseUrl := "/posters"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getTemplatesHandler()},
		// posters are immutable per (template, program) within the cache window
		{Method: "GET", Path: "/:template", HandlerFunc: cache.CachePage(cacheStore, time.Minute, e.renderPosterHandler())},
	}
	for i, route := range routes {
		routes[i].Path = baseUrl + route.Path
	}
	return routes
}

// @id GetPosterTemplates
// @Description Lists the available poster template names
// @Tags posters
// @Produce json
// @Success 200 {array} string
// @Router /posters [get]
func (e *PosterController) getTemplatesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, poster.Names())
	}
}

// @id RenderPoster
// @Description Renders the podium of one program as a shareable SVG poster
// @Tags posters
// @Produce image/svg+xml
// @Param template path string true "Template name"
// @Param event query string true "Program name"
// @Param category query string true "Category"
// @Param year query string false "Year, defaults to the current edition"
// @Success 200
// @Router /posters/{template} [get]
func (e *PosterController) renderPosterHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		template, ok := poster.Lookup(c.Param("template"))
		if !ok {
			c.JSON(404, gin.H{"error": "unknown poster template"})
			return
		}
		event := c.Query("event")
		category := c.Query("category")
		if event == "" || !repository.ValidCategory(category) {
			c.JSON(400, gin.H{"error": "event and a valid category are required"})
			return
		}
		year := c.DefaultQuery("year", config.Env().CurrentYear)
		podium, err := e.resultService.GetPodium(event, category, year)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		svg, err := template.Render(poster.Program{Event: event, Category: category, Year: year}, podium)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		metrics.PosterRenders.WithLabelValues(template.Name()).Inc()
		c.Data(200, "image/svg+xml", []byte(svg))
	}
}

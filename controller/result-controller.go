package controller

import (
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"time"

	"sargalayam/auth"
	"sargalayam/ranking"
	"sargalayam/repository"
	"sargalayam/service"
	"sargalayam/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ResultController struct {
	resultService *service.ResultService
	live          *LiveController
}

func NewResultController(db *gorm.DB, live *LiveController) *ResultController {
	return &ResultController{
		resultService: service.NewResultService(db),
		live:          live,
	}
}

func setupResultController(db *gorm.DB, live *LiveController) []RouteInfo {
	e := NewResultController(db, live)
	baseUrl := "/results"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getResultsHandler()},
		{Method: "GET", Path: "/years", HandlerFunc: e.getYearsHandler()},
		{Method: "GET", Path: "/export", HandlerFunc: e.exportResultsHandler()},
		{Method: "GET", Path: "/all", HandlerFunc: e.getAllResultsHandler(), Authenticated: true, RequiredRoles: []auth.Permission{auth.PermissionAdmin}},
		{Method: "POST", Path: "", HandlerFunc: e.addWinnersHandler(), Authenticated: true, RequiredRoles: []auth.Permission{auth.PermissionAdmin}},
		{Method: "DELETE", Path: "/:result_id", HandlerFunc: e.deleteResultHandler(), Authenticated: true, RequiredRoles: []auth.Permission{auth.PermissionAdmin}},
	}
	for i, route := range routes {
		routes[i].Path = baseUrl + route.Path
	}
	return routes
}

func filtersFromQuery(c *gin.Context) ranking.Filters {
	return ranking.Filters{
		Year:     c.DefaultQuery("year", ranking.All),
		Category: c.DefaultQuery("category", ranking.All),
		Search:   c.Query("search"),
	}
}

// @id GetResults
// @Description Fetches results filtered by year, category and search term
// @Tags results
// @Produce json
// @Param year query string false "Year filter, 'all' for every year"
// @Param category query string false "Category filter, 'all' for every category"
// @Param search query string false "Case-insensitive search across participant, school and event"
// @Success 200 {array} Result
// @Router /results [get]
func (e *ResultController) getResultsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		results, err := e.resultService.GetResults(filtersFromQuery(c))
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, utils.Map(results, toResultResponse))
	}
}

// @id GetResultYears
// @Description Lists the years results exist for, newest first
// @Tags results
// @Produce json
// @Success 200 {array} string
// @Router /results/years [get]
func (e *ResultController) getYearsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		years, err := e.resultService.Years()
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, years)
	}
}

// @id GetAllResults
// @Description Fetches every result newest first for the admin management view
// @Tags results
// @Produce json
// @Security BearerAuth
// @Success 200 {array} Result
// @Router /results/all [get]
func (e *ResultController) getAllResultsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		results, err := e.resultService.GetAllResults()
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, utils.Map(results, toResultResponse))
	}
}

// @id ExportResults
// @Description Exports the filtered result list as CSV
// @Tags results
// @Produce text/csv
// @Param year query string false "Year filter"
// @Param category query string false "Category filter"
// @Param search query string false "Search term"
// @Success 200
// @Router /results/export [get]
func (e *ResultController) exportResultsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		filters := filtersFromQuery(c)
		results, err := e.resultService.GetResults(filters)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Type", "text/csv")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=sargalayam-results-%s.csv", filters.Year))
		c.Status(200)
		writer := csv.NewWriter(c.Writer)
		_ = writer.Write([]string{"Category", "Event", "Participant", "School", "Position"})
		for _, result := range results {
			_ = writer.Write([]string{
				result.Category,
				result.Event,
				result.Participant,
				result.School,
				strconv.Itoa(result.Position),
			})
		}
		writer.Flush()
	}
}

// @id AddWinners
// @Description Stores the winners batch for one program; the 1st place slot is required
// @Tags results
// @Accept json
// @Security BearerAuth
// @Produce json
// @Param body body WinnersSubmission true "Winners to store"
// @Success 201 {array} Result
// @Router /results [post]
func (e *ResultController) addWinnersHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var submission WinnersSubmission
		if err := c.BindJSON(&submission); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		if !repository.ValidCategory(submission.Category) {
			c.JSON(400, gin.H{"error": fmt.Sprintf("invalid category %q", submission.Category)})
			return
		}
		stored, err := e.resultService.AddWinners(submission.Program, submission.Category, submission.Year, submission.toSlots())
		if err != nil {
			if errors.Is(err, service.ErrMissingFirstPlace) {
				c.JSON(400, gin.H{"error": err.Error()})
				return
			}
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		e.live.BroadcastRefresh()
		c.JSON(201, utils.Map(stored, toResultResponse))
	}
}

// @id DeleteResult
// @Description Deletes a single result by id
// @Tags results
// @Produce json
// @Security BearerAuth
// @Param result_id path int true "Result Id"
// @Success 204
// @Router /results/{result_id} [delete]
func (e *ResultController) deleteResultHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		resultId, err := strconv.Atoi(c.Param("result_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		if err := e.resultService.DeleteResult(resultId); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(404, gin.H{"error": "result not found"})
				return
			}
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		e.live.BroadcastRefresh()
		c.JSON(204, nil)
	}
}

type WinnerSlot struct {
	Participant string `json:"participant"`
	School      string `json:"school"`
}

type WinnersSubmission struct {
	Program  string     `json:"program" binding:"required"`
	Category string     `json:"category" binding:"required"`
	Year     string     `json:"year" binding:"omitempty,len=4,numeric"`
	First    WinnerSlot `json:"first" binding:"required"`
	Second   WinnerSlot `json:"second"`
	Third    WinnerSlot `json:"third"`
}

func (w *WinnersSubmission) toSlots() service.WinnerSlots {
	return service.WinnerSlots{
		First:  service.WinnerEntry{Participant: w.First.Participant, School: w.First.School},
		Second: service.WinnerEntry{Participant: w.Second.Participant, School: w.Second.School},
		Third:  service.WinnerEntry{Participant: w.Third.Participant, School: w.Third.School},
	}
}

type Result struct {
	Id          int       `json:"id" binding:"required"`
	Event       string    `json:"event" binding:"required"`
	Category    string    `json:"category" binding:"required"`
	Year        string    `json:"year" binding:"required"`
	Participant string    `json:"participant" binding:"required"`
	School      string    `json:"school"`
	Position    int       `json:"position" binding:"required"`
	Points      int       `json:"points" binding:"required"`
	CreatedAt   time.Time `json:"created_at" binding:"required"`
}

func toResultResponse(result *repository.Result) *Result {
	return &Result{
		Id:          result.Id,
		Event:       result.Event,
		Category:    result.Category,
		Year:        result.Year,
		Participant: result.Participant,
		School:      result.School,
		Position:    result.Position,
		Points:      result.Points,
		CreatedAt:   result.CreatedAt,
	}
}

package repository

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Category = string

const (
	CategoryGeneral  Category = "General"
	CategoryHighZone Category = "High Zone"
	CategoryMidZone  Category = "Mid Zone"
	CategoryLowZone  Category = "Low Zone"
)

var Categories = []Category{CategoryGeneral, CategoryHighZone, CategoryMidZone, CategoryLowZone}

func ValidCategory(category Category) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// Result is one winner row per participant per program per year. Rows are
// only created through the winners submission batch and only removed by
// explicit per-id deletion; there is no update path.
type Result struct {
	Id          int      `gorm:"primaryKey"`
	Event       string   `gorm:"not null"`
	Category    Category `gorm:"not null;type:sargalayam.category"`
	Year        string   `gorm:"not null"`
	Participant string   `gorm:"not null"`
	School      string   `gorm:"not null;default:''"`
	Position    int      `gorm:"not null"`
	Points      int      `gorm:"not null"`
	CreatedAt   time.Time
}

type ResultRepository struct {
	DB *gorm.DB
}

func NewResultRepository(db *gorm.DB) *ResultRepository {
	return &ResultRepository{DB: db}
}

// InsertMany stores a submission batch in a single create call so the batch
// is stored atomically or not at all.
func (r *ResultRepository) InsertMany(results []*Result) ([]*Result, error) {
	timer := prometheus.NewTimer(queryDuration.WithLabelValues("insert_results"))
	defer timer.ObserveDuration()
	if err := r.DB.Create(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *ResultRepository) GetAllOrdered(orderBy string, descending bool) ([]*Result, error) {
	timer := prometheus.NewTimer(queryDuration.WithLabelValues("select_results_ordered"))
	defer timer.ObserveDuration()
	var results []*Result
	query := r.DB.Order(clause.OrderByColumn{Column: clause.Column{Name: orderBy}, Desc: descending})
	if err := query.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// GetFiltered narrows by year and category server-side. The sentinel "all"
// (or an empty string) skips a filter. Rows come back ordered by points
// descending with insertion order as the tiebreak.
func (r *ResultRepository) GetFiltered(year string, category string) ([]*Result, error) {
	timer := prometheus.NewTimer(queryDuration.WithLabelValues("select_results_filtered"))
	defer timer.ObserveDuration()
	var results []*Result
	query := r.DB.Order("points DESC, id ASC")
	if year != "" && year != "all" {
		query = query.Where("year = ?", year)
	}
	if category != "" && category != "all" {
		query = query.Where("category = ?", category)
	}
	if err := query.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// GetForProgram fetches the rows of a single (event, category, year) group in
// insertion order, the scope the podium projection expects.
func (r *ResultRepository) GetForProgram(event string, category Category, year string) ([]*Result, error) {
	timer := prometheus.NewTimer(queryDuration.WithLabelValues("select_results_program"))
	defer timer.ObserveDuration()
	var results []*Result
	err := r.DB.Order("id ASC").Find(&results, Result{Event: event, Category: category, Year: year}).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// DeleteById removes a single result. Deleting an id that does not exist
// returns gorm.ErrRecordNotFound so a concurrent double delete surfaces as
// not-found rather than silently succeeding twice.
func (r *ResultRepository) DeleteById(id int) error {
	timer := prometheus.NewTimer(queryDuration.WithLabelValues("delete_result"))
	defer timer.ObserveDuration()
	result := r.DB.Delete(&Result{Id: id})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Years lists the distinct years present, newest first, for the public
// year filter.
func (r *ResultRepository) Years() ([]string, error) {
	timer := prometheus.NewTimer(queryDuration.WithLabelValues("select_years"))
	defer timer.ObserveDuration()
	var years []string
	err := r.DB.Model(&Result{}).Distinct("year").Order("year DESC").Pluck("year", &years).Error
	if err != nil {
		return nil, err
	}
	return years, nil
}

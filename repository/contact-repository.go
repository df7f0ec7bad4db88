package repository

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

type ContactStatus = string

const (
	ContactUnread ContactStatus = "unread"
	ContactRead   ContactStatus = "read"
)

// ContactMessage is an append-only record from the public contact form.
type ContactMessage struct {
	Id        int           `gorm:"primaryKey"`
	Name      string        `gorm:"not null"`
	Email     string        `gorm:"not null"`
	Phone     *string       `gorm:"null"`
	Subject   string        `gorm:"not null"`
	Message   string        `gorm:"not null"`
	Status    ContactStatus `gorm:"not null;type:sargalayam.contact_status;default:'unread'"`
	CreatedAt time.Time
}

type ContactRepository struct {
	DB *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{DB: db}
}

func (r *ContactRepository) Create(message *ContactMessage) (*ContactMessage, error) {
	timer := prometheus.NewTimer(queryDuration.WithLabelValues("insert_contact"))
	defer timer.ObserveDuration()
	if err := r.DB.Create(message).Error; err != nil {
		return nil, err
	}
	return message, nil
}

func (r *ContactRepository) GetAll() ([]*ContactMessage, error) {
	timer := prometheus.NewTimer(queryDuration.WithLabelValues("select_contacts"))
	defer timer.ObserveDuration()
	var messages []*ContactMessage
	if err := r.DB.Order("created_at DESC").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *ContactRepository) MarkRead(id int) error {
	timer := prometheus.NewTimer(queryDuration.WithLabelValues("update_contact_status"))
	defer timer.ObserveDuration()
	result := r.DB.Model(&ContactMessage{Id: id}).Update("status", ContactRead)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ContactRepository) DeleteById(id int) error {
	timer := prometheus.NewTimer(queryDuration.WithLabelValues("delete_contact"))
	defer timer.ObserveDuration()
	result := r.DB.Delete(&ContactMessage{Id: id})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

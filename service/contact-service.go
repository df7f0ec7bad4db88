package service

import (
	"sargalayam/metrics"
	"sargalayam/repository"

	"gorm.io/gorm"
)

type ContactService struct {
	contactRepository *repository.ContactRepository
}

func NewContactService(db *gorm.DB) *ContactService {
	return &ContactService{
		contactRepository: repository.NewContactRepository(db),
	}
}

func (s *ContactService) SaveMessage(message *repository.ContactMessage) (*repository.ContactMessage, error) {
	message.Status = repository.ContactUnread
	saved, err := s.contactRepository.Create(message)
	if err != nil {
		return nil, err
	}
	metrics.ContactMessagesReceived.Inc()
	return saved, nil
}

func (s *ContactService) GetMessages() ([]*repository.ContactMessage, error) {
	return s.contactRepository.GetAll()
}

func (s *ContactService) MarkRead(id int) error {
	return s.contactRepository.MarkRead(id)
}

func (s *ContactService) DeleteMessage(id int) error {
	return s.contactRepository.DeleteById(id)
}

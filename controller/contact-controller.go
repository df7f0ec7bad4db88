package controller

import (
	"errors"
	"strconv"
	"time"

	"sargalayam/auth"
	"sargalayam/repository"
	"sargalayam/service"
	"sargalayam/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ContactController struct {
	contactService *service.ContactService
}

func NewContactController(db *gorm.DB) *ContactController {
	return &ContactController{
		contactService: service.NewContactService(db),
	}
}

func setupContactController(db *gorm.DB) []RouteInfo {
	e := NewContactController(db)
	baseUrl := "/contacts"
	adminOnly := []auth.Permission{auth.PermissionAdmin}
	routes := []RouteInfo{
		{Method: "POST", Path: "", HandlerFunc: e.submitMessageHandler()},
		{Method: "GET", Path: "", HandlerFunc: e.getMessagesHandler(), Authenticated: true, RequiredRoles: adminOnly},
		{Method: "PUT", Path: "/:contact_id/read", HandlerFunc: e.markReadHandler(), Authenticated: true, RequiredRoles: adminOnly},
		{Method: "DELETE", Path: "/:contact_id", HandlerFunc: e.deleteMessageHandler(), Authenticated: true, RequiredRoles: adminOnly},
	}
	for i, route := range routes {
		routes[i].Path = baseUrl + route.Path
	}
	return routes
}

// @id SubmitContactMessage
// @Description Stores a message from the public contact form
// @Tags contacts
// @Accept json
// @Produce json
// @Param body body ContactMessageCreate true "Message"
// @Success 201 {object} ContactMessage
// @Router /contacts [post]
func (e *ContactController) submitMessageHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var create ContactMessageCreate
		if err := c.BindJSON(&create); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		saved, err := e.contactService.SaveMessage(create.toModel())
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(201, toContactResponse(saved))
	}
}

// @id GetContactMessages
// @Description Fetches all contact messages, newest first
// @Tags contacts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} ContactMessage
// @Router /contacts [get]
func (e *ContactController) getMessagesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		messages, err := e.contactService.GetMessages()
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, utils.Map(messages, toContactResponse))
	}
}

// @id MarkContactMessageRead
// @Description Marks a contact message as read
// @Tags contacts
// @Produce json
// @Security BearerAuth
// @Param contact_id path int true "Message Id"
// @Success 204
// @Router /contacts/{contact_id}/read [put]
func (e *ContactController) markReadHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		contactId, err := strconv.Atoi(c.Param("contact_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		if err := e.contactService.MarkRead(contactId); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(404, gin.H{"error": "message not found"})
				return
			}
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(204, nil)
	}
}

// @id DeleteContactMessage
// @Description Deletes a contact message
// @Tags contacts
// @Produce json
// @Security BearerAuth
// @Param contact_id path int true "Message Id"
// @Success 204
// @Router /contacts/{contact_id} [delete]
func (e *ContactController) deleteMessageHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		contactId, err := strconv.Atoi(c.Param("contact_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		if err := e.contactService.DeleteMessage(contactId); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(404, gin.H{"error": "message not found"})
				return
			}
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(204, nil)
	}
}

type ContactMessageCreate struct {
	Name    string  `json:"name" binding:"required"`
	Email   string  `json:"email" binding:"required,email"`
	Phone   *string `json:"phone"`
	Subject string  `json:"subject" binding:"required"`
	Message string  `json:"message" binding:"required"`
}

func (m *ContactMessageCreate) toModel() *repository.ContactMessage {
	return &repository.ContactMessage{
		Name:    m.Name,
		Email:   m.Email,
		Phone:   m.Phone,
		Subject: m.Subject,
		Message: m.Message,
	}
}

type ContactMessage struct {
	Id        int       `json:"id" binding:"required"`
	Name      string    `json:"name" binding:"required"`
	Email     string    `json:"email" binding:"required"`
	Phone     *string   `json:"phone"`
	Subject   string    `json:"subject" binding:"required"`
	Message   string    `json:"message" binding:"required"`
	Status    string    `json:"status" binding:"required"`
	CreatedAt time.Time `json:"created_at" binding:"required"`
}

func toContactResponse(message *repository.ContactMessage) *ContactMessage {
	return &ContactMessage{
		Id:        message.Id,
		Name:      message.Name,
		Email:     message.Email,
		Phone:     message.Phone,
		Subject:   message.Subject,
		Message:   message.Message,
		Status:    message.Status,
		CreatedAt: message.CreatedAt,
	}
}

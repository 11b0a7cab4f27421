package entities

import (
	"errors"
	"time"
)

// Ошибки домена заявок.
var (
	ErrRequestNotFound = errors.New("help request not found")
)

// RequestStatus определяет статус заявки о помощи.
type RequestStatus string

// Жизненный цикл заявки: New -> Accepted -> New либо удаление автором.
const (
	StatusNew      RequestStatus = "New"
	StatusAccepted RequestStatus = "Accepted"
)

// HelpRequest представляет геолоцированную заявку о помощи на карте.
// Инвариант: AcceptedBy задан тогда и только тогда, когда Status == StatusAccepted.
type HelpRequest struct {
	ID          int64
	Title       string
	Description string
	Lat         float64
	Lng         float64
	AuthorEmail string
	AcceptedBy  *string
	Status      RequestStatus
	CreatedAt   time.Time
}

// NewHelpRequest создает новую заявку в статусе New без исполнителя.
func NewHelpRequest(title, description string, lat, lng float64, authorEmail string) *HelpRequest {
	return &HelpRequest{
		Title:       title,
		Description: description,
		Lat:         lat,
		Lng:         lng,
		AuthorEmail: authorEmail,
		Status:      StatusNew,
		CreatedAt:   time.Now().UTC(),
	}
}

// IsParticipant сообщает, является ли пользователь автором или текущим исполнителем.
func (r *HelpRequest) IsParticipant(email string) bool {
	if email == r.AuthorEmail {
		return true
	}
	return r.AcceptedBy != nil && *r.AcceptedBy == email
}

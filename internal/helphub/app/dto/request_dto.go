package dto

import (
	"time"

	"helphub/internal/helphub/domain/entities"
	"helphub/internal/helphub/ports/api"
)

// CreateRequestRequest содержит данные новой заявки о помощи.
type CreateRequestRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	Lat         float64 `json:"lat" validate:"required"`
	Lng         float64 `json:"lng" validate:"required"`
}

// ToInput преобразует форму во входные данные заявки.
func (r *CreateRequestRequest) ToInput() api.CreateRequestInput {
	return api.CreateRequestInput{
		Title:       r.Title,
		Description: r.Description,
		Lat:         r.Lat,
		Lng:         r.Lng,
	}
}

// RequestResponse содержит данные заявки для отображения на карте.
type RequestResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	Author      string    `json:"author"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewRequestResponse создает ответ из доменной сущности.
func NewRequestResponse(request *entities.HelpRequest) *RequestResponse {
	return &RequestResponse{
		ID:          request.ID,
		Title:       request.Title,
		Description: request.Description,
		Lat:         request.Lat,
		Lng:         request.Lng,
		Author:      request.AuthorEmail,
		Status:      string(request.Status),
		CreatedAt:   request.CreatedAt,
	}
}

// NewRequestListResponse создает список ответов из доменных сущностей.
func NewRequestListResponse(requests []*entities.HelpRequest) []*RequestResponse {
	responses := make([]*RequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, NewRequestResponse(request))
	}
	return responses
}

package memory

import (
	"context"
	"sort"
	"sync"

	"helphub/internal/helphub/domain/entities"
	"helphub/internal/helphub/ports/repositories"
)

// RequestRepository хранит заявки в памяти.
type RequestRepository struct {
	mu       sync.Mutex
	requests map[int64]*entities.HelpRequest
	nextID   int64
}

// NewRequestRepository создает новый экземпляр хранилища заявок в памяти.
func NewRequestRepository() repositories.RequestRepository {
	return &RequestRepository{
		requests: make(map[int64]*entities.HelpRequest),
		nextID:   1,
	}
}

// Create сохраняет новую заявку в статусе New.
func (r *RequestRepository) Create(_ context.Context, request *entities.HelpRequest) (*entities.HelpRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := *request
	created.ID = r.nextID
	created.Status = entities.StatusNew
	created.AcceptedBy = nil
	r.nextID++
	r.requests[created.ID] = &created

	result := created
	return &result, nil
}

// GetByID находит заявку по идентификатору.
func (r *RequestRepository) GetByID(_ context.Context, id int64) (*entities.HelpRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	request, ok := r.requests[id]
	if !ok {
		return nil, entities.ErrRequestNotFound
	}

	result := *request
	return &result, nil
}

// Accept атомарно переводит заявку New -> Accepted. Проверка статуса и
// запись выполняются под одной блокировкой, поэтому из двух конкурентных
// вызовов успешным будет только один.
func (r *RequestRepository) Accept(_ context.Context, id int64, helperEmail string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	request, ok := r.requests[id]
	if !ok || request.Status != entities.StatusNew {
		return false, nil
	}

	request.Status = entities.StatusAccepted
	helper := helperEmail
	request.AcceptedBy = &helper

	return true, nil
}

// Release атомарно переводит заявку Accepted -> New, если helperEmail
// является текущим исполнителем.
func (r *RequestRepository) Release(_ context.Context, id int64, helperEmail string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	request, ok := r.requests[id]
	if !ok || request.Status != entities.StatusAccepted {
		return false, nil
	}
	if request.AcceptedBy == nil || *request.AcceptedBy != helperEmail {
		return false, nil
	}

	request.Status = entities.StatusNew
	request.AcceptedBy = nil

	return true, nil
}

// Delete удаляет заявку по идентификатору.
func (r *RequestRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.requests[id]; !ok {
		return entities.ErrRequestNotFound
	}

	delete(r.requests, id)
	return nil
}

// List возвращает все заявки в порядке создания.
func (r *RequestRepository) List(_ context.Context) ([]*entities.HelpRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	requests := make([]*entities.HelpRequest, 0, len(r.requests))
	for _, request := range r.requests {
		result := *request
		requests = append(requests, &result)
	}

	sort.Slice(requests, func(i, j int) bool { return requests[i].ID < requests[j].ID })

	return requests, nil
}

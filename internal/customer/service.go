package customer

import "context"

type Repository interface {
	ListCustomers(ctx context.Context) ([]*Customer, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns all customers, for invoice form selects and list joins.
func (s *Service) List(ctx context.Context) ([]*Customer, error) {
	return s.repo.ListCustomers(ctx)
}

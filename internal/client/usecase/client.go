package usecase

import (
	"context"
	"strings"

	"tax-practice-management/internal/client"
	"tax-practice-management/internal/client/repository"
	"tax-practice-management/internal/model"
)

// Create inserts a new client. Either a full name or a company name must be
// present so the record can be displayed.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input client.CreateInput) (client.ClientOutput, error) {
	if strings.TrimSpace(input.FullName) == "" && strings.TrimSpace(input.CompanyName) == "" {
		return client.ClientOutput{}, client.ErrNameRequired
	}
	if input.Type == "" {
		input.Type = model.ClientTypeIndividual
	}
	if !model.ValidClientType(string(input.Type)) {
		return client.ClientOutput{}, client.ErrInvalidType
	}
	if input.Status == "" {
		input.Status = model.ClientStatusActive
	}
	if !model.ValidClientStatus(string(input.Status)) {
		return client.ClientOutput{}, client.ErrInvalidStatus
	}

	created, err := uc.repo.Create(ctx, repository.CreateOptions{
		FirmID:      sc.FirmID,
		FullName:    input.FullName,
		CompanyName: input.CompanyName,
		Email:       input.Email,
		ContactInfo: input.ContactInfo,
		Type:        input.Type,
		Status:      input.Status,
		TaxInfo:     input.TaxInfo,
	})
	if err != nil {
		uc.l.Errorf(ctx, "client/usecase.Create: %v", err)
		return client.ClientOutput{}, err
	}
	return client.ClientOutput{Client: created}, nil
}

// List returns the firm's clients, filtered in the repository where possible
// and by free-text search in memory.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input client.ListInput) (client.ListOutput, error) {
	clients, err := uc.repo.List(ctx, repository.ListOptions{
		FirmID:   sc.FirmID,
		Statuses: input.Filters.Status,
		Types:    input.Filters.Type,
	})
	if err != nil {
		uc.l.Errorf(ctx, "client/usecase.List: %v", err)
		return client.ListOutput{}, err
	}

	if search := strings.TrimSpace(input.Filters.Search); search != "" {
		needle := strings.ToLower(search)
		filtered := clients[:0]
		for _, c := range clients {
			if strings.Contains(strings.ToLower(c.FullName), needle) ||
				strings.Contains(strings.ToLower(c.CompanyName), needle) ||
				strings.Contains(strings.ToLower(c.Email), needle) {
				filtered = append(filtered, c)
			}
		}
		clients = filtered
	}

	return client.ListOutput{Clients: clients, Total: len(clients)}, nil
}

// Detail returns a single client.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (client.ClientOutput, error) {
	c, err := uc.repo.GetOne(ctx, repository.GetOneOptions{FirmID: sc.FirmID, ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "client/usecase.Detail: %v", err)
		return client.ClientOutput{}, err
	}
	if c.ID == "" {
		return client.ClientOutput{}, client.ErrNotFound
	}
	return client.ClientOutput{Client: c}, nil
}

// Update applies a partial update to a client.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input client.UpdateInput) (client.ClientOutput, error) {
	if input.Status != nil && !model.ValidClientStatus(*input.Status) {
		return client.ClientOutput{}, client.ErrInvalidStatus
	}

	existing, err := uc.repo.GetOne(ctx, repository.GetOneOptions{FirmID: sc.FirmID, ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "client/usecase.Update: %v", err)
		return client.ClientOutput{}, err
	}
	if existing.ID == "" {
		return client.ClientOutput{}, client.ErrNotFound
	}

	updated, err := uc.repo.Update(ctx, repository.UpdateOptions{
		FirmID:      sc.FirmID,
		ID:          input.ID,
		FullName:    input.FullName,
		CompanyName: input.CompanyName,
		Email:       input.Email,
		Status:      input.Status,
		ContactInfo: input.ContactInfo,
		TaxInfo:     input.TaxInfo,
	})
	if err != nil {
		uc.l.Errorf(ctx, "client/usecase.Update: %v", err)
		return client.ClientOutput{}, err
	}
	return client.ClientOutput{Client: updated}, nil
}

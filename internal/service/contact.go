package service

import (
	"context"
	"fmt"
	"log/slog"

	"zalestorm.app/crm/common/id"
	"zalestorm.app/crm/internal/model"
	"zalestorm.app/crm/internal/store"
)

type ContactService interface {
	List(ctx context.Context, ownerID int64, opts store.ListOptions) ([]model.Contact, error)
	Get(ctx context.Context, ownerID, contactID int64) (*model.Contact, error)
	Create(ctx context.Context, contact *model.Contact) (*model.Contact, error)
	Update(ctx context.Context, contact *model.Contact) (*model.Contact, error)
	Delete(ctx context.Context, ownerID, contactID int64) error
}

type contactService struct {
	contactStore store.ContactStore
}

func NewContactService(contacts store.ContactStore) ContactService {
	return &contactService{contactStore: contacts}
}

func (s *contactService) List(ctx context.Context, ownerID int64, opts store.ListOptions) ([]model.Contact, error) {
	contacts, err := s.contactStore.List(ctx, ownerID, opts)
	if err != nil {
		return nil, fmt.Errorf("listing contacts: %w", err)
	}
	return contacts, nil
}

func (s *contactService) Get(ctx context.Context, ownerID, contactID int64) (*model.Contact, error) {
	return s.contactStore.GetByID(ctx, ownerID, contactID)
}

func (s *contactService) Create(ctx context.Context, contact *model.Contact) (*model.Contact, error) {
	contact.ID = id.New()
	if contact.Status == "" {
		contact.Status = model.ContactStatusLead
	}

	if err := s.contactStore.Create(ctx, contact); err != nil {
		slog.ErrorContext(ctx, "failed to create contact", "error", err, "owner_id", contact.OwnerID)
		return nil, fmt.Errorf("creating contact: %w", err)
	}

	slog.InfoContext(ctx, "contact created", "contact_id", contact.ID, "owner_id", contact.OwnerID)
	return contact, nil
}

func (s *contactService) Update(ctx context.Context, contact *model.Contact) (*model.Contact, error) {
	if err := s.contactStore.Update(ctx, contact); err != nil {
		return nil, err
	}
	return s.contactStore.GetByID(ctx, contact.OwnerID, contact.ID)
}

func (s *contactService) Delete(ctx context.Context, ownerID, contactID int64) error {
	return s.contactStore.Delete(ctx, ownerID, contactID)
}

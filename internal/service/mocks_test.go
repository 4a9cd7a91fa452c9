package service_test

import (
	"context"
	"encoding/json"

	"zalestorm.app/crm/common/llm"
	"zalestorm.app/crm/internal/model"
	"zalestorm.app/crm/internal/store"
)

type mockGateway struct {
	completeFn    func(ctx context.Context, req llm.Request) (string, error)
	streamFn      func(ctx context.Context, req llm.Request) (llm.Stream, error)
	completeCalls int
	streamCalls   int
}

func (m *mockGateway) Complete(ctx context.Context, req llm.Request) (string, error) {
	m.completeCalls++
	if m.completeFn != nil {
		return m.completeFn(ctx, req)
	}
	return "", nil
}

func (m *mockGateway) Stream(ctx context.Context, req llm.Request) (llm.Stream, error) {
	m.streamCalls++
	if m.streamFn != nil {
		return m.streamFn(ctx, req)
	}
	return &mockStream{}, nil
}

func (m *mockGateway) Model() string {
	return "google/gemini-2.5-flash"
}

// mockStream yields a fixed chunk sequence.
type mockStream struct {
	chunks []string
	pos    int
	err    error
	closed bool
}

func (s *mockStream) Next() bool {
	if s.pos >= len(s.chunks) {
		return false
	}
	s.pos++
	return true
}

func (s *mockStream) Current() llm.Chunk {
	return llm.Chunk{Raw: json.RawMessage(s.chunks[s.pos-1])}
}

func (s *mockStream) Err() error { return s.err }

func (s *mockStream) Close() error {
	s.closed = true
	return nil
}

type mockContactStore struct {
	listFn    func(ctx context.Context, ownerID int64, opts store.ListOptions) ([]model.Contact, error)
	getByIDFn func(ctx context.Context, ownerID, id int64) (*model.Contact, error)
	createFn  func(ctx context.Context, contact *model.Contact) error
	updateFn  func(ctx context.Context, contact *model.Contact) error
	deleteFn  func(ctx context.Context, ownerID, id int64) error
	upsertFn  func(ctx context.Context, contact *model.Contact) error
	countFn   func(ctx context.Context, ownerID int64) (int64, error)
}

func (m *mockContactStore) List(ctx context.Context, ownerID int64, opts store.ListOptions) ([]model.Contact, error) {
	if m.listFn != nil {
		return m.listFn(ctx, ownerID, opts)
	}
	return nil, nil
}

func (m *mockContactStore) GetByID(ctx context.Context, ownerID, id int64) (*model.Contact, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, ownerID, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockContactStore) Create(ctx context.Context, contact *model.Contact) error {
	if m.createFn != nil {
		return m.createFn(ctx, contact)
	}
	return nil
}

func (m *mockContactStore) Update(ctx context.Context, contact *model.Contact) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, contact)
	}
	return nil
}

func (m *mockContactStore) Delete(ctx context.Context, ownerID, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, ownerID, id)
	}
	return nil
}

func (m *mockContactStore) Upsert(ctx context.Context, contact *model.Contact) error {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, contact)
	}
	return nil
}

func (m *mockContactStore) Count(ctx context.Context, ownerID int64) (int64, error) {
	if m.countFn != nil {
		return m.countFn(ctx, ownerID)
	}
	return 0, nil
}

type mockDealStore struct {
	listFn     func(ctx context.Context, ownerID int64, opts store.ListOptions) ([]model.Deal, error)
	getByIDFn  func(ctx context.Context, ownerID, id int64) (*model.Deal, error)
	createFn   func(ctx context.Context, deal *model.Deal) error
	updateFn   func(ctx context.Context, deal *model.Deal) error
	deleteFn   func(ctx context.Context, ownerID, id int64) error
	upsertFn   func(ctx context.Context, deal *model.Deal) error
	countFn    func(ctx context.Context, ownerID int64) (int64, error)
	pipelineFn func(ctx context.Context, ownerID int64) ([]model.StageValue, error)
}

func (m *mockDealStore) List(ctx context.Context, ownerID int64, opts store.ListOptions) ([]model.Deal, error) {
	if m.listFn != nil {
		return m.listFn(ctx, ownerID, opts)
	}
	return nil, nil
}

func (m *mockDealStore) GetByID(ctx context.Context, ownerID, id int64) (*model.Deal, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, ownerID, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockDealStore) Create(ctx context.Context, deal *model.Deal) error {
	if m.createFn != nil {
		return m.createFn(ctx, deal)
	}
	return nil
}

func (m *mockDealStore) Update(ctx context.Context, deal *model.Deal) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, deal)
	}
	return nil
}

func (m *mockDealStore) Delete(ctx context.Context, ownerID, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, ownerID, id)
	}
	return nil
}

func (m *mockDealStore) Upsert(ctx context.Context, deal *model.Deal) error {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, deal)
	}
	return nil
}

func (m *mockDealStore) Count(ctx context.Context, ownerID int64) (int64, error) {
	if m.countFn != nil {
		return m.countFn(ctx, ownerID)
	}
	return 0, nil
}

func (m *mockDealStore) PipelineByStage(ctx context.Context, ownerID int64) ([]model.StageValue, error) {
	if m.pipelineFn != nil {
		return m.pipelineFn(ctx, ownerID)
	}
	return nil, nil
}

type mockActivityStore struct {
	listFn   func(ctx context.Context, ownerID int64, opts store.ListOptions) ([]model.Activity, error)
	createFn func(ctx context.Context, activity *model.Activity) error
	deleteFn func(ctx context.Context, ownerID, id int64) error
	countFn  func(ctx context.Context, ownerID int64) (int64, error)
}

func (m *mockActivityStore) List(ctx context.Context, ownerID int64, opts store.ListOptions) ([]model.Activity, error) {
	if m.listFn != nil {
		return m.listFn(ctx, ownerID, opts)
	}
	return nil, nil
}

func (m *mockActivityStore) Create(ctx context.Context, activity *model.Activity) error {
	if m.createFn != nil {
		return m.createFn(ctx, activity)
	}
	return nil
}

func (m *mockActivityStore) Delete(ctx context.Context, ownerID, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, ownerID, id)
	}
	return nil
}

func (m *mockActivityStore) Count(ctx context.Context, ownerID int64) (int64, error) {
	if m.countFn != nil {
		return m.countFn(ctx, ownerID)
	}
	return 0, nil
}

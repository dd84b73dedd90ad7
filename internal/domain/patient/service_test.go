package patient

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
)

type mockRepo struct {
	items map[uuid.UUID]*Patient
}

func newMockRepo() *mockRepo {
	return &mockRepo{items: make(map[uuid.UUID]*Patient)}
}

func (m *mockRepo) Create(_ context.Context, p *Patient) error {
	p.ID = uuid.New()
	p.CreatedAt = time.Now()
	p.UpdatedAt = time.Now()
	m.items[p.ID] = p
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Patient, error) {
	p, ok := m.items[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return p, nil
}

func (m *mockRepo) GetByInsuranceNumber(_ context.Context, number string) (*Patient, error) {
	for _, p := range m.items {
		if p.InsuranceNumber != nil && *p.InsuranceNumber == number {
			return p, nil
		}
	}
	return nil, fmt.Errorf("not found")
}

func (m *mockRepo) Update(_ context.Context, p *Patient) error {
	m.items[p.ID] = p
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.items, id)
	return nil
}

func (m *mockRepo) List(_ context.Context, limit, offset int) ([]*Patient, int, error) {
	var result []*Patient
	for _, p := range m.items {
		result = append(result, p)
	}
	return result, len(result), nil
}

func (m *mockRepo) SearchByName(_ context.Context, name string, limit, offset int) ([]*Patient, int, error) {
	var result []*Patient
	for _, p := range m.items {
		if p.FullName == name {
			result = append(result, p)
		}
	}
	return result, len(result), nil
}

func TestCreateRequiresFullName(t *testing.T) {
	svc := NewService(newMockRepo())
	if err := svc.Create(context.Background(), &Patient{FullName: "   "}); err == nil {
		t.Error("expected error for blank full_name")
	}
}

func TestCreateNormalizesInsuranceNumber(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	empty := " "
	p := &Patient{FullName: "Ahmed Ben Salah", InsuranceNumber: &empty}
	if err := svc.Create(context.Background(), p); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.InsuranceNumber != nil {
		t.Error("blank insurance number should be dropped")
	}
}

func TestGetByInsuranceNumber(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	num := "CNAM-123456"
	p := &Patient{FullName: "Ahmed Ben Salah", InsuranceNumber: &num}
	if err := svc.Create(context.Background(), p); err != nil {
		t.Fatal(err)
	}
	got, err := svc.GetByInsuranceNumber(context.Background(), num)
	if err != nil {
		t.Fatalf("GetByInsuranceNumber: %v", err)
	}
	if got.ID != p.ID {
		t.Error("wrong patient returned")
	}
}

func TestUpdateRequiresFullName(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	p := &Patient{FullName: "Ahmed Ben Salah"}
	if err := svc.Create(context.Background(), p); err != nil {
		t.Fatal(err)
	}
	p.FullName = ""
	if err := svc.Update(context.Background(), p); err == nil {
		t.Error("expected error for blank full_name on update")
	}
}

package appointments

import (
	"context"
	"testing"
	"time"
)

type fakeRepo struct {
	byID   map[int64]Appointment
	nextID int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byID: make(map[int64]Appointment), nextID: 1}
}

func (r *fakeRepo) GetAll(ctx context.Context) ([]Appointment, error) {
	out := make([]Appointment, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id int64) (Appointment, error) {
	a, ok := r.byID[id]
	if !ok {
		return Appointment{}, ErrNotFound
	}
	return a, nil
}

func (r *fakeRepo) Create(ctx context.Context, a Appointment) (Appointment, error) {
	a.ID = r.nextID
	r.nextID++
	r.byID[a.ID] = a
	return a, nil
}

func (r *fakeRepo) Update(ctx context.Context, id int64, in UpdateInput) error {
	a, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	if in.Type != nil {
		a.Type = *in.Type
	}
	if in.DurationMinutes != nil {
		a.DurationMinutes = *in.DurationMinutes
	}
	if in.Status != nil {
		a.Status = *in.Status
	}
	if in.Assistant.Present {
		a.AssistantID = in.Assistant.Value
	}
	r.byID[id] = a
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type fakeResolver map[string]int

func (f fakeResolver) DefaultDuration(ctx context.Context, typeID string) (int, bool) {
	d, ok := f[typeID]
	return d, ok
}

var testResolver = fakeResolver{"Consulta": 30, "Vacuna": 20, "Cirugía": 120, "Examen": 30}

func TestCreate_DefaultDurationFromType(t *testing.T) {
	svc := NewService(newFakeRepo(), testResolver)

	a, err := svc.Create(context.Background(), CreateInput{
		PatientID: 1,
		DoctorID:  2,
		Type:      "Cirugía",
		StartTime: time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if a.DurationMinutes != 120 {
		t.Errorf("expected default 120 min for Cirugía, got %d", a.DurationMinutes)
	}
	if a.Status != string(StatusScheduled) {
		t.Errorf("expected Programada, got %q", a.Status)
	}
}

func TestCreate_ExplicitDurationWins(t *testing.T) {
	svc := NewService(newFakeRepo(), testResolver)

	a, err := svc.Create(context.Background(), CreateInput{
		PatientID:       1,
		DoctorID:        2,
		Type:            "Consulta",
		StartTime:       time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC),
		DurationMinutes: 50,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if a.DurationMinutes != 50 {
		t.Errorf("explicit duration should win, got %d", a.DurationMinutes)
	}
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(newFakeRepo(), testResolver)
	start := time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)

	if _, err := svc.Create(context.Background(), CreateInput{DoctorID: 2, Type: "Consulta", StartTime: start}); err != ErrMissingSelection {
		t.Errorf("no patient: expected ErrMissingSelection, got %v", err)
	}
	if _, err := svc.Create(context.Background(), CreateInput{PatientID: 1, Type: "Consulta", StartTime: start}); err != ErrMissingSelection {
		t.Errorf("no doctor: expected ErrMissingSelection, got %v", err)
	}
	if _, err := svc.Create(context.Background(), CreateInput{PatientID: 1, DoctorID: 2, StartTime: start}); err != ErrInvalidInput {
		t.Errorf("no type: expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Create(context.Background(), CreateInput{PatientID: 1, DoctorID: 2, Type: "Consulta"}); err != ErrInvalidInput {
		t.Errorf("zero start: expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Create(context.Background(), CreateInput{PatientID: 1, DoctorID: 2, Type: "Peluquería", StartTime: start}); err != ErrInvalidInput {
		t.Errorf("unknown type without duration: expected ErrInvalidInput, got %v", err)
	}
}

func TestUpdate_TypeChangeReappliesDefault(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, testResolver)

	a, err := svc.Create(context.Background(), CreateInput{
		PatientID: 1,
		DoctorID:  2,
		Type:      "Consulta",
		StartTime: time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	typ := "Vacuna"
	got, err := svc.Update(context.Background(), a.ID, UpdateInput{Type: &typ})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.DurationMinutes != 20 {
		t.Errorf("type change should re-apply default 20, got %d", got.DurationMinutes)
	}

	// Con duración explícita no se pisa
	typ2 := "Cirugía"
	dur := 90
	got, err = svc.Update(context.Background(), a.ID, UpdateInput{Type: &typ2, DurationMinutes: &dur})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.DurationMinutes != 90 {
		t.Errorf("explicit duration should win on update, got %d", got.DurationMinutes)
	}
}

func TestUpdate_ClearAssistant(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, testResolver)

	assistant := int64(5)
	a, err := svc.Create(context.Background(), CreateInput{
		PatientID:   1,
		DoctorID:    2,
		AssistantID: &assistant,
		Type:        "Consulta",
		StartTime:   time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.Update(context.Background(), a.ID, UpdateInput{
		Assistant: PatchAssistant{Present: true, Value: nil},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.AssistantID != nil {
		t.Errorf("assistant should be cleared, got %v", *got.AssistantID)
	}
}

func TestUpdate_InvalidStatus(t *testing.T) {
	svc := NewService(newFakeRepo(), testResolver)

	bad := "Pendiente"
	if _, err := svc.Update(context.Background(), 1, UpdateInput{Status: &bad}); err != ErrInvalidInput {
		t.Errorf("expected ErrInvalidInput for unknown status, got %v", err)
	}
}

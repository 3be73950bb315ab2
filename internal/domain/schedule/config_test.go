package schedule

import (
	"context"
	"testing"
)

type fakeSettingsRepo struct {
	values map[string][]byte
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{values: make(map[string][]byte)}
}

func (r *fakeSettingsRepo) Get(ctx context.Context, key string) ([]byte, error) {
	return r.values[key], nil
}

func (r *fakeSettingsRepo) Put(ctx context.Context, key string, value []byte) error {
	r.values[key] = value
	return nil
}

func TestGetAppointmentTypes_DefaultsWhenEmpty(t *testing.T) {
	svc := NewConfigService(newFakeSettingsRepo())

	types := svc.GetAppointmentTypes(context.Background())
	if len(types) != 4 {
		t.Fatalf("expected 4 default types, got %d", len(types))
	}
	if types[2].ID != "Cirugía" || types[2].Duration != 120 {
		t.Errorf("unexpected surgery default: %+v", types[2])
	}
}

func TestGetAppointmentTypes_DefaultsOnCorruptJSON(t *testing.T) {
	repo := newFakeSettingsRepo()
	repo.values[settingsKey] = []byte("{not json")

	svc := NewConfigService(repo)
	types := svc.GetAppointmentTypes(context.Background())
	if len(types) != 4 {
		t.Fatalf("corrupt config should fall back to defaults, got %d types", len(types))
	}
}

func TestSaveAppointmentTypes_RoundTrip(t *testing.T) {
	svc := NewConfigService(newFakeSettingsRepo())
	ctx := context.Background()

	custom := []AppointmentTypeConfig{
		{ID: "Consulta", Label: "Consulta general", Duration: 45, Color: "bg-primary", Icon: "stethoscope"},
		{ID: "Vacuna", Label: "Vacuna", Duration: 15, Color: "bg-emerald-500", Icon: "vaccines"},
	}
	if err := svc.SaveAppointmentTypes(ctx, custom); err != nil {
		t.Fatalf("save: %v", err)
	}

	got := svc.GetAppointmentTypes(ctx)
	if len(got) != 2 {
		t.Fatalf("expected 2 types after save, got %d", len(got))
	}
	if got[0].Duration != 45 || got[0].Label != "Consulta general" {
		t.Errorf("unexpected saved type: %+v", got[0])
	}
}

func TestSaveAppointmentTypes_Validation(t *testing.T) {
	svc := NewConfigService(newFakeSettingsRepo())
	ctx := context.Background()

	if err := svc.SaveAppointmentTypes(ctx, nil); err != ErrInvalidConfig {
		t.Errorf("empty list: expected ErrInvalidConfig, got %v", err)
	}
	if err := svc.SaveAppointmentTypes(ctx, []AppointmentTypeConfig{{ID: "", Duration: 30}}); err != ErrInvalidConfig {
		t.Errorf("missing id: expected ErrInvalidConfig, got %v", err)
	}
	if err := svc.SaveAppointmentTypes(ctx, []AppointmentTypeConfig{{ID: "Consulta", Duration: 0}}); err != ErrInvalidConfig {
		t.Errorf("zero duration: expected ErrInvalidConfig, got %v", err)
	}
}

func TestDefaultDuration(t *testing.T) {
	svc := NewConfigService(newFakeSettingsRepo())
	ctx := context.Background()

	if d, ok := svc.DefaultDuration(ctx, "Vacuna"); !ok || d != 20 {
		t.Errorf("expected (20, true) for Vacuna, got (%d, %v)", d, ok)
	}
	if _, ok := svc.DefaultDuration(ctx, "Peluquería"); ok {
		t.Error("unknown type should not resolve a duration")
	}
}

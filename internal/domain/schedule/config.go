package schedule

import (
	"context"
	"encoding/json"
	"errors"
)

// AppointmentTypeConfig es la configuración de un tipo de cita: duración por
// defecto y presentación (color/ícono) del bloque en la agenda.
type AppointmentTypeConfig struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Duration int    `json:"duration"`
	Color    string `json:"color"`
	Icon     string `json:"icon"`
}

// settingsKey es la clave del blob compartido. Antes vivía en el storage del
// navegador de cada quien; ahora es una fila compartida para que las duraciones
// que dan forma a la agenda sean las mismas para todo el personal.
const settingsKey = "appointment_types"

// DefaultTypes devuelve la configuración inicial de tipos de cita.
func DefaultTypes() []AppointmentTypeConfig {
	return []AppointmentTypeConfig{
		{ID: "Consulta", Label: "Consulta", Duration: 30, Color: "bg-primary", Icon: "stethoscope"},
		{ID: "Vacuna", Label: "Vacuna", Duration: 20, Color: "bg-emerald-500", Icon: "vaccines"},
		{ID: "Cirugía", Label: "Cirugía", Duration: 120, Color: "bg-secondary", Icon: "precision_manufacturing"},
		{ID: "Examen", Label: "Examen", Duration: 30, Color: "bg-accent", Icon: "biotech"},
	}
}

var ErrInvalidConfig = errors.New("invalid appointment type config")

// SettingsRepository guarda blobs de configuración por clave.
type SettingsRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}

// ConfigService lee y escribe la configuración de tipos de cita.
type ConfigService struct {
	repo SettingsRepository
}

func NewConfigService(repo SettingsRepository) *ConfigService {
	return &ConfigService{repo: repo}
}

// GetAppointmentTypes devuelve la configuración guardada; si no hay nada o el
// JSON guardado está corrupto, cae silenciosamente a los defaults.
func (s *ConfigService) GetAppointmentTypes(ctx context.Context) []AppointmentTypeConfig {
	raw, err := s.repo.Get(ctx, settingsKey)
	if err != nil || len(raw) == 0 {
		return DefaultTypes()
	}

	var types []AppointmentTypeConfig
	if err := json.Unmarshal(raw, &types); err != nil {
		return DefaultTypes()
	}
	if len(types) == 0 {
		return DefaultTypes()
	}
	return types
}

func (s *ConfigService) SaveAppointmentTypes(ctx context.Context, types []AppointmentTypeConfig) error {
	if len(types) == 0 {
		return ErrInvalidConfig
	}
	for _, t := range types {
		if t.ID == "" || t.Duration <= 0 {
			return ErrInvalidConfig
		}
	}

	raw, err := json.Marshal(types)
	if err != nil {
		return err
	}
	return s.repo.Put(ctx, settingsKey, raw)
}

// DefaultDuration busca la duración por defecto del tipo dado.
func (s *ConfigService) DefaultDuration(ctx context.Context, typeID string) (int, bool) {
	for _, t := range s.GetAppointmentTypes(ctx) {
		if t.ID == typeID {
			return t.Duration, true
		}
	}
	return 0, false
}

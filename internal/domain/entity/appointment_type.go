package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AppointmentType describes a bookable consultation kind
type AppointmentType struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Name        LocalizedText   `gorm:"type:jsonb;not null" json:"name"`
	Description LocalizedText   `gorm:"type:jsonb" json:"description,omitempty"`
	Duration    int             `gorm:"not null" json:"duration"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Color       string          `gorm:"type:varchar(7)" json:"color"`
	IsActive    bool            `gorm:"not null" json:"is_active"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (AppointmentType) TableName() string {
	return "appointment_types"
}

func (t *AppointmentType) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// LocalizedText maps a locale code to its text, stored as jsonb
type LocalizedText map[string]string

// DefaultLocale is used when a requested locale has no translation
const DefaultLocale = "en"

// Get returns the text for locale, falling back to DefaultLocale and then to
// any available translation.
func (l LocalizedText) Get(locale string) string {
	if text, ok := l[locale]; ok {
		return text
	}
	if text, ok := l[DefaultLocale]; ok {
		return text
	}
	for _, text := range l {
		return text
	}
	return ""
}

// Value returns json value, implement driver.Valuer interface
func (l LocalizedText) Value() (driver.Value, error) {
	if len(l) == 0 {
		return nil, nil
	}
	return json.Marshal(l)
}

// Scan scan value into LocalizedText, implements sql.Scanner interface
func (l *LocalizedText) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal localized text value:", value))
	}

	result := map[string]string{}
	err := json.Unmarshal(bytes, &result)
	*l = LocalizedText(result)
	return err
}

// DefaultAppointmentTypes is the catalogue seeded into an empty registry
func DefaultAppointmentTypes() []AppointmentType {
	return []AppointmentType{
		{
			Name:        LocalizedText{"en": "Initial Consultation", "es": "Consulta Inicial"},
			Description: LocalizedText{"en": "Full nutritional assessment and goal setting", "es": "Evaluación nutricional completa y definición de objetivos"},
			Duration:    60,
			Price:       decimal.NewFromInt(80),
			Color:       "#4CAF50",
			IsActive:    true,
		},
		{
			Name:        LocalizedText{"en": "Follow-up", "es": "Seguimiento"},
			Description: LocalizedText{"en": "Progress review and plan adjustments", "es": "Revisión de progreso y ajustes del plan"},
			Duration:    30,
			Price:       decimal.NewFromInt(45),
			Color:       "#2196F3",
			IsActive:    true,
		},
		{
			Name:        LocalizedText{"en": "Meal Plan Review", "es": "Revisión del Plan Alimenticio"},
			Description: LocalizedText{"en": "Walkthrough of a personalised meal plan", "es": "Repaso de un plan alimenticio personalizado"},
			Duration:    45,
			Price:       decimal.NewFromInt(60),
			Color:       "#FF9800",
			IsActive:    true,
		},
	}
}

package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Pipeline statuses. The status field itself is free-form: any string can be
// written and any transition is allowed (no state machine by product decision).
const (
	StatusNew       = "new"
	StatusContacted = "contacted"
	StatusQualified = "qualified"
	StatusConverted = "converted"
	StatusLost      = "lost"
)

var KnownStatuses = []string{StatusNew, StatusContacted, StatusQualified, StatusConverted, StatusLost}

var TreatmentTypes = []string{"Parkinson's", "Autism", "Alzheimer's", "Dementia"}

var LeadSources = []string{"Website", "Referral", "Social Media", "Advertisement", "Email Campaign", "Phone Call", "Other"}

// Value Object: FileAttachment
// Owned exclusively by the Lead that references it. Never mutated in place.
type FileAttachment struct {
	FileID     string    `json:"file_id"`
	FileName   string    `json:"file_name"`
	FileType   string    `json:"file_type"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// Entidade: Lead
type Lead struct {
	ID            string `json:"id"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Country       string `json:"country"`
	TreatmentType string `json:"treatment_type"`
	Budget        string `json:"budget,omitempty"`
	Source        string `json:"source"`

	Status     string `json:"status"`
	AssignedTo string `json:"assigned_to"`

	Notes          string `json:"notes,omitempty"`
	PreferredDate  string `json:"preferred_date,omitempty"`
	MedicalHistory string `json:"medical_history,omitempty"`

	Files []FileAttachment `json:"files"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LeadPatch carries a subset of fields for a partial update.
// nil pointer = field absent (leave the current value alone).
type LeadPatch struct {
	FirstName      *string
	LastName       *string
	Email          *string
	Phone          *string
	Country        *string
	TreatmentType  *string
	Budget         *string
	Status         *string
	Source         *string
	Notes          *string
	PreferredDate  *string
	MedicalHistory *string
}

// Factory
// status, assignedTo and files are always forced here, no matter what the
// caller sent for them.
func NewLead(firstName, lastName, email, phone, country, treatmentType, source, assignedTo string) (*Lead, error) {
	lead := &Lead{
		ID:            uuid.New().String(),
		FirstName:     firstName,
		LastName:      lastName,
		Email:         email,
		Phone:         phone,
		Country:       country,
		TreatmentType: treatmentType,
		Source:        source,

		Status:     StatusNew,
		AssignedTo: assignedTo,
		Files:      []FileAttachment{},

		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := lead.Validate(); err != nil {
		return nil, err
	}

	return lead, nil
}

func (l *Lead) Validate() error {
	if l.FirstName == "" {
		return errors.New("first name is required")
	}
	if l.LastName == "" {
		return errors.New("last name is required")
	}
	if l.Email == "" {
		return errors.New("email is required")
	}
	if l.Phone == "" {
		return errors.New("phone is required")
	}
	if l.Country == "" {
		return errors.New("country is required")
	}
	if l.TreatmentType == "" {
		return errors.New("treatment type is required")
	}
	if l.Source == "" {
		return errors.New("source is required")
	}
	if l.AssignedTo == "" {
		return errors.New("assigned to is required")
	}
	return nil
}

package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/neuroclinic/lead-intake/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

// leadColumns is the canonical select list; every query that scans into
// scanLead must use it.
const leadColumns = `
	id, first_name, last_name, email, phone, country, treatment_type,
	COALESCE(budget, ''), status, source,
	COALESCE(notes, ''), COALESCE(preferred_date, ''), COALESCE(medical_history, ''),
	assigned_to, files, created_at, updated_at
`

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (
			id, first_name, last_name, email, phone, country, treatment_type,
			budget, status, source, notes, preferred_date, medical_history,
			assigned_to, files, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

	filesJSON, err := json.Marshal(lead.Files)
	if err != nil {
		return fmt.Errorf("failed to marshal files: %w", err)
	}

	_, err = r.DB.ExecContext(ctx, query,
		lead.ID,
		lead.FirstName,
		lead.LastName,
		lead.Email,
		lead.Phone,
		lead.Country,
		lead.TreatmentType,
		nullString(lead.Budget),
		lead.Status,
		lead.Source,
		nullString(lead.Notes),
		nullString(lead.PreferredDate),
		nullString(lead.MedicalHistory),
		lead.AssignedTo,
		filesJSON,
		lead.CreatedAt,
		lead.UpdatedAt,
	)

	return err
}

// FindByID returns (nil, nil) when the lead does not exist.
func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = $1`

	lead, err := scanLead(r.DB.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return lead, nil
}

// FindAll returns the full set, newest first. The ordering is a contract
// with the API, not cosmetics.
func (r *LeadRepository) FindAll(ctx context.Context) ([]*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads ORDER BY created_at DESC`

	return r.queryLeads(ctx, query)
}

func (r *LeadRepository) FindByStatus(ctx context.Context, status string) ([]*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE status = $1 ORDER BY created_at DESC`

	return r.queryLeads(ctx, query, status)
}

func (r *LeadRepository) FindByTreatmentType(ctx context.Context, treatmentType string) ([]*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE treatment_type = $1 ORDER BY created_at DESC`

	return r.queryLeads(ctx, query, treatmentType)
}

func (r *LeadRepository) FindByAssignee(ctx context.Context, assignedTo string) ([]*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE assigned_to = $1 ORDER BY created_at DESC`

	return r.queryLeads(ctx, query, assignedTo)
}

// Patch applies the non-nil fields in one UPDATE, so a partial update is
// all-or-nothing. Returns (nil, nil) when the lead does not exist.
func (r *LeadRepository) Patch(ctx context.Context, id string, patch entity.LeadPatch) (*entity.Lead, error) {
	query := `
		UPDATE leads SET
			first_name      = COALESCE($2, first_name),
			last_name       = COALESCE($3, last_name),
			email           = COALESCE($4, email),
			phone           = COALESCE($5, phone),
			country         = COALESCE($6, country),
			treatment_type  = COALESCE($7, treatment_type),
			budget          = COALESCE($8, budget),
			status          = COALESCE($9, status),
			source          = COALESCE($10, source),
			notes           = COALESCE($11, notes),
			preferred_date  = COALESCE($12, preferred_date),
			medical_history = COALESCE($13, medical_history),
			updated_at      = NOW()
		WHERE id = $1
		RETURNING ` + leadColumns

	lead, err := scanLead(r.DB.QueryRowContext(ctx, query,
		id,
		patch.FirstName,
		patch.LastName,
		patch.Email,
		patch.Phone,
		patch.Country,
		patch.TreatmentType,
		patch.Budget,
		patch.Status,
		patch.Source,
		patch.Notes,
		patch.PreferredDate,
		patch.MedicalHistory,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return lead, nil
}

// UpdateFiles replaces the attachment sequence in a single write.
// Returns (nil, nil) when the lead does not exist.
func (r *LeadRepository) UpdateFiles(ctx context.Context, id string, files []entity.FileAttachment) (*entity.Lead, error) {
	if files == nil {
		files = []entity.FileAttachment{}
	}

	filesJSON, err := json.Marshal(files)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal files: %w", err)
	}

	query := `
		UPDATE leads SET files = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + leadColumns

	lead, err := scanLead(r.DB.QueryRowContext(ctx, query, id, filesJSON))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return lead, nil
}

// Delete is a no-op when the row is already gone.
func (r *LeadRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id)
	return err
}

func (r *LeadRepository) queryLeads(ctx context.Context, query string, args ...interface{}) ([]*entity.Lead, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads := []*entity.Lead{}
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}

	return leads, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanLead(row rowScanner) (*entity.Lead, error) {
	var lead entity.Lead
	var filesJSON []byte

	err := row.Scan(
		&lead.ID,
		&lead.FirstName,
		&lead.LastName,
		&lead.Email,
		&lead.Phone,
		&lead.Country,
		&lead.TreatmentType,
		&lead.Budget,
		&lead.Status,
		&lead.Source,
		&lead.Notes,
		&lead.PreferredDate,
		&lead.MedicalHistory,
		&lead.AssignedTo,
		&filesJSON,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(filesJSON, &lead.Files); err != nil {
		return nil, fmt.Errorf("failed to unmarshal files for lead %s: %w", lead.ID, err)
	}
	if lead.Files == nil {
		lead.Files = []entity.FileAttachment{}
	}

	return &lead, nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

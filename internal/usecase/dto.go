package usecase

type CreateLeadInput struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Country        string `json:"country"`
	TreatmentType  string `json:"treatment_type"`
	Budget         string `json:"budget"`
	Source         string `json:"source"`
	Notes          string `json:"notes"`
	PreferredDate  string `json:"preferred_date"`
	MedicalHistory string `json:"medical_history"`
}

type CreateLeadOutput struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// UpdateLeadInput: nil pointer = field not sent. This is what keeps the
// PATCH contract precise instead of guessing presence from zero values.
type UpdateLeadInput struct {
	FirstName      *string `json:"first_name"`
	LastName       *string `json:"last_name"`
	Email          *string `json:"email"`
	Phone          *string `json:"phone"`
	Country        *string `json:"country"`
	TreatmentType  *string `json:"treatment_type"`
	Budget         *string `json:"budget"`
	Status         *string `json:"status"`
	Source         *string `json:"source"`
	Notes          *string `json:"notes"`
	PreferredDate  *string `json:"preferred_date"`
	MedicalHistory *string `json:"medical_history"`
}

type AddFileInput struct {
	FileID   string `json:"file_id"`
	FileName string `json:"file_name"`
	FileType string `json:"file_type"`
}

type UploadSlotOutput struct {
	UploadURL string `json:"upload_url"`
	FileID    string `json:"file_id"`
}

type FileURLOutput struct {
	URL string `json:"url,omitempty"`
}

type StatsOutput struct {
	Total     int `json:"total"`
	New       int `json:"new"`
	Contacted int `json:"contacted"`
	Qualified int `json:"qualified"`
	Converted int `json:"converted"`
	Lost      int `json:"lost"`
}

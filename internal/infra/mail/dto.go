package mail

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string

	// Where new-lead notifications go (the intake team inbox).
	IntakeInbox string
}

type newLeadEmailData struct {
	LeadName      string
	Email         string
	TreatmentType string
	Source        string
}

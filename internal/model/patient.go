package model

// Patient statuses
const (
	PatientStatusActive         = "Active"
	PatientStatusUnderTreatment = "Under Treatment"
	PatientStatusDischarged     = "Discharged"
)

// Patient records live under the patient: namespace. Department and
// AssignedDoctor are free-text names, not references; nothing checks them
// against the department or doctor namespaces.
type Patient struct {
	ID               string `json:"id,omitempty"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	DateOfBirth      string `json:"dateOfBirth"`
	Gender           string `json:"gender"`
	Address          string `json:"address"`
	Department       string `json:"department"`
	AssignedDoctor   string `json:"assignedDoctor"`
	AdmissionDate    string `json:"admissionDate"`
	Status           string `json:"status"`
	MedicalHistory   string `json:"medicalHistory"`
	EmergencyContact string `json:"emergencyContact"`
	EmergencyPhone   string `json:"emergencyPhone"`
	CreatedAt        string `json:"createdAt,omitempty"`
	UpdatedAt        string `json:"updatedAt,omitempty"`
}

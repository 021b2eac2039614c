package model

// Doctor records live under the doctor: namespace.
type Doctor struct {
	ID             string   `json:"id,omitempty"`
	Name           string   `json:"name"`
	Specialty      string   `json:"specialty"`
	Department     string   `json:"department"`
	Experience     string   `json:"experience"`
	Education      string   `json:"education"`
	Image          string   `json:"image,omitempty"`
	Qualifications []string `json:"qualifications,omitempty"`
	Languages      []string `json:"languages,omitempty"`
	Bio            string   `json:"bio,omitempty"`
	Availability   []string `json:"availability,omitempty"`
	CreatedAt      string   `json:"createdAt,omitempty"`
	UpdatedAt      string   `json:"updatedAt,omitempty"`
}

package model

// Department records live under the department: namespace. Seed data
// supplies stable ids so the marketing site can deep-link departments.
type Department struct {
	ID          string   `json:"id,omitempty"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Color       string   `json:"color"`
	Services    []string `json:"services,omitempty"`
	Facilities  []string `json:"facilities,omitempty"`
	CreatedAt   string   `json:"createdAt,omitempty"`
	UpdatedAt   string   `json:"updatedAt,omitempty"`
}

package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/medicore/hospital-api/internal/model"
)

// Updates is a partial record shallow-merged over the stored one.
type Updates map[string]interface{}

// Patients (admin-only)

func (c *Client) ListPatients(ctx context.Context) ([]model.Patient, error) {
	return do[[]model.Patient](ctx, c, http.MethodGet, "/patients", nil)
}

func (c *Client) GetPatient(ctx context.Context, id string) (*model.Patient, error) {
	p, err := do[model.Patient](ctx, c, http.MethodGet, "/patients/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) ListPatientsByDepartment(ctx context.Context, department string) ([]model.Patient, error) {
	return do[[]model.Patient](ctx, c, http.MethodGet,
		"/patients/department/"+url.PathEscape(department), nil)
}

func (c *Client) CreatePatient(ctx context.Context, patient model.Patient) (*model.Patient, error) {
	p, err := do[model.Patient](ctx, c, http.MethodPost, "/patients", patient)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) UpdatePatient(ctx context.Context, id string, updates Updates) (*model.Patient, error) {
	p, err := do[model.Patient](ctx, c, http.MethodPut, "/patients/"+url.PathEscape(id), updates)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) DeletePatient(ctx context.Context, id string) error {
	_, err := do[struct{}](ctx, c, http.MethodDelete, "/patients/"+url.PathEscape(id), nil)
	return err
}

// Appointments (booking and receipt lookup are public)

func (c *Client) ListAppointments(ctx context.Context) ([]model.Appointment, error) {
	return do[[]model.Appointment](ctx, c, http.MethodGet, "/appointments", nil)
}

func (c *Client) GetAppointment(ctx context.Context, id string) (*model.Appointment, error) {
	a, err := do[model.Appointment](ctx, c, http.MethodGet, "/appointments/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *Client) ListAppointmentsByDepartment(ctx context.Context, department string) ([]model.Appointment, error) {
	return do[[]model.Appointment](ctx, c, http.MethodGet,
		"/appointments/department/"+url.PathEscape(department), nil)
}

func (c *Client) BookAppointment(ctx context.Context, appointment model.Appointment) (*model.Appointment, error) {
	a, err := do[model.Appointment](ctx, c, http.MethodPost, "/appointments", appointment)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *Client) UpdateAppointment(ctx context.Context, id string, updates Updates) (*model.Appointment, error) {
	a, err := do[model.Appointment](ctx, c, http.MethodPut, "/appointments/"+url.PathEscape(id), updates)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *Client) DeleteAppointment(ctx context.Context, id string) error {
	_, err := do[struct{}](ctx, c, http.MethodDelete, "/appointments/"+url.PathEscape(id), nil)
	return err
}

// Doctors (public reads)

func (c *Client) ListDoctors(ctx context.Context) ([]model.Doctor, error) {
	return do[[]model.Doctor](ctx, c, http.MethodGet, "/doctors", nil)
}

func (c *Client) GetDoctor(ctx context.Context, id string) (*model.Doctor, error) {
	d, err := do[model.Doctor](ctx, c, http.MethodGet, "/doctors/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *Client) CreateDoctor(ctx context.Context, doctor model.Doctor) (*model.Doctor, error) {
	d, err := do[model.Doctor](ctx, c, http.MethodPost, "/doctors", doctor)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *Client) UpdateDoctor(ctx context.Context, id string, updates Updates) (*model.Doctor, error) {
	d, err := do[model.Doctor](ctx, c, http.MethodPut, "/doctors/"+url.PathEscape(id), updates)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *Client) DeleteDoctor(ctx context.Context, id string) error {
	_, err := do[struct{}](ctx, c, http.MethodDelete, "/doctors/"+url.PathEscape(id), nil)
	return err
}

// Departments (public reads)

func (c *Client) ListDepartments(ctx context.Context) ([]model.Department, error) {
	return do[[]model.Department](ctx, c, http.MethodGet, "/departments", nil)
}

func (c *Client) GetDepartment(ctx context.Context, id string) (*model.Department, error) {
	d, err := do[model.Department](ctx, c, http.MethodGet, "/departments/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *Client) CreateDepartment(ctx context.Context, department model.Department) (*model.Department, error) {
	d, err := do[model.Department](ctx, c, http.MethodPost, "/departments", department)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *Client) UpdateDepartment(ctx context.Context, id string, updates Updates) (*model.Department, error) {
	d, err := do[model.Department](ctx, c, http.MethodPut, "/departments/"+url.PathEscape(id), updates)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *Client) DeleteDepartment(ctx context.Context, id string) error {
	_, err := do[struct{}](ctx, c, http.MethodDelete, "/departments/"+url.PathEscape(id), nil)
	return err
}

// Services (public reads)

func (c *Client) ListServices(ctx context.Context) ([]model.Service, error) {
	return do[[]model.Service](ctx, c, http.MethodGet, "/services", nil)
}

func (c *Client) GetService(ctx context.Context, id string) (*model.Service, error) {
	s, err := do[model.Service](ctx, c, http.MethodGet, "/services/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) CreateService(ctx context.Context, service model.Service) (*model.Service, error) {
	s, err := do[model.Service](ctx, c, http.MethodPost, "/services", service)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) UpdateService(ctx context.Context, id string, updates Updates) (*model.Service, error) {
	s, err := do[model.Service](ctx, c, http.MethodPut, "/services/"+url.PathEscape(id), updates)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) DeleteService(ctx context.Context, id string) error {
	_, err := do[struct{}](ctx, c, http.MethodDelete, "/services/"+url.PathEscape(id), nil)
	return err
}

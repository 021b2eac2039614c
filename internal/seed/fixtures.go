// Package seed holds the fixture catalog the marketing site launches with.
// Ids are stable so pages can deep-link departments and services.
package seed

import "github.com/medicore/hospital-api/internal/model"

func Departments() []model.Department {
	return []model.Department{
		{
			ID:          "cardiology",
			Name:        "Cardiology",
			Description: "Comprehensive heart care from prevention to intervention.",
			Icon:        "heart",
			Color:       "red",
			Services:    []string{"ECG", "Echocardiography", "Angioplasty", "Cardiac Rehabilitation"},
			Facilities:  []string{"Cath Lab", "Coronary Care Unit"},
		},
		{
			ID:          "neurology",
			Name:        "Neurology",
			Description: "Diagnosis and treatment of disorders of the brain and nervous system.",
			Icon:        "brain",
			Color:       "purple",
			Services:    []string{"EEG", "EMG", "Stroke Care", "Epilepsy Management"},
			Facilities:  []string{"Neuro ICU", "Sleep Lab"},
		},
		{
			ID:          "orthopedics",
			Name:        "Orthopedics",
			Description: "Bone, joint and spine care, from sports injuries to joint replacement.",
			Icon:        "bone",
			Color:       "blue",
			Services:    []string{"Joint Replacement", "Arthroscopy", "Spine Surgery", "Physiotherapy"},
			Facilities:  []string{"Orthopedic OT", "Rehabilitation Gym"},
		},
		{
			ID:          "pediatrics",
			Name:        "Pediatrics",
			Description: "Primary and specialty care for infants, children and adolescents.",
			Icon:        "baby",
			Color:       "green",
			Services:    []string{"Well-Child Visits", "Immunization", "Neonatal Care"},
			Facilities:  []string{"NICU", "Pediatric Ward"},
		},
		{
			ID:          "dermatology",
			Name:        "Dermatology",
			Description: "Medical and cosmetic skin care for all ages.",
			Icon:        "sparkles",
			Color:       "pink",
			Services:    []string{"Skin Cancer Screening", "Laser Therapy", "Allergy Testing"},
			Facilities:  []string{"Dermatology Clinic"},
		},
		{
			ID:          "general-medicine",
			Name:        "General Medicine",
			Description: "First-line care, health checks and management of chronic conditions.",
			Icon:        "stethoscope",
			Color:       "teal",
			Services:    []string{"Health Checkups", "Diabetes Care", "Hypertension Clinic"},
			Facilities:  []string{"Outpatient Clinic", "Day Care Unit"},
		},
	}
}

func Services() []model.Service {
	return []model.Service{
		{
			ID:          "emergency-care",
			Title:       "24/7 Emergency Care",
			Description: "Round-the-clock emergency response with on-site trauma specialists.",
			Icon:        "ambulance",
			Features:    []string{"Ambulance Service", "Trauma Center", "Emergency OT"},
		},
		{
			ID:          "diagnostics",
			Title:       "Advanced Diagnostics",
			Description: "Full imaging and laboratory services under one roof.",
			Icon:        "microscope",
			Features:    []string{"MRI & CT", "Pathology Lab", "Same-Day Reports"},
		},
		{
			ID:          "pharmacy",
			Title:       "In-House Pharmacy",
			Description: "Hospital pharmacy stocked for every department, open 24 hours.",
			Icon:        "pill",
			Features:    []string{"24-Hour Counter", "Home Delivery"},
		},
		{
			ID:          "telemedicine",
			Title:       "Telemedicine",
			Description: "Video consultations with our specialists from home.",
			Icon:        "video",
			Features:    []string{"Video Consults", "e-Prescriptions", "Follow-Up Reminders"},
		},
	}
}

func Doctors() []model.Doctor {
	return []model.Doctor{
		{
			ID:         "dr-sarah-lee",
			Name:       "Dr. Sarah Lee",
			Specialty:  "Interventional Cardiology",
			Department: "Cardiology",
			Experience: "15 years",
			Education:  "MD, Johns Hopkins University",
			Languages:  []string{"English", "Korean"},
			Bio:        "Specializes in minimally invasive coronary interventions.",
		},
		{
			ID:         "dr-miguel-alvarez",
			Name:       "Dr. Miguel Alvarez",
			Specialty:  "Neurology",
			Department: "Neurology",
			Experience: "12 years",
			Education:  "MD, Stanford University",
			Languages:  []string{"English", "Spanish"},
			Bio:        "Focuses on stroke prevention and epilepsy management.",
		},
		{
			ID:         "dr-priya-nair",
			Name:       "Dr. Priya Nair",
			Specialty:  "Orthopedic Surgery",
			Department: "Orthopedics",
			Experience: "18 years",
			Education:  "MS Orthopedics, AIIMS",
			Languages:  []string{"English", "Hindi", "Malayalam"},
			Bio:        "Leads the joint replacement program.",
		},
		{
			ID:         "dr-james-okafor",
			Name:       "Dr. James Okafor",
			Specialty:  "Pediatrics",
			Department: "Pediatrics",
			Experience: "10 years",
			Education:  "MD, University of Lagos",
			Languages:  []string{"English"},
			Bio:        "Neonatal intensive care and childhood immunization.",
		},
		{
			ID:         "dr-emma-fischer",
			Name:       "Dr. Emma Fischer",
			Specialty:  "Dermatology",
			Department: "Dermatology",
			Experience: "9 years",
			Education:  "MD, Charité Berlin",
			Languages:  []string{"English", "German"},
			Bio:        "Skin cancer screening and laser dermatology.",
		},
		{
			ID:         "dr-wei-zhang",
			Name:       "Dr. Wei Zhang",
			Specialty:  "Internal Medicine",
			Department: "General Medicine",
			Experience: "14 years",
			Education:  "MD, Peking Union Medical College",
			Languages:  []string{"English", "Mandarin"},
			Bio:        "Chronic disease management and preventive care.",
		},
	}
}

package converter

import (
	"time"

	"health-monitoring-api/internal/delivery/dto"
	"health-monitoring-api/internal/domain/entity"
)

// PatientProfileToListItem builds one roster row. User must be preloaded;
// vitals are the latest reading per type; lastVisit may be nil.
func PatientProfileToListItem(profile *entity.PatientProfile, vitals []entity.PatientVital, lastVisit *time.Time) dto.PatientListItem {
	return dto.PatientListItem{
		ID:          profile.ID,
		Name:        profile.Name,
		Age:         profile.Age,
		Gender:      profile.Gender,
		BloodType:   profile.BloodType,
		RiskLevel:   profile.RiskLevel,
		HealthScore: profile.EffectiveHealthScore(),
		Email:       profile.User.Email,
		Phone:       profile.User.Phone,
		LastVisit:   lastVisit,
		Vitals:      VitalsToReadingMap(vitals),
	}
}

// PatientProfileToDetail builds the chart header for one patient.
func PatientProfileToDetail(profile *entity.PatientProfile, medications []entity.Medication, appointments []entity.Appointment, lastConsultation *entity.Consultation) *dto.PatientDetailResponse {
	if profile == nil {
		return nil
	}

	return &dto.PatientDetailResponse{
		ID:               profile.ID,
		Name:             profile.Name,
		Age:              profile.Age,
		Gender:           profile.Gender,
		BloodType:        profile.BloodType,
		RiskLevel:        profile.RiskLevel,
		HealthScore:      profile.EffectiveHealthScore(),
		EmergencyContact: profile.EmergencyContact,
		Email:            profile.User.Email,
		Phone:            profile.User.Phone,
		Avatar:           profile.User.Avatar,
		Medications:      MedicationsToResponses(medications),
		Appointments:     AppointmentsToResponses(appointments),
		LastConsultation: ConsultationToResponse(lastConsultation),
	}
}

// PatientProfileToSummary builds the patient dashboard profile block.
func PatientProfileToSummary(profile *entity.PatientProfile) dto.PatientProfileSummary {
	return dto.PatientProfileSummary{
		ID:               profile.ID,
		Name:             profile.Name,
		Email:            profile.User.Email,
		Age:              profile.Age,
		Gender:           profile.Gender,
		BloodType:        profile.BloodType,
		HealthScore:      profile.EffectiveHealthScore(),
		RiskLevel:        profile.RiskLevel,
		EmergencyContact: profile.EmergencyContact,
	}
}

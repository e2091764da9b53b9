package notification

import (
	"fmt"

	"dealershub/internal/domain"
)

// Payload is the rendered shape of one notification. Templates below are
// pure functions from workflow facts to a Payload so that workflows never
// build strings inline.
type Payload struct {
	Type    domain.NotificationType
	Title   string
	Message string
	Link    string
}

func LeadAssigned(leadName string, leadID int64) Payload {
	return Payload{
		Type:    domain.NotifLeadAssigned,
		Title:   "New lead assigned",
		Message: fmt.Sprintf("Lead %q has been assigned to you for follow-up", leadName),
		Link:    fmt.Sprintf("/leads/%d", leadID),
	}
}

func BookingCreated(customer string, bookingID int64) Payload {
	return Payload{
		Type:    domain.NotifBookingCreated,
		Title:   "New booking confirmed",
		Message: fmt.Sprintf("A booking for %s has been confirmed", customer),
		Link:    fmt.Sprintf("/bookings/%d", bookingID),
	}
}

func DeliveryCompleted(customer, vehicle string, deliveryID int64) Payload {
	return Payload{
		Type:    domain.NotifDeliveryDone,
		Title:   "Vehicle delivered",
		Message: fmt.Sprintf("%s was handed over to %s", vehicle, customer),
		Link:    fmt.Sprintf("/deliveries/%d", deliveryID),
	}
}

func AppointmentCreated(customer, serviceType string, appointmentID int64) Payload {
	return Payload{
		Type:    domain.NotifAppointmentNew,
		Title:   "Service appointment scheduled",
		Message: fmt.Sprintf("%s scheduled for %s", serviceType, customer),
		Link:    fmt.Sprintf("/appointments/%d", appointmentID),
	}
}

func JobCardCompleted(jobNo string, jobCardID int64) Payload {
	return Payload{
		Type:    domain.NotifJobCardDone,
		Title:   "Job card completed",
		Message: fmt.Sprintf("Job card %s has been completed and invoiced", jobNo),
		Link:    fmt.Sprintf("/job-cards/%d", jobCardID),
	}
}

func LowStock(partName string, stock int64, partID int64) Payload {
	return Payload{
		Type:    domain.NotifLowStock,
		Title:   "Low stock alert",
		Message: fmt.Sprintf("Spare part %q is down to %d units", partName, stock),
		Link:    fmt.Sprintf("/spare-parts/%d", partID),
	}
}

func PayrollGenerated(month string, count int) Payload {
	return Payload{
		Type:    domain.NotifPayrollGenerated,
		Title:   "Payroll generated",
		Message: fmt.Sprintf("Payroll for %s generated for %d employees", month, count),
		Link:    "/payroll",
	}
}

func Invited(role domain.Role, acceptLink string) Payload {
	return Payload{
		Type:    domain.NotifInvitation,
		Title:   "You have been invited",
		Message: fmt.Sprintf("You have been invited to join as %s", role),
		Link:    acceptLink,
	}
}

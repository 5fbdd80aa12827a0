package domain

// Structured operation outcomes. Expected business conditions (full venue,
// spent ticket) travel as outcomes, not as errors; the error channel is
// reserved for storage and transport faults.

type AdmissionOutcome string

const (
	AdmissionAdmitted     AdmissionOutcome = "ADMITTED"
	AdmissionVenueFull    AdmissionOutcome = "VENUE_FULL"
	AdmissionCheckedOut   AdmissionOutcome = "CHECKED_OUT"
	AdmissionVenueEmpty   AdmissionOutcome = "VENUE_EMPTY"
	AdmissionVenueUnknown AdmissionOutcome = "VENUE_NOT_FOUND"
)

type AdmissionResult struct {
	Outcome    AdmissionOutcome `json:"outcome"`
	Capacity   *VenueCapacity   `json:"capacity,omitempty"`
	CrowdLevel CrowdLevel       `json:"crowd_level,omitempty"`
}

type RedemptionOutcome string

const (
	RedemptionAdmitted    RedemptionOutcome = "ADMITTED"
	RedemptionNotFound    RedemptionOutcome = "TICKET_NOT_FOUND"
	RedemptionAlreadyUsed RedemptionOutcome = "ALREADY_USED"
	RedemptionRefunded    RedemptionOutcome = "REFUNDED"
	RedemptionVenueFull   RedemptionOutcome = "VENUE_FULL"
)

type RedemptionResult struct {
	Outcome  RedemptionOutcome `json:"outcome"`
	Ticket   *Ticket           `json:"ticket,omitempty"`
	Capacity *VenueCapacity    `json:"capacity,omitempty"`
}

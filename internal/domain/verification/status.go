package verification

import (
	"github.com/BruksfildServices01/delivery-marketplace/internal/httperr"
	"github.com/BruksfildServices01/delivery-marketplace/internal/models"
)

// ===============================
// Verification Status
// ===============================

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func InitialStatus() Status {
	return StatusPending
}

func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusPending, StatusApproved, StatusRejected:
		return st, nil
	}
	return "", httperr.ErrBusiness("invalid_status")
}

// IsVerified is the boolean kept next to the status. It is derived from the
// status on every transition so the two never disagree.
func (s Status) IsVerified() bool {
	return s == StatusApproved
}

// ===============================
// Domain Actions
// ===============================

// Any status may move to any other one; admins can revise a decision.

func ApplyToDeliveryBoy(d *models.DeliveryBoy, s Status) {
	d.VerificationStatus = string(s)
	d.IsVerified = s.IsVerified()
}

func ApplyToRetailer(r *models.RetailerShop, s Status) {
	r.VerificationStatus = string(s)
	r.IsVerified = s.IsVerified()
}

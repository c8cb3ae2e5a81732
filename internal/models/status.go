package models

// DueStatus classifies a customer's repayment situation from the earliest
// due date among their outstanding debts.
type DueStatus string

const (
	// StatusSettled means no debt has anything outstanding.
	StatusSettled DueStatus = "settled"
	// StatusOverdue means the earliest due date is in the past.
	StatusOverdue DueStatus = "overdue"
	// StatusDueSoon means the earliest due date is today or within two days.
	StatusDueSoon DueStatus = "dueSoon"
	// StatusOnTrack means the earliest due date is more than two days out.
	StatusOnTrack DueStatus = "onTrack"
)

package booking

import "detailops/models"

// transitions is the booking state machine: for each current status, the set
// of statuses it may move to. Completed and cancelled have no outgoing edges.
var transitions = map[models.BookingStatus][]models.BookingStatus{
	models.BookingScheduled: {
		models.BookingConfirmed,
		models.BookingCancelled,
		models.BookingNoShow,
	},
	models.BookingConfirmed: {
		models.BookingInProgress,
		models.BookingCancelled,
		models.BookingNoShow,
	},
	models.BookingInProgress: {
		models.BookingCompleted,
	},
	models.BookingCompleted: {},
	models.BookingCancelled: {},
	models.BookingNoShow:    {},
}

// CanTransition reports whether a booking may move from one status to
// another.
func CanTransition(from, to models.BookingStatus) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Transition validates the move and returns a typed conflict error when the
// state machine forbids it.
func Transition(b *models.Booking, to models.BookingStatus) error {
	if !CanTransition(b.Status, to) {
		return NewConflict("booking %s cannot move from %s to %s", b.ID, b.Status, to)
	}
	b.Status = to
	return nil
}

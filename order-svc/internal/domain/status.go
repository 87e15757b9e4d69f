package domain

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusPreparing  Status = "preparing"
	StatusReady      Status = "ready"
	StatusDelivering Status = "delivering"
	StatusReceived   Status = "received"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
	StatusToDeduct   Status = "to_deduct"
	StatusPaid       Status = "paid"
)

var allStatuses = []Status{
	StatusPending, StatusConfirmed, StatusPreparing, StatusReady, StatusDelivering,
	StatusReceived, StatusDelivered, StatusCancelled, StatusToDeduct, StatusPaid,
}

func AllStatuses() []Status {
	out := make([]Status, len(allStatuses))
	copy(out, allStatuses)
	return out
}

func (s Status) Valid() bool {
	for _, known := range allStatuses {
		if s == known {
			return true
		}
	}
	return false
}

func (s Status) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

package service

import "cardapio/order-svc/internal/domain"

type track int

const (
	standardTrack track = iota
	payrollTrack
)

func trackFor(method domain.PaymentMethod) track {
	if method == domain.PaymentPayrollDiscount {
		return payrollTrack
	}
	return standardTrack
}

// transitionRule describes the options offered from one status on one track.
type transitionRule struct {
	next          domain.Status
	nextWhenPaid  domain.Status
	offerReceived bool
	cancellable   bool
}

type transitionKey struct {
	track track
	from  domain.Status
}

var transitions = map[transitionKey]transitionRule{
	{standardTrack, domain.StatusPending}:    {next: domain.StatusConfirmed, offerReceived: true, cancellable: true},
	{standardTrack, domain.StatusConfirmed}:  {next: domain.StatusPreparing, offerReceived: true, cancellable: true},
	{standardTrack, domain.StatusPreparing}:  {next: domain.StatusReady, offerReceived: true, cancellable: true},
	{standardTrack, domain.StatusReady}:      {next: domain.StatusDelivering, offerReceived: true, cancellable: true},
	{standardTrack, domain.StatusDelivering}: {next: domain.StatusReceived, nextWhenPaid: domain.StatusDelivered, cancellable: true},
	{standardTrack, domain.StatusReceived}:   {next: domain.StatusDelivered, cancellable: true},

	{payrollTrack, domain.StatusPending}:  {next: domain.StatusToDeduct, cancellable: true},
	{payrollTrack, domain.StatusToDeduct}: {next: domain.StatusPaid},
	{payrollTrack, domain.StatusPaid}:     {next: domain.StatusDelivered},
}

// fallbackRule applies to non-terminal statuses a track does not sequence.
var fallbackRule = transitionRule{cancellable: true}

// StatusEngine computes which statuses staff may move an order to.
// It holds no state; the zero value is ready to use.
type StatusEngine struct{}

func NewStatusEngine() StatusEngine {
	return StatusEngine{}
}

// PaymentReceived reports whether an order counts as settled for sequencing.
// Card and payroll deduction are treated as settled up front.
func (StatusEngine) PaymentReceived(status domain.Status, method domain.PaymentMethod) bool {
	switch {
	case status == domain.StatusReceived, status == domain.StatusPaid:
		return true
	case method == domain.PaymentCard, method == domain.PaymentPayrollDiscount:
		return true
	}
	return false
}

func (StatusEngine) NextStatusOptions(current domain.Status, paymentReceived bool, method domain.PaymentMethod) []domain.Status {
	if current.Terminal() {
		return []domain.Status{}
	}

	rule, ok := transitions[transitionKey{trackFor(method), current}]
	if !ok {
		rule = fallbackRule
	}

	options := make([]domain.Status, 0, 3)
	if rule.next != "" {
		if paymentReceived && rule.nextWhenPaid != "" {
			options = append(options, rule.nextWhenPaid)
		} else {
			options = append(options, rule.next)
		}
	}
	if rule.offerReceived && !paymentReceived {
		options = append(options, domain.StatusReceived)
	}
	if rule.cancellable {
		options = append(options, domain.StatusCancelled)
	}
	return options
}

func (e StatusEngine) CanTransition(current, target domain.Status, paymentReceived bool, method domain.PaymentMethod) bool {
	for _, option := range e.NextStatusOptions(current, paymentReceived, method) {
		if option == target {
			return true
		}
	}
	return false
}

// OrderOptions is NextStatusOptions for a stored order.
func (e StatusEngine) OrderOptions(order *domain.Order) []domain.Status {
	paid := e.PaymentReceived(order.Status, order.PaymentMethod)
	return e.NextStatusOptions(order.Status, paid, order.PaymentMethod)
}

package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("status transition not allowed")
)

// ValidationError reports input that must be fixed by the caller before
// the operation can proceed.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func newValidationError(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

type CouponRejectReason string

const (
	CouponNotFound       CouponRejectReason = "not_found"
	CouponInactive       CouponRejectReason = "inactive"
	CouponExpired        CouponRejectReason = "expired"
	CouponBelowMinimum   CouponRejectReason = "below_minimum"
	CouponUsageExhausted CouponRejectReason = "usage_exhausted"
)

var couponMessages = map[CouponRejectReason]string{
	CouponNotFound:       "coupon not found",
	CouponInactive:       "coupon is not active",
	CouponExpired:        "coupon has expired",
	CouponBelowMinimum:   "order total is below the coupon minimum",
	CouponUsageExhausted: "coupon usage limit reached",
}

type CouponRejectedError struct {
	Code   string
	Reason CouponRejectReason
}

func (e *CouponRejectedError) Error() string {
	return couponMessages[e.Reason]
}

// renderGroupMessage fills the {min} and {max} placeholders of a group's
// custom selection message.
func renderGroupMessage(template string, min, max int) string {
	r := strings.NewReplacer("{min}", strconv.Itoa(min), "{max}", strconv.Itoa(max))
	return r.Replace(template)
}

package domain

// OverstayLimits maps a visitor type to its overstay limit in minutes:
// a visitor checked in but not checked out past the limit is flagged
// as overstaying. The table used to be duplicated per screen with
// diverging values; it is now configured in one place and served from
// a single endpoint.
type OverstayLimits map[string]int

// Visitor types recognized by the overstay policy
const (
	VisitorTypeGuest    = "GUEST"
	VisitorTypeDelivery = "DELIVERY"
	VisitorTypeCab      = "CAB"
	VisitorTypeStaff    = "STAFF"
)

// DefaultOverstayLimits fallback table when no limits are configured
var DefaultOverstayLimits = OverstayLimits{
	VisitorTypeGuest:    720,
	VisitorTypeDelivery: 60,
	VisitorTypeCab:      45,
	VisitorTypeStaff:    600,
}

// LimitFor returns the limit for the visitor type, falling back to the
// default table for unknown types
func (l OverstayLimits) LimitFor(visitorType string) (int, bool) {
	if limit, ok := l[visitorType]; ok {
		return limit, true
	}
	limit, ok := DefaultOverstayLimits[visitorType]
	return limit, ok
}

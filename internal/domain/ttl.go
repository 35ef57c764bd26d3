package domain

import "time"

// TTL is one of the fixed link lifetimes a client may request.
type TTL struct {
	label    string
	duration time.Duration
}

var ttls = []TTL{
	{label: "1m", duration: time.Minute},
	{label: "5m", duration: 5 * time.Minute},
	{label: "30m", duration: 30 * time.Minute},
	{label: "1h", duration: time.Hour},
	{label: "5h", duration: 5 * time.Hour},
}

// ParseTTL maps a TTL label to its duration. Unknown and empty labels
// return ErrInvalidTTL.
func ParseTTL(label string) (TTL, error) {
	for _, t := range ttls {
		if t.label == label {
			return t, nil
		}
	}
	return TTL{}, ErrInvalidTTL
}

// TTLLabels returns the accepted labels, shortest lifetime first.
func TTLLabels() []string {
	labels := make([]string, len(ttls))
	for i, t := range ttls {
		labels[i] = t.label
	}
	return labels
}

func (t TTL) Label() string {
	return t.label
}

func (t TTL) Duration() time.Duration {
	return t.duration
}

// ExpiresAt returns the instant a link created at createdAt stops resolving.
func (t TTL) ExpiresAt(createdAt time.Time) time.Time {
	return createdAt.Add(t.duration)
}

package model

import "fmt"

// TimePeriod is a statistics window recognised by the API. The wire form is
// the literal lowercase string, used both as a query value and as a key in
// per-pool stats objects.
type TimePeriod string

const (
	Period5m  TimePeriod = "5m"
	Period15m TimePeriod = "15m"
	Period30m TimePeriod = "30m"
	Period1h  TimePeriod = "1h"
	Period2h  TimePeriod = "2h"
	Period4h  TimePeriod = "4h"
	Period8h  TimePeriod = "8h"
	Period12h TimePeriod = "12h"
	Period24h TimePeriod = "24h"
)

// TimePeriods lists all windows in ascending order.
var TimePeriods = []TimePeriod{
	Period5m, Period15m, Period30m,
	Period1h, Period2h, Period4h, Period8h, Period12h, Period24h,
}

var validPeriods = func() map[TimePeriod]struct{} {
	m := make(map[TimePeriod]struct{}, len(TimePeriods))
	for _, p := range TimePeriods {
		m[p] = struct{}{}
	}
	return m
}()

// ParseTimePeriod converts a wire string into a TimePeriod.
func ParseTimePeriod(s string) (TimePeriod, error) {
	p := TimePeriod(s)
	if _, ok := validPeriods[p]; !ok {
		return "", fmt.Errorf("unknown time period %q", s)
	}
	return p, nil
}

func (p TimePeriod) String() string { return string(p) }

// MarshalText emits the wire form.
func (p TimePeriod) MarshalText() ([]byte, error) {
	return []byte(p), nil
}

// UnmarshalText enforces the closed enumeration; it also runs when the
// period appears as a JSON object key.
func (p *TimePeriod) UnmarshalText(text []byte) error {
	parsed, err := ParseTimePeriod(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

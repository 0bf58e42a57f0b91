package shared

// GameTime is a simulated timestamp in raw time units. It only ever moves
// forward; the driving loop advances it by a configured step per tick.
type GameTime int64

// UnitsPerPeriod is the number of raw time units in one standard time period,
// the unit every price field period is expressed in.
const UnitsPerPeriod = 1e7

// Periods converts the timestamp into fractional standard time periods
func (t GameTime) Periods() float64 {
	return float64(t) / UnitsPerPeriod
}

// Before reports whether t is strictly earlier than other
func (t GameTime) Before(other GameTime) bool {
	return t < other
}

// Add returns the timestamp moved forward by dt raw units
func (t GameTime) Add(dt int64) GameTime {
	return t + GameTime(dt)
}

package payrec

// AccountSnapshot is a point-in-time view of one account, suitable for
// reporting. Snapshots are only produced for accounts whose total is
// representable.
type AccountSnapshot struct {
	Client    ClientID
	Available MoneyAmount
	Held      MoneyAmount
	Total     MoneyAmount
	Locked    bool
}

// Snapshot returns one snapshot per known account, in client id order.
// Accounts whose total cannot be computed without overflow are omitted
// entirely.
func (p *Processor) Snapshot() []AccountSnapshot {
	var snaps []AccountSnapshot
	for id, account := range p.Accounts() {
		total, ok := account.Total()
		if !ok {
			continue
		}
		snaps = append(snaps, AccountSnapshot{
			Client:    id,
			Available: account.Available(),
			Held:      account.Held(),
			Total:     total,
			Locked:    account.Locked(),
		})
	}
	return snaps
}

// MarshalJSON implements the json.Marshaler interface for AccountSnapshot,
// keeping the field order of the report format.
func (s AccountSnapshot) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("client", s.Client)
	w.Append("available", s.Available)
	w.Append("held", s.Held)
	w.Append("total", s.Total)
	w.Append("locked", s.Locked)
	return w.MarshalJSON()
}

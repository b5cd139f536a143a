package registration

// Sink is the append-only, ordered list of accepted records.  Insertion order
// is display order.  The zero value is ready to use.
type Sink struct {
	records []Record
}

// Append adds r as the last element.
func (s *Sink) Append(r Record) { s.records = append(s.records, r) }

// Len reports how many records were accepted.
func (s *Sink) Len() int { return len(s.records) }

// All returns a copy of the records in submission order.
func (s *Sink) All() []Record {
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

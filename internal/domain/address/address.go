package address

// Address is a postal address row. Many customers may share one address;
// rows are deduplicated on (street, zip) at write time.
type Address struct {
	ID     int64  `json:"id,omitempty"`
	Street string `json:"street"`
	City   string `json:"city"`
	Zip    string `json:"zip"`
}

// MatchesKey reports whether both addresses share the dedup key (street, zip).
func (a *Address) MatchesKey(other *Address) bool {
	if a == nil || other == nil {
		return false
	}
	return a.Street == other.Street && a.Zip == other.Zip
}

// Equal compares all fields including the id.
func (a *Address) Equal(other *Address) bool {
	if a == nil || other == nil {
		return a == other
	}
	return a.ID == other.ID && a.Street == other.Street && a.City == other.City && a.Zip == other.Zip
}

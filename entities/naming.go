package entities

// NameState classifies a sheet name so the summarize rename rule is a total
// function instead of ad-hoc string matching.
type NameState int

const (
	// NameOpen: "{startDate}-", not yet finalized.
	NameOpen NameState = iota
	// NameFinalized: "{startDate}-{endDate}".
	NameFinalized
	// NameCustom: anything the user renamed by hand. Summarize must not
	// clobber it.
	NameCustom
)

// OpenName is the name a freshly created sheet carries.
func OpenName(startDate string) string {
	return startDate + "-"
}

// FinalizedName is the name summarize assigns once the end date is known.
func FinalizedName(startDate, endDate string) string {
	return startDate + "-" + endDate
}

// ClassifyName decides how summarize may treat the current name given the
// sheet's start date and the load date of its last row.
func ClassifyName(name, startDate, endDate string) NameState {
	switch {
	case name == OpenName(startDate):
		return NameOpen
	case endDate != "" && name == FinalizedName(startDate, endDate):
		return NameFinalized
	default:
		return NameCustom
	}
}

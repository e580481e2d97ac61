package domain

// ProgramID identifies a devotional program offering. The set of valid ids
// is closed and fixed; scheduling rules and the catalog both key on it.
type ProgramID string

const (
	ProgramRadhaKalyanam  ProgramID = "radha-kalyanam"
	ProgramNikunjaUtsavam ProgramID = "nikunja-utsavam"
	ProgramThirumanjanam  ProgramID = "thirumanjanam"
	ProgramNamaRuchi      ProgramID = "nama-ruchi"
	ProgramNamaBhiksha    ProgramID = "nama-bhiksha"
)

// AllProgramIDs lists every valid program id in catalog order.
var AllProgramIDs = []ProgramID{
	ProgramRadhaKalyanam,
	ProgramNikunjaUtsavam,
	ProgramThirumanjanam,
	ProgramNamaRuchi,
	ProgramNamaBhiksha,
}

// Program is a catalog entry: display metadata for one offering.
// Scheduling rules never read these fields; they dispatch on ID only.
type Program struct {
	ID             ProgramID
	Name           string
	Description    string
	Duration       string // human session-length label, e.g. "3 Hours"
	Icon           string
	VideoURL       *string
	DonationAmount string
	ImageURL       string
}

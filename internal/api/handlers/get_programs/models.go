package get_programs

import "github.com/godivinity-atl/GOD-BookingService/internal/domain"

// ProgramResponse HTTP модель программы каталога
type ProgramResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Duration       string  `json:"duration"`
	Icon           string  `json:"icon"`
	VideoURL       *string `json:"videoUrl,omitempty"`
	DonationAmount string  `json:"donationAmount"`
	ImageURL       string  `json:"imageUrl"`
}

// ProgramsResponse HTTP модель списка программ
type ProgramsResponse struct {
	Programs []ProgramResponse `json:"programs"`
}

// FromDomain конвертирует программы каталога в HTTP response
func FromDomain(programs []domain.Program) *ProgramsResponse {
	out := make([]ProgramResponse, len(programs))
	for i, p := range programs {
		out[i] = ProgramResponse{
			ID:             string(p.ID),
			Name:           p.Name,
			Description:    p.Description,
			Duration:       p.Duration,
			Icon:           p.Icon,
			VideoURL:       p.VideoURL,
			DonationAmount: p.DonationAmount,
			ImageURL:       p.ImageURL,
		}
	}
	return &ProgramsResponse{Programs: out}
}

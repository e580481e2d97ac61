// Package catalog holds the static registry of devotional program
// offerings. The table is the single source of truth for display metadata;
// scheduling logic references programs by id string only and never reads
// this package.
package catalog

import (
	"errors"

	"github.com/godivinity-atl/GOD-BookingService/internal/domain"
	"github.com/godivinity-atl/GOD-BookingService/pkg/ptr"
)

// ErrProgramNotFound is returned for ids outside the closed program set.
var ErrProgramNotFound = errors.New("catalog: program not found")

var programs = []domain.Program{
	{
		ID:             domain.ProgramRadhaKalyanam,
		Name:           "Radha Kalyanam",
		Description:    "A devotional ceremony celebrating the divine marriage of Radha and Krishna with bhajans and prayers.",
		Duration:       "3 Hours",
		Icon:           "fa-hands-praying",
		VideoURL:       ptr.Ptr("https://youtube.com/shorts/C2lnjuv50Zw?si=-1eiWMtvjzvxEYre"),
		DonationAmount: "$501",
		ImageURL:       "https://godivinity.org/wp-content/uploads/2025/01/c962aa6f-fc42-4323-94c0-832632e88e7a.jpeg",
	},
	{
		ID:             domain.ProgramNikunjaUtsavam,
		Name:           "Nikunja Utsavam",
		Description:    "A program focused on lovingly serving the Divine Couple in the spirit of Nikunja seva through nama and bhakti.",
		Duration:       "2 Hours",
		Icon:           "fa-sun",
		DonationAmount: "$301",
		ImageURL:       "https://godivinity.org/wp-content/uploads/2021/08/WhatsApp-Image-2021-08-28-at-3.13.27-PM.jpeg",
	},
	{
		ID:             domain.ProgramThirumanjanam,
		Name:           "Thirumanjanam",
		Description:    "A sacred bathing ceremony for the Lord performed at home with abhishekam, nama sankirtan and archana.",
		Duration:       "2 Hours",
		Icon:           "fa-droplet",
		DonationAmount: "$301",
		ImageURL:       "https://godivinity.org/wp-content/uploads/2021/08/WhatsApp-Image-2021-08-28-at-3.13.27-PM.jpeg",
	},
	{
		ID:             domain.ProgramNamaRuchi,
		Name:           "Nama Ruchi",
		Description:    "A satsang designed to build taste (ruchi) for the Holy Name through kirtan, reflection, and association.",
		Duration:       "1 Hour",
		Icon:           "fa-music",
		VideoURL:       ptr.Ptr("https://youtube.com/shorts/qBFfZkudf-4?si=7nb9eUqYKdVZlNmW"),
		DonationAmount: "$201",
		ImageURL:       "https://godivinity.org/wp-content/uploads/2022/08/WhatsApp-Image-2022-08-26-at-7.41.51-AM-1.jpeg",
	},
	{
		ID:             domain.ProgramNamaBhiksha,
		Name:           "Nama Bhiksha",
		Description:    "A simple and heartfelt gathering centered on chanting and sharing prasadam in the mood of humility and devotion.",
		Duration:       "30 min - 1 Hour",
		Icon:           "fa-heart",
		DonationAmount: "Any amount appreciated",
		ImageURL:       "https://godivinity.org/wp-content/uploads/2023/06/WhatsApp-Image-2023-06-24-at-8.47.17-PM-3.jpeg",
	},
}

var byID = func() map[domain.ProgramID]domain.Program {
	m := make(map[domain.ProgramID]domain.Program, len(programs))
	for _, p := range programs {
		m[p.ID] = p
	}
	return m
}()

// List returns every program in catalog order.
func List() []domain.Program {
	out := make([]domain.Program, len(programs))
	copy(out, programs)
	return out
}

// Get looks up a program by id.
func Get(id domain.ProgramID) (domain.Program, error) {
	p, ok := byID[id]
	if !ok {
		return domain.Program{}, ErrProgramNotFound
	}
	return p, nil
}

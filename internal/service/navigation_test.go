package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pokeolivos/pokeolivos-api/internal/domain"
)

func TestNavigationLinks(t *testing.T) {
	tests := []struct {
		name        string
		profile     *domain.Profile
		currentPage string
		want        domain.NavigationLinks
	}{
		{
			name:    "no profile",
			profile: nil,
			want:    domain.NavigationLinks{},
		},
		{
			name:    "plain user",
			profile: &domain.Profile{Role: domain.RoleUser, Active: true},
			want:    domain.NavigationLinks{},
		},
		{
			name:    "inactive admin",
			profile: &domain.Profile{Role: domain.RoleAdmin, Active: false},
			want:    domain.NavigationLinks{},
		},
		{
			name:        "active mod on the admin page",
			profile:     &domain.Profile{Role: domain.RoleMod, Active: true},
			currentPage: PageAdmin,
			want:        domain.NavigationLinks{ShowAlbumLink: true},
		},
		{
			name:        "active admin on the album page",
			profile:     &domain.Profile{Role: domain.RoleAdmin, Active: true},
			currentPage: PageAlbum,
			want:        domain.NavigationLinks{ShowAdminLink: true},
		},
		{
			name:    "active admin elsewhere",
			profile: &domain.Profile{Role: domain.RoleAdmin, Active: true},
			want:    domain.NavigationLinks{ShowAdminLink: true, ShowAlbumLink: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NavigationLinks(tt.profile, tt.currentPage)

			assert.Equal(t, tt.want, got)
		})
	}
}

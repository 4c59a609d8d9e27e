package service

import "github.com/pokeolivos/pokeolivos-api/internal/domain"

// Pages a navigation request can originate from.
const (
	PageAdmin = "admin"
	PageAlbum = "album"
)

// NavigationLinks decides which album views to offer in the navbar. An
// inactive or missing profile gets nothing regardless of role, and staff
// get whichever view they are not already on. Advisory only; the route
// guards re-check on every request.
func NavigationLinks(profile *domain.Profile, currentPage string) domain.NavigationLinks {
	if profile == nil || !profile.Active || !profile.IsStaff() {
		return domain.NavigationLinks{}
	}

	return domain.NavigationLinks{
		ShowAdminLink: currentPage != PageAdmin,
		ShowAlbumLink: currentPage != PageAlbum,
	}
}

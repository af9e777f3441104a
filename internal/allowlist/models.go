// Package allowlist is the trust store: uploader accounts that may post
// content carrying registered markers without triggering enforcement.
package allowlist

import "time"

// Platform names where an uploader is trusted. Trust is scoped to the
// exact platform; the same handle on another platform is a different
// uploader.
type Platform string

const (
	PlatformInstagram    Platform = "Instagram"
	PlatformGoogleImages Platform = "Google Images"
	PlatformX            Platform = "X (Twitter)"
	PlatformFacebook     Platform = "Facebook"
	PlatformTikTok       Platform = "TikTok"
	PlatformNewsMedia    Platform = "News / media"
	PlatformOther        Platform = "Other"
)

// Valid reports whether p is one of the supported platforms.
func (p Platform) Valid() bool {
	switch p {
	case PlatformInstagram, PlatformGoogleImages, PlatformX,
		PlatformFacebook, PlatformTikTok, PlatformNewsMedia, PlatformOther:
		return true
	}
	return false
}

// Entry is one trusted uploader. Note is an internal annotation and never
// shown outside the owner's views.
type Entry struct {
	ID        string    `json:"id"`
	Handle    string    `json:"handle"`
	Platform  Platform  `json:"platform"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

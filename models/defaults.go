package models

// Placeholder asset paths persisted when content is created without an image.
// These exact strings are part of the public contract: clients and the review
// photo filter compare against them.
const (
	DefaultPostImageURL = "/images/default-postImage.png"
	DefaultSpotImageURL = "/images/default-spotImage.png"
	DefaultReviewImage  = "/images/default-review.png"
	DefaultAvatarURL    = "/images/default-avatar.png"
)

// AnonymousUserName is shown in place of a display name when the owning
// user record cannot be loaded.
const AnonymousUserName = "Anonymous user"

package models

type ProfileType string
type MediaType string
type JobStatus string
type ApplicationStatus string

const (
	ProfileTypeArtist ProfileType = "artist"
	ProfileTypeVenue  ProfileType = "venue"

	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
	MediaTypeAudio MediaType = "audio"

	JobStatusOpen      JobStatus = "open"
	JobStatusFilled    JobStatus = "filled"
	JobStatusCancelled JobStatus = "cancelled"

	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// ValidProfileType reports whether t is a known profile type.
func ValidProfileType(t ProfileType) bool {
	return t == ProfileTypeArtist || t == ProfileTypeVenue
}

// ValidMediaType reports whether t is a known media type.
func ValidMediaType(t MediaType) bool {
	return t == MediaTypeImage || t == MediaTypeVideo || t == MediaTypeAudio
}

// ValidApplicationStatus reports whether s is a known application status.
func ValidApplicationStatus(s ApplicationStatus) bool {
	return s == ApplicationStatusPending || s == ApplicationStatusAccepted || s == ApplicationStatusRejected
}

// TerminalApplicationStatus reports whether s ends the application lifecycle.
func TerminalApplicationStatus(s ApplicationStatus) bool {
	return s == ApplicationStatusAccepted || s == ApplicationStatusRejected
}

package competition

// Slug generation
const (
	MaxSlugAttempts = 20
	FallbackSlug    = "competition"
)

// LogoKeyPrefix is the object key prefix for team logos
const LogoKeyPrefix = "teams"

// LogoContentTypes maps accepted logo content types to file extensions
var LogoContentTypes = map[string]string{
	"image/png":     ".png",
	"image/jpeg":    ".jpg",
	"image/webp":    ".webp",
	"image/svg+xml": ".svg",
}

// Validation messages
const (
	ErrMsgNameRequired      = "name is required"
	ErrMsgLockDateRequired  = "lock_date is required"
	ErrMsgStartTimeRequired = "start_time is required"
	ErrMsgQuestionRequired  = "question is required"
	ErrMsgSameTeams         = "team_a_id and team_b_id must differ"
	ErrMsgLogoContentType   = "logo must be png, jpeg, webp or svg"
)

// Log messages
const (
	LogMsgCompetitionCreated = "Competition created"
	LogMsgCompetitionDeleted = "Competition deleted"
	LogMsgLogoUploadFailed   = "Failed to upload team logo"
	LogMsgFixtureImported    = "Fixture imported"
)

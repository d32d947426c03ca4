package constants

const (
	AppName            = "prepdash"
	DefaultKeyringUser = "coach-api-key"
	DefaultConfigPath  = "~/.config/prepdash/prepdash.db"
	Version            = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Routine defaults, substituted field-wise when a routine value is absent
	DefaultWake      = "06:00"
	DefaultBreakfast = "08:00"
	DefaultLunch     = "13:00"
	DefaultSnack     = "17:00"
	DefaultDinner    = "20:30"
	DefaultSleep     = "22:30"

	// Profile defaults
	DefaultTargetPercent  = 90
	DefaultStudyHours     = 8
	DefaultPrepLevel      = "somewhat"
	DefaultLanguage       = "kannada"
	DefaultElective       = "computer"
	DefaultSubjectRating  = "medium"
)

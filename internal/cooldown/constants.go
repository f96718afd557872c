package cooldown

// =============================================================================
// Date Layouts
// =============================================================================

const (
	// DateLayout matches the text a browser's Date.toDateString produces, e.g. "Fri Oct 17 2026"
	DateLayout = "Mon Jan 02 2006"

	// ISODateLayout is also accepted when reading a stored claim date
	ISODateLayout = "2006-01-02"
)

// =============================================================================
// Error Message Format Strings (for ErrOnCooldown.Error())
// =============================================================================

const (
	// ErrFmtCooldownWithHours formats cooldown error with hours and minutes
	ErrFmtCooldownWithHours = "You can %s again in %dh %dm"

	// ErrFmtCooldownWithMinutes formats cooldown error with minutes and seconds
	ErrFmtCooldownWithMinutes = "You can %s again in %dm %ds"

	// ErrFmtCooldownSecondsOnly formats cooldown error with seconds only
	ErrFmtCooldownSecondsOnly = "You can %s again in %ds"

	// ErrFmtUnparseableDate is returned by ParseDate for unknown formats
	ErrFmtUnparseableDate = "unrecognised claim date %q"
)

// =============================================================================
// Time Conversion Constants
// =============================================================================

const (
	// SecondsPerMinute is used for time duration calculations
	SecondsPerMinute = 60

	// MinutesPerHour is used for time duration calculations
	MinutesPerHour = 60
)

package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// BusinessTimeZone is the clinic's fixed timezone. Appointment timestamps
// are always expressed in this zone, regardless of where the client sits;
// the payload's explicit timezone field is the authoritative value for
// the automation backend.
const BusinessTimeZone = "America/Argentina/Buenos_Aires"

// Patient lookup / submission rules
const (
	MinDNIDigits   = 8 // lookup triggers and submission requires at least this many digits
	MinPhoneDigits = 8
)

// Defaults for blank medical notes, applied at submission time only
const (
	DefaultAllergies  = "Ninguna"
	DefaultBackground = "Ninguno"
)

// Booking window: patients may pick a date within the next
// BookingWindowDays calendar days (today excluded), restricted to the
// days the clinic takes appointments.
const BookingWindowDays = 14

// DefaultDebounceMillis is how long a DNI edit waits before the patient
// lookup fires, so rapid typing produces a single request.
const DefaultDebounceMillis = 400

package constants

const (
	AppName = "Glider"

	ConfigName   = "config"
	ConfigFormat = "yaml"
	EnvPrefix    = "GLIDER"

	ServiceName = "glider_backend"
)

// Contact entry types. Only DefaultContactType is written by the API today.
const (
	ContactTypeContact  = "contact"
	ContactTypeWaitlist = "waitlist"

	DefaultContactType = ContactTypeContact
)

var ContactTypes = []string{ContactTypeContact, ContactTypeWaitlist}

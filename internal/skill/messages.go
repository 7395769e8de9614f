package skill

const (
	skillName = "What to Wear"

	// IntentWhatToWear is the primary intent; its optional slots are below.
	IntentWhatToWear = "GetWhatToWearIntent"
	slotZipCode      = "zipcode"
	slotCity         = "city"

	helpMessage        = "You can ask what to wear, or, you can say exit... What can I help you with?"
	helpReprompt       = "What can I help you with?"
	stopMessage        = "Goodbye!"
	fallbackMessage    = "The What to Wear skill can't help you with that. It can help give you an idea of what to wear today based off of the weather. What can I help you with?"
	fallbackReprompt   = "What can I help you with?"
	exceptionMessage   = "Sorry. I cannot help you with that."
	missingPermissions = "Please enable Location permissions in the Amazon Alexa app."
)

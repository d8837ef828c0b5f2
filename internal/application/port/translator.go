package port

// Translator renders human-readable messages for the run transcript.
// Placeholders in the message are written as {name} and filled from args.
// Unknown keys return the key itself.
type Translator interface {
	Translate(key string, args map[string]string) string
}

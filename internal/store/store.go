package store

// errorMessage converts a fetch failure into the message surfaced to
// the user; the backend client already prefers the server-provided
// message over the transport error, so only the empty case needs a
// generic fallback
func errorMessage(err error) string {
	if err == nil || err.Error() == "" {
		return "request failed"
	}
	return err.Error()
}

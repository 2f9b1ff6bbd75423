package api

// RejectedError is a non-success response from the identity provider,
// normalized to a message suitable for direct display to the user.
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	return e.Message
}

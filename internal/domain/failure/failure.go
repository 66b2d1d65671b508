package failure

import "errors"

// Kind classifies a failure independently of any transport status code. The
// HTTP layer owns the translation to status codes; everything below it only
// raises the appropriate kind.
type Kind uint8

const (
	Unexpected Kind = iota
	Unauthorized
	Validation
	NotFound
	Conflict
)

// Error carries a failure kind together with the short message shown to the
// caller and a detail string kept for diagnosability.
type Error struct {
	Kind    Kind
	Message string
	Detail  string
}

func (e *Error) Error() string {
	if e.Detail != "" && e.Detail != e.Message {
		return e.Message + ": " + e.Detail
	}
	return e.Message
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message, Detail: message}
}

func Detailed(kind Kind, message, detail string) *Error {
	return &Error{Kind: kind, Message: message, Detail: detail}
}

// FromError classifies err. Anything that does not carry a Kind is
// Unexpected; its text is preserved as detail, never as the message.
func FromError(err error) *Error {
	var fe *Error
	if errors.As(err, &fe) {
		return fe
	}
	return &Error{Kind: Unexpected, Message: "Something Wrong", Detail: err.Error()}
}

func KindOf(err error) Kind {
	return FromError(err).Kind
}

package auth

// Kind classifies a failure for the transport layer. Token verification
// failures are always collapsed to KindForbidden before they leave this
// package; the finer-grained TokenError kinds stay internal.
type Kind int

const (
	KindConflict Kind = iota + 1
	KindNotFound
	KindForbidden
	KindBadRequest
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func conflict(msg string) error   { return &Error{Kind: KindConflict, Message: msg} }
func notFound(msg string) error   { return &Error{Kind: KindNotFound, Message: msg} }
func forbidden(msg string) error  { return &Error{Kind: KindForbidden, Message: msg} }
func badRequest(msg string) error { return &Error{Kind: KindBadRequest, Message: msg} }

package common

// SessionIdentityKey is the well-known key the serialized identity is stored
// under in the local session database.
const SessionIdentityKey = "identity"

// RequestIDHeaderName is the HTTP header carrying the client-generated
// request id on every outbound API call.
const RequestIDHeaderName = "X-Request-Id"

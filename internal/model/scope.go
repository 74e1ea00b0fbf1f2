package model

// Scope carries the authenticated user identity through the pipeline.
// The identity is supplied by the gateway and trusted unconditionally;
// authorization is the task store's concern.
type Scope struct {
	UserID   string
	Username string
}

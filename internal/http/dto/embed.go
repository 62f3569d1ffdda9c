package dto

// SignedRequest is the body Zendesk POSTs when it loads the sidebar iframe.
// It normally arrives form-encoded; some proxies re-encode it as JSON, so the
// handler tries both.
type SignedRequest struct {
	Token string `form:"token" json:"token"`
}

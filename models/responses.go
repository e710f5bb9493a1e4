package models

// AdminResponse is the response shape of the privileged admin surface. Unlike
// the router's {ok,data,error} envelope it reports a bare success flag and a
// human-readable message.
type AdminResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

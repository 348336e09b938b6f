package shared

// AddedMessage is the plain-text body of a successful create.
const AddedMessage = "Agenda Item Added to Agenda"

type InfoResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Source  string `json:"source"`
}

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Error   string `json:"error"` // http.StatusText(Status)
	Message string `json:"message,omitempty"`
	Path    string `json:"path"`
}

package handler

import "net/http"

// emptyResponse implements Response with a status code and no body.
type emptyResponse struct {
	status int
}

func (e emptyResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.WriteHeader(e.status)
	return nil
}

// NoContent creates a 204 No Content response.
func NoContent() Response {
	return emptyResponse{status: http.StatusNoContent}
}

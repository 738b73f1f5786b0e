package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// FileResponse archivo generado (CSV o PDF) listo para descargar.
type FileResponse struct {
	FileName    string
	ContentType string
	Content     []byte
}

package mime

type MIME = string

const (
	OctetStream MIME = "application/octet-stream"
	Plain       MIME = "text/plain"
	HTML        MIME = "text/html"
	CSS         MIME = "text/css"
	JAVASCRIPT  MIME = "application/javascript"
	JSON        MIME = "application/json"
	PNG         MIME = "image/png"
	JPEG        MIME = "image/jpeg"
	GIF         MIME = "image/gif"
	ICO         MIME = "image/x-icon"
	SVG         MIME = "image/svg+xml"
)

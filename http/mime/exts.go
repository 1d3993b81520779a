package mime

// Extension maps lower-cased file extensions (including the leading dot) to their MIMEs.
var Extension = map[string]MIME{
	".html": HTML,
	".htm":  HTML,
	".css":  CSS,
	".js":   JAVASCRIPT,
	".json": JSON,
	".png":  PNG,
	".jpg":  JPEG,
	".jpeg": JPEG,
	".gif":  GIF,
	".ico":  ICO,
	".txt":  Plain,
	".svg":  SVG,
}

// DefaultCharset defines charsets attached to textual MIMEs.
var DefaultCharset = map[MIME]Charset{
	HTML:       UTF8,
	CSS:        UTF8,
	JAVASCRIPT: UTF8,
	JSON:       UTF8,
	Plain:      UTF8,
}

package render

import (
	"github.com/indigo-web/staticd/http/status"
)

const signature = "staticd"

const stylesheet = `body{font-family:-apple-system,"Segoe UI",Helvetica,Arial,sans-serif;` +
	`background:#f4f4f4;color:#333;margin:0;padding:0}` +
	`.container{max-width:640px;margin:80px auto;padding:32px;background:#fff;` +
	`border-radius:6px;box-shadow:0 1px 4px rgba(0,0,0,.15);text-align:center}` +
	`h1{margin:0 0 16px;font-size:32px;color:#c0392b}` +
	`p{margin:0;color:#777}`

// ErrorPage synthesizes an HTML document for the status code. Both the title and the
// heading read "<code> <status text>".
func ErrorPage(code status.Code) []byte {
	title := status.StringCode(code) + " " + string(status.Text(code))

	page := make([]byte, 0, 512+len(stylesheet))
	page = append(page, "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>"...)
	page = append(page, title...)
	page = append(page, "</title>\n<style>"...)
	page = append(page, stylesheet...)
	page = append(page, "</style>\n</head>\n<body>\n<div class=\"container\">\n<h1>"...)
	page = append(page, title...)
	page = append(page, "</h1>\n<p>"...)
	page = append(page, signature...)
	page = append(page, "</p>\n</div>\n</body>\n</html>\n"...)

	return page
}

package transport

import (
	"mime"
	"strings"
)

// extensionByContentType maps the content types the backend serves to file
// extensions, for downloads whose derived name has none. Unrecognized
// types leave the name extension-less.
var extensionByContentType = map[string]string{
	"application/pdf":    ".pdf",
	"application/msword": ".doc",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": ".docx",
	"application/vnd.ms-excel": ".xls",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": ".xlsx",
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"text/plain": ".txt",
}

// Filename derives the name for a binary download. The content-disposition
// filename parameter wins; otherwise fallback is used, and when the result
// has no extension one is inferred from the content-type.
func (r *Response) Filename(fallback string) string {
	name := fallback

	if cd := r.Header.Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil {
			if fn := params["filename"]; fn != "" && fn != "null" && fn != "undefined" {
				name = fn
			}
		}
	}

	if !strings.Contains(name, ".") {
		ct := r.Header.Get("Content-Type")
		if i := strings.Index(ct, ";"); i >= 0 {
			ct = strings.TrimSpace(ct[:i])
		}
		if ext, ok := extensionByContentType[ct]; ok {
			name += ext
		}
	}

	return name
}

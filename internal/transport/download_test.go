package transport

import (
	"net/http"
	"testing"
)

func TestFilename(t *testing.T) {
	tests := []struct {
		name        string
		disposition string
		contentType string
		fallback    string
		want        string
	}{
		{
			name:        "content-disposition wins",
			disposition: `attachment; filename="relatorio.xlsx"`,
			contentType: "application/octet-stream",
			fallback:    "anexo_7",
			want:        "relatorio.xlsx",
		},
		{
			name:        "fallback plus content-type extension",
			contentType: "application/pdf",
			fallback:    "anexo_7",
			want:        "anexo_7.pdf",
		},
		{
			name:        "unknown content-type stays extension-less",
			contentType: "application/x-proprietary",
			fallback:    "anexo_7",
			want:        "anexo_7",
		},
		{
			name:        "disposition name without extension gets one",
			disposition: `attachment; filename="planilha"`,
			contentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			fallback:    "anexo_7",
			want:        "planilha.xlsx",
		},
		{
			name:        "unparsable disposition falls back",
			disposition: `;;;`,
			contentType: "image/jpeg",
			fallback:    "anexo_7",
			want:        "anexo_7.jpg",
		},
		{
			name:        "literal null filename ignored",
			disposition: `attachment; filename="null"`,
			contentType: "text/plain; charset=utf-8",
			fallback:    "anexo_7",
			want:        "anexo_7.txt",
		},
		{
			name:     "no headers at all",
			fallback: "anexo_7",
			want:     "anexo_7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := http.Header{}
			if tt.disposition != "" {
				h.Set("Content-Disposition", tt.disposition)
			}
			if tt.contentType != "" {
				h.Set("Content-Type", tt.contentType)
			}
			resp := &Response{Status: http.StatusOK, Header: h}
			if got := resp.Filename(tt.fallback); got != tt.want {
				t.Errorf("Filename() = %q, want %q", got, tt.want)
			}
		})
	}
}

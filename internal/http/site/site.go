package site

import (
	"embed"
	"io/fs"
	"net/http"
)

var (
	Index  = "GET /{$}"
	Public = "GET /public/"
)

//go:embed static
var staticFS embed.FS

// FS returns the embedded landing page files rooted at static/.
func FS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return staticFS
	}
	return sub
}

// Register serves index.html at the root and the public/ assets below it.
func Register(mux *http.ServeMux) {
	files := FS()

	mux.HandleFunc(Index, func(w http.ResponseWriter, r *http.Request) {
		http.ServeFileFS(w, r, files, "index.html")
	})
	mux.Handle(Public, http.FileServerFS(files))
}

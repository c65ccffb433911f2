package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/feeling-quotes/internal/adapters/http/dto"
)

// StaticHandler serves the front-end page and its assets from a directory.
type StaticHandler struct {
	dir string
}

// NewStaticHandler creates a handler rooted at dir.
func NewStaticHandler(dir string) *StaticHandler {
	return &StaticHandler{dir: dir}
}

// Index handles GET / by serving index.html.
func (h *StaticHandler) Index(c *gin.Context) {
	h.serve(c, "index.html")
}

// Asset serves any other file under the static directory.
// It is installed as the engine's NoRoute handler, so anything that is not
// a GET or HEAD for an existing file becomes a JSON 404.
func (h *StaticHandler) Asset(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		dto.RespondWithErrorCode(c, dto.ErrorCodeNotFound, "route not found")
		return
	}

	h.serve(c, strings.TrimPrefix(c.Request.URL.Path, "/"))
}

func (h *StaticHandler) serve(c *gin.Context, name string) {
	// Clean against a rooted path so ".." can never climb out of dir.
	path := filepath.Join(h.dir, filepath.FromSlash(filepath.Clean("/"+name)))

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		dto.RespondWithErrorCode(c, dto.ErrorCodeNotFound, "file not found")
		return
	}

	c.File(path)
}

// RegisterStaticRoutes serves / and falls back to files under the directory.
func (h *StaticHandler) RegisterStaticRoutes(engine *gin.Engine) {
	engine.GET("/", h.Index)
	engine.NoRoute(h.Asset)
}

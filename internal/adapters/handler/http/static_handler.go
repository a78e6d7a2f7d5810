package http

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

const indexDocument = "index.html"

var contentTypes = map[string]string{
	".html": "text/html; charset=utf-8",
	".js":   "text/javascript; charset=utf-8",
	".css":  "text/css; charset=utf-8",
	".json": "application/json; charset=utf-8",
}

// headPaths are the pages probed by uptime checks.
var headPaths = map[string]bool{
	"/":           true,
	"/index.html": true,
	"/admin.html": true,
}

// StaticHandler serves the browser front-end from a directory on disk.
type StaticHandler struct {
	root   string
	logger *zap.Logger
}

func NewStaticHandler(root string, logger *zap.Logger) *StaticHandler {
	return &StaticHandler{
		root:   root,
		logger: logger,
	}
}

func (h *StaticHandler) Serve(w http.ResponseWriter, r *http.Request) {
	full, ok := h.resolve(r.URL.Path)
	if !ok {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}

	data, err := os.ReadFile(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			writeError(w, http.StatusNotFound, "Not found")
			return
		}
		writeInternalError(w, r, h.logger, err)
		return
	}

	w.Header().Set("Content-Type", contentType(full))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// Head answers 200 for the known pages and 404 for anything else, without a
// body.
func (h *StaticHandler) Head(w http.ResponseWriter, r *http.Request) {
	if headPaths[r.URL.Path] {
		w.WriteHeader(http.StatusOK)
		return
	}
	w.WriteHeader(http.StatusNotFound)
}

// resolve maps a URL path to a regular file below the root. Paths that
// escape the root, directly or through a symlink, are rejected.
func (h *StaticHandler) resolve(urlPath string) (string, bool) {
	if urlPath == "" || urlPath == "/" {
		urlPath = "/" + indexDocument
	}

	root, err := filepath.Abs(h.root)
	if err != nil {
		return "", false
	}
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		root = resolved
	}

	full := filepath.Join(root, filepath.FromSlash(strings.TrimPrefix(urlPath, "/")))
	full, err = filepath.EvalSymlinks(full)
	if err != nil {
		return "", false
	}
	if !within(root, full) {
		return "", false
	}

	info, err := os.Stat(full)
	if err != nil || !info.Mode().IsRegular() {
		return "", false
	}
	return full, true
}

func within(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func contentType(path string) string {
	if ct, ok := contentTypes[strings.ToLower(filepath.Ext(path))]; ok {
		return ct
	}
	return "application/octet-stream"
}

package static

import (
	"errors"
	"io/fs"
	"net/http"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
)

// RegisterFilesystem serves files under root for GET and HEAD requests.
//
// Files are opened and stat'ed on every request, so Content-Length always
// matches what is streamed. Request paths are decoded and cleaned before
// lookup, so ".." segments cannot leave root. Directories resolve to index, or
// to a generated listing when browse is set. Anything else falls through to the
// application's 404.
func RegisterFilesystem(app fiber.Router, root, index string, browse bool) {
	handler := filesystem.New(filesystem.Config{
		Root:   decodedDir{http.Dir(root)},
		Index:  "/" + strings.TrimPrefix(index, "/"),
		Browse: browse,
	})

	app.Use(func(c *fiber.Ctx) error {
		err := handler(c)
		if errors.Is(err, fiber.ErrForbidden) {
			// Directory without an index and browsing disabled
			return c.Next()
		}
		return err
	})
}

// decodedDir unescapes request paths before handing them to http.Dir, which
// cleans them against its root.
type decodedDir struct {
	dir http.Dir
}

func (d decodedDir) Open(name string) (http.File, error) {
	p, err := url.PathUnescape(name)
	if err != nil {
		return nil, fs.ErrNotExist
	}
	return d.dir.Open(p)
}

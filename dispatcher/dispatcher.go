package dispatcher

import (
	"fmt"
	"io/fs"

	"github.com/indigo-web/staticd/config"
	"github.com/indigo-web/staticd/http"
	"github.com/indigo-web/staticd/http/method"
	"github.com/indigo-web/staticd/http/status"
	"github.com/indigo-web/staticd/internal/protocol/http1"
	"github.com/indigo-web/staticd/internal/uridecode"
)

// Dispatcher turns raw request bytes into a response. It keeps no per-request state, so a
// single instance is shared by all the connections.
type Dispatcher struct {
	fsys fs.FS
	cfg  config.Static
}

func New(fsys fs.FS, cfg config.Static) *Dispatcher {
	return &Dispatcher{
		fsys: fsys,
		cfg:  cfg,
	}
}

// Dispatch runs the request through the checks in a fixed order, where the first failing one
// decides the response: a malformed request is 400, a method other than GET and HEAD is 405,
// an unsafe path is 403 and a missing file is 404. The returned error is the reason of the
// non-200 outcome and is nil otherwise. A panic while serving, e.g. in the filesystem, results
// in 500.
func (d *Dispatcher) Dispatch(raw []byte) (request http.Request, response *http.Response, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", status.ErrInternalServerError, r)
			response = http.Error(request, err)
		}
	}()

	return d.dispatch(raw)
}

func (d *Dispatcher) dispatch(raw []byte) (http.Request, *http.Response, error) {
	request, err := http1.ParseRequest(raw)
	if err != nil {
		return request, http.Error(request, err), err
	}

	if !method.IsAllowed(request.Method) {
		return request, http.Error(request, status.ErrMethodNotAllowed), status.ErrMethodNotAllowed
	}

	// the target is checked as it was sent. Encoded dots pass here and are refused by
	// the lookup instead.
	if !uridecode.IsSafe(request.Path) {
		return request, http.Error(request, status.ErrForbidden), status.ErrForbidden
	}

	name := uridecode.Decode(Resolve(request.Path, d.cfg.DefaultDocument))
	contents, err := d.lookup(name)
	if err != nil {
		return request, http.Error(request, err), err
	}

	return request, request.Respond().File(name, contents), nil
}

// Resolve maps the request target onto a path relative to the root. The root itself is
// the default document.
func Resolve(target, defaultDocument string) string {
	if len(target) == 0 || target == "/" {
		return defaultDocument
	}

	if target[0] == '/' {
		return target[1:]
	}

	return target
}

// lookup reads the whole file. Everything preventing it from being served, including it being
// a directory or, unless configured otherwise, empty, is reported as status.ErrNotFound.
func (d *Dispatcher) lookup(name string) ([]byte, error) {
	if !fs.ValidPath(name) {
		return nil, fmt.Errorf("%w: invalid path %q", status.ErrNotFound, name)
	}

	info, err := fs.Stat(d.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", status.ErrNotFound, err)
	}

	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", status.ErrNotFound, name)
	}

	contents, err := fs.ReadFile(d.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", status.ErrNotFound, err)
	}

	if len(contents) == 0 && d.cfg.EmptyIsNotFound {
		return nil, fmt.Errorf("%w: %s is empty", status.ErrNotFound, name)
	}

	return contents, nil
}

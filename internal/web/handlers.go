package web

import (
	"embed"
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"
	"strings"

	"github.com/RevCBH/decomposerize/internal/compose"
	"github.com/RevCBH/decomposerize/internal/convert"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

//go:embed static
var staticFS embed.FS

// maxBodyBytes bounds the size of a conversion request.
const maxBodyBytes = 1 << 20

// Handler serves the conversion API and the playground page.
type Handler struct {
	defaults convert.Options
	logger   *zap.Logger
}

// NewHandler creates a Handler. Defaults.Logger receives request diagnostics.
func NewHandler(defaults convert.Options) *Handler {
	logger := defaults.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{defaults: defaults, logger: logger}
}

// Routes returns the router with all routes configured.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(h.requestIDHeader)

	r.Get("/health", h.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(h.jsonContentType)
		r.Post("/convert", h.handleConvert)
	})

	r.Handle("/*", IndexHandler(staticFS))

	return r
}

// IndexHandler serves the embedded playground.
func IndexHandler(files fs.FS) http.Handler {
	subFS, _ := fs.Sub(files, "static")
	return http.FileServer(http.FS(subFS))
}

// jsonContentType sets Content-Type header to application/json.
func (h *Handler) jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

// requestIDHeader copies the request ID to the response header.
func (h *Handler) requestIDHeader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if reqID := middleware.GetReqID(r.Context()); reqID != "" {
			w.Header().Set("X-Request-ID", reqID)
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	h.writeJSON(w, http.StatusOK, HealthResponse{Status: "healthy"})
}

// handleConvert converts the compose text in the request body.
// POST /api/v1/convert
func (h *Handler) handleConvert(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req ConvertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.writeError(w, http.StatusRequestEntityTooLarge, "request body too large", "body_too_large")
			return
		}
		h.writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error(), "invalid_request")
		return
	}

	opts, err := h.options(req.Options)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error(), "invalid_options")
		return
	}
	opts.Logger = h.logger.With(zap.String("request_id", middleware.GetReqID(r.Context())))

	out, err := convert.ConvertYAML([]byte(req.Compose), opts)
	if err != nil {
		code := "invalid_compose"
		if errors.Is(err, compose.ErrInvalidYAML) {
			code = "invalid_yaml"
		}
		h.writeError(w, http.StatusUnprocessableEntity, err.Error(), code)
		return
	}

	resp := ConvertResponse{
		Output:   out,
		Commands: []string{},
		Invalid:  out == convert.InvalidCompose,
	}
	if out != "" && !resp.Invalid {
		resp.Commands = splitCommands(out, opts.Multiline)
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// options applies the request overrides to the server defaults.
func (h *Handler) options(o RequestOptions) (convert.Options, error) {
	opts := h.defaults
	if o.Services != nil {
		opts.Services = o.Services
	}
	setBool(&opts.StopAndRemoveContainers, o.StopAndRemoveContainers)
	setBool(&opts.CreateVolumes, o.CreateVolumes)
	setBool(&opts.CreateNetworks, o.CreateNetworks)
	setBool(&opts.DockerRun, o.DockerRun)
	setBool(&opts.DockerBuild, o.DockerBuild)
	setBool(&opts.DeleteImages, o.DeleteImages)
	setBool(&opts.DockerRunRm, o.DockerRunRm)
	setBool(&opts.DockerRunDetach, o.DockerRunDetach)
	setBool(&opts.Multiline, o.Multiline)
	setBool(&opts.LongArgs, o.LongArgs)
	setString(&opts.DockerRunCommand, o.DockerRunCommand)
	setString(&opts.ArgValueSeparator, o.ArgValueSeparator)
	setString(&opts.Engine, o.Engine)

	// The run verb follows a non-docker engine unless it was set explicitly.
	if o.Engine != nil && o.DockerRunCommand == nil && *o.Engine != "" &&
		*o.Engine != convert.DefaultEngine && opts.DockerRunCommand == convert.DefaultDockerRunCommand {
		opts.DockerRunCommand = *o.Engine + " run"
	}

	if opts.ArgValueSeparator != " " && opts.ArgValueSeparator != "=" && opts.ArgValueSeparator != "" {
		return opts, errors.New(`arg-value-separator must be " " or "="`)
	}
	return opts, nil
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// splitCommands breaks the output into one entry per command. Multiline
// commands keep their continuation lines.
func splitCommands(out string, multiline bool) []string {
	lines := strings.Split(out, "\n")
	if !multiline {
		return lines
	}
	var cmds []string
	var cur strings.Builder
	for _, line := range lines {
		cur.WriteString(line)
		if strings.HasSuffix(line, "\\") {
			cur.WriteString("\n")
			continue
		}
		cmds = append(cmds, cur.String())
		cur.Reset()
	}
	return cmds
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode JSON", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message, code string) {
	h.writeJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

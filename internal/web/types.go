package web

import "github.com/RevCBH/decomposerize/internal/convert"

// Config holds server configuration.
type Config struct {
	// Addr is the HTTP listen address (default ":8080")
	Addr string

	// Defaults are the render options a request starts from
	Defaults convert.Options
}

// ConvertRequest is the body of POST /api/v1/convert.
type ConvertRequest struct {
	Compose string         `json:"compose"`
	Options RequestOptions `json:"options"`
}

// RequestOptions overrides the server defaults. Nil fields keep the default.
// Names follow the option keys of the decomposerize JavaScript library.
type RequestOptions struct {
	Services                []string `json:"services,omitempty"`
	StopAndRemoveContainers *bool    `json:"stopAndRemoveContainers,omitempty"`
	CreateVolumes           *bool    `json:"createVolumes,omitempty"`
	CreateNetworks          *bool    `json:"createNetworks,omitempty"`
	DockerRun               *bool    `json:"dockerRun,omitempty"`
	DockerBuild             *bool    `json:"dockerBuild,omitempty"`
	DeleteImages            *bool    `json:"deleteImages,omitempty"`
	DockerRunCommand        *string  `json:"dockerRunCommand,omitempty"`
	DockerRunRm             *bool    `json:"dockerRunRm,omitempty"`
	DockerRunDetach         *bool    `json:"dockerRunDetach,omitempty"`
	Multiline               *bool    `json:"multiline,omitempty"`
	LongArgs                *bool    `json:"long-args,omitempty"`
	ArgValueSeparator       *string  `json:"arg-value-separator,omitempty"`
	Engine                  *string  `json:"engine,omitempty"`
}

// ConvertResponse is the result of a conversion.
type ConvertResponse struct {
	Output   string   `json:"output"`
	Commands []string `json:"commands"`
	Invalid  bool     `json:"invalid,omitempty"`
}

// ErrorResponse is returned with every non-2xx status.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

package server

import (
	"strings"

	"agenda/internal/shared"
)

const serviceName = "Agenda Service"

// NewInfo builds the /info payload from the startup configuration.
func NewInfo(cfg *shared.ServerConfig) shared.InfoResponse {
	v := "v" + strings.TrimPrefix(cfg.Version, "v")
	return shared.InfoResponse{
		Name:    serviceName,
		Version: v,
		Source:  strings.TrimRight(cfg.SourceURL, "/") + "/releases/tag/" + v,
	}
}

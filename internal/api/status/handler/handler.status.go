// Package statushdl chứa HTTP handler kiểm tra tình trạng các provider bên ngoài.
package statushdl

import (
	"time"

	basehdl "adcraft/internal/api/base/handler"
	"adcraft/internal/common"
	"adcraft/internal/global"
	"adcraft/internal/provider"

	"github.com/gofiber/fiber/v3"
)

// Trạng thái của một provider
const (
	StatusOperational = "operational"
	StatusDegraded    = "degraded"
	StatusDown        = "down"
)

const probeTimeout = 5 * time.Second

// ServiceStatus tình trạng một provider
type ServiceStatus struct {
	Status    string `json:"status"`
	LatencyMs int64  `json:"latencyMs,omitempty"`
	Error     string `json:"error,omitempty"`
}

// StatusHandler probe các provider bên ngoài (HEAD request, timeout 5s)
type StatusHandler struct {
	imageProvider *provider.PollinationsImageProvider
}

// NewStatusHandler tạo mới StatusHandler
func NewStatusHandler() (*StatusHandler, error) {
	cfg := global.MongoDB_ServerConfig
	return &StatusHandler{
		imageProvider: provider.NewPollinationsImageProvider(cfg.ImageProviderBaseURL, cfg.ImageFetchTimeout, cfg.ImageFetchRetries),
	}, nil
}

// HandleProviderStatus xử lý GET /status/providers.
// Overall là operational khi có ít nhất một provider hoạt động.
func (h *StatusHandler) HandleProviderStatus(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		services := make(map[string]ServiceStatus)

		latency, err := h.imageProvider.Probe(c.Context(), probeTimeout)
		if err != nil {
			services["pollinations"] = ServiceStatus{
				Status: StatusDown,
				Error:  err.Error(),
			}
		} else {
			services["pollinations"] = ServiceStatus{
				Status:    StatusOperational,
				LatencyMs: latency.Milliseconds(),
			}
		}

		overall := StatusDegraded
		for _, s := range services {
			if s.Status == StatusOperational {
				overall = StatusOperational
				break
			}
		}

		return basehdl.JSONResponse(c, common.StatusOK, fiber.Map{
			"code":    common.StatusOK,
			"message": common.MsgSuccess,
			"status":  "success",
			"data": fiber.Map{
				"overall":   overall,
				"services":  services,
				"timestamp": time.Now().UTC().Format(time.RFC3339),
			},
		})
	})
}

package mcp

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/louisbranch/bastionhearth/internal/platform/telemetry/metrics"
	"github.com/louisbranch/bastionhearth/internal/services/bastion/service"
)

const (
	serverName    = "bastionhearth"
	serverVersion = "0.1.0"

	// shutdownTimeout bounds graceful HTTP shutdown so a hung stream cannot
	// keep the process alive indefinitely.
	shutdownTimeout = 10 * time.Second
)

// Server wraps the MCP server with its registered tools and resources.
type Server struct {
	mcpServer *mcp.Server
	metrics   *metrics.Metrics
}

// NewServer builds an MCP server exposing the campaign tool and resource
// surface backed by svc.
func NewServer(svc *service.Service, m *metrics.Metrics) (*Server, error) {
	if svc == nil {
		return nil, errors.New("service is required")
	}

	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: serverVersion,
	}, &mcp.ServerOptions{
		Instructions: "Manage campaign bastions: issue and cancel facility orders, acquire and build facilities, advance campaign time, and resolve bastion events.",
	})

	registerTools(mcpServer, svc)
	registerResources(mcpServer, svc)

	return &Server{mcpServer: mcpServer, metrics: m}, nil
}

func registerTools(server *mcp.Server, svc *service.Service) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "bastion_issue_order",
		Description: "Issue an order to an idle special facility. Variable orders require duration_days and cost_gp.",
	}, IssueOrderHandler(svc))
	mcp.AddTool(server, &mcp.Tool{
		Name:        "bastion_cancel_order",
		Description: "Cancel the active task on a facility, discarding its progress.",
	}, CancelOrderHandler(svc))
	mcp.AddTool(server, &mcp.Tool{
		Name:        "bastion_acquire_special",
		Description: "Add a special facility to a bastion, subject to the owner's level and facility limit.",
	}, AcquireSpecialHandler(svc))
	mcp.AddTool(server, &mcp.Tool{
		Name:        "bastion_build_basic",
		Description: "Start construction of a basic facility at the given size.",
	}, BuildBasicHandler(svc))
	mcp.AddTool(server, &mcp.Tool{
		Name:        "bastion_enlarge_basic",
		Description: "Start enlarging an idle basic facility to a larger size.",
	}, EnlargeBasicHandler(svc))
	mcp.AddTool(server, &mcp.Tool{
		Name:        "bastion_advance_time",
		Description: "Advance the campaign day counter, progressing and completing every active facility task.",
	}, AdvanceTimeHandler(svc))
	mcp.AddTool(server, &mcp.Tool{
		Name:        "bastion_maintain",
		Description: "Roll a d100 bastion event for a bastion and apply its effects.",
	}, MaintainHandler(svc))
	mcp.AddTool(server, &mcp.Tool{
		Name:        "bastion_inject_event",
		Description: "Apply a named bastion event without rolling.",
	}, InjectEventHandler(svc))
	mcp.AddTool(server, &mcp.Tool{
		Name:        "bastion_set_threat_level",
		Description: "Set the campaign threat level.",
	}, SetThreatLevelHandler(svc))
}

func registerResources(server *mcp.Server, svc *service.Service) {
	server.AddResourceTemplate(DashboardResource(), DashboardResourceHandler(svc))
	server.AddResourceTemplate(ChronicleResource(), ChronicleResourceHandler(svc))
	server.AddResource(CatalogResource(), CatalogResourceHandler())
}

// RunStdio serves MCP over stdin/stdout until ctx is cancelled.
func (s *Server) RunStdio(ctx context.Context) error {
	log.Printf("serving MCP over stdio")
	if err := s.mcpServer.Run(ctx, &mcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("stdio transport: %w", err)
	}
	return nil
}

// RunHTTP serves MCP over streamable HTTP on addr until ctx is cancelled.
// The mux also exposes /healthz and, when metrics are configured, /metrics.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	mcpHandler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcpServer
	}, nil)

	mux := http.NewServeMux()
	mux.Handle("/mcp", mcpHandler)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if s.metrics != nil {
		mux.Handle("/metrics", s.metrics.Handler())
	}

	httpServer := &http.Server{Addr: addr, Handler: mux}

	errChan := make(chan error, 1)
	go func() {
		log.Printf("serving MCP over HTTP on %s", addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown HTTP server: %w", err)
		}
		return nil
	case err := <-errChan:
		return fmt.Errorf("HTTP transport: %w", err)
	}
}

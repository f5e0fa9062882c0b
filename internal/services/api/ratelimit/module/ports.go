package module

import "dreammap/internal/services/api/ratelimit/domain"

// Ports is the port set other modules pull via module.PortsOf
type Ports struct {
	Limiter domain.ServicePort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Package ports defines interfaces between layers in the hexagonal architecture.
// The readiness port is implemented by the application layer and called by
// handlers. The prober port is implemented by the outbound probe adapter and
// called by the application layer.
package ports

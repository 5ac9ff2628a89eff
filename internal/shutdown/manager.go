package shutdown

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"student-manager/internal/logger"
)

const component = "ShutdownManager"

type Shutdownable interface {
	Shutdown()
}

type Manager struct {
	components []Shutdownable
	logger     logger.Logger
	timeout    time.Duration
	mu         sync.Mutex
	done       chan struct{}
}

func NewManager(log logger.Logger) *Manager {
	return &Manager{
		components: make([]Shutdownable, 0),
		logger:     log,
		timeout:    10 * time.Second,
		done:       make(chan struct{}),
	}
}

func (m *Manager) Register(component Shutdownable) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.components = append(m.components, component)
}

// Listen calls onSignal on the first SIGINT/SIGTERM. onSignal runs on the
// signal goroutine and must only hand off to the UI loop; components are
// shut down by the caller once that loop has returned.
func (m *Manager) Listen(onSignal func()) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			m.logger.Info(component, "shutdown signal received", map[string]interface{}{
				"signal": sig.String(),
			})
			if onSignal != nil {
				onSignal()
			}
		case <-m.done:
		}
		signal.Stop(sigChan)
	}()
}

// Shutdown runs every registered component in reverse order, once
func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	select {
	case <-m.done:
		return
	default:
		close(m.done)
	}

	m.logger.Info(component, "shutdown sequence initiated", map[string]interface{}{
		"components": len(m.components),
	})

	for i := len(m.components) - 1; i >= 0; i-- {
		c := m.components[i]

		finished := make(chan struct{})
		go func() {
			defer close(finished)
			c.Shutdown()
		}()

		select {
		case <-finished:
		case <-time.After(m.timeout):
			m.logger.Warning(component, "component shutdown timeout", map[string]interface{}{
				"component_index": i,
			})
		}
	}

	m.logger.Info(component, "shutdown sequence completed", nil)
}

package service

import (
	"github.com/MKhiriev/go-pass-provider/internal/flow"
	"github.com/MKhiriev/go-pass-provider/models"
)

type foregroundManager struct {
	state *flow.State[models.AppForegroundState]
}

// NewForegroundManager returns a ForegroundManager that starts backgrounded;
// the first foreground report counts as the app start.
func NewForegroundManager() ForegroundManager {
	return &foregroundManager{state: flow.New(models.AppBackgrounded)}
}

func (m *foregroundManager) ForegroundStateFlow() flow.Observable[models.AppForegroundState] {
	return m.state
}

func (m *foregroundManager) SetForegroundState(state models.AppForegroundState) {
	m.state.Set(state)
}

package states

import (
	"fmt"
	"sync"

	"moonlaunch-bot/internal/telegram/flows"
)

// Manager keeps per-chat conversation state in memory.
type Manager struct {
	mu         sync.RWMutex
	userStates map[int64]State
	userData   map[int64]any
}

func NewManager() *Manager {
	return &Manager{
		userStates: make(map[int64]State),
		userData:   make(map[int64]any),
	}
}

func (m *Manager) GetState(chatID int64) State {
	m.mu.RLock()
	defer m.mu.RUnlock()

	state, exists := m.userStates[chatID]
	if !exists {
		return StateNone
	}
	return state
}

func (m *Manager) SetState(chatID int64, state State, data any) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.userStates[chatID] = state
	if data != nil {
		m.userData[chatID] = data
	}
}

// Clear discards the chat's state and session data.
func (m *Manager) Clear(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.userStates, chatID)
	delete(m.userData, chatID)
}

// GetOrderData returns the customer order session for the chat.
func (m *Manager) GetOrderData(chatID int64) (*flows.OrderFlowData, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, exists := m.userData[chatID]
	if !exists {
		return nil, fmt.Errorf("no data for chat %d", chatID)
	}

	flowData, ok := data.(*flows.OrderFlowData)
	if !ok {
		return nil, fmt.Errorf("invalid data type for chat %d", chatID)
	}

	return flowData, nil
}

// GetCompleteOrderData returns the admin completion session for the chat.
func (m *Manager) GetCompleteOrderData(chatID int64) (*flows.CompleteOrderFlowData, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, exists := m.userData[chatID]
	if !exists {
		return nil, fmt.Errorf("no data for chat %d", chatID)
	}

	flowData, ok := data.(*flows.CompleteOrderFlowData)
	if !ok {
		return nil, fmt.Errorf("invalid data type for chat %d", chatID)
	}

	return flowData, nil
}

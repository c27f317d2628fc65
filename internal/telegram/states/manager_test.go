package states

import (
	"testing"

	"moonlaunch-bot/internal/telegram/flows"
)

func TestManagerStateLifecycle(t *testing.T) {
	manager := NewManager()
	chatID := int64(42)

	if got := manager.GetState(chatID); got != StateNone {
		t.Errorf("GetState() for unknown chat = %s, want %s", got, StateNone)
	}

	manager.SetState(chatID, CustomerOrderWaitDetails, &flows.OrderFlowData{PackageKey: "basic"})

	if got := manager.GetState(chatID); got != CustomerOrderWaitDetails {
		t.Errorf("GetState() = %s, want %s", got, CustomerOrderWaitDetails)
	}

	manager.Clear(chatID)

	if got := manager.GetState(chatID); got != StateNone {
		t.Errorf("GetState() after Clear() = %s, want %s", got, StateNone)
	}
	if _, err := manager.GetOrderData(chatID); err == nil {
		t.Error("GetOrderData() after Clear() should fail")
	}
}

func TestManagerSetStateKeepsDataWhenNil(t *testing.T) {
	manager := NewManager()
	chatID := int64(42)

	manager.SetState(chatID, CustomerOrderWaitDetails, &flows.OrderFlowData{PackageKey: "pro"})
	// State transitions without data must not drop the session
	manager.SetState(chatID, CustomerOrderWaitConfirm, nil)

	data, err := manager.GetOrderData(chatID)
	if err != nil {
		t.Fatalf("GetOrderData() error = %v", err)
	}
	if data.PackageKey != "pro" {
		t.Errorf("PackageKey = %q, want pro", data.PackageKey)
	}
}

func TestManagerGetOrderData(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(m *Manager)
		wantErr bool
	}{
		{
			name:    "no data stored",
			prepare: func(m *Manager) {},
			wantErr: true,
		},
		{
			name: "wrong data type",
			prepare: func(m *Manager) {
				m.SetState(42, AdminCompleteWaitLink, &flows.CompleteOrderFlowData{OrderID: 7})
			},
			wantErr: true,
		},
		{
			name: "order data stored",
			prepare: func(m *Manager) {
				m.SetState(42, CustomerOrderWaitConfirm, &flows.OrderFlowData{CoinDetails: "CoinX"})
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manager := NewManager()
			tt.prepare(manager)

			data, err := manager.GetOrderData(42)
			if tt.wantErr {
				if err == nil {
					t.Error("GetOrderData() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("GetOrderData() error = %v", err)
			}
			if data.CoinDetails != "CoinX" {
				t.Errorf("CoinDetails = %q, want CoinX", data.CoinDetails)
			}
		})
	}
}

func TestManagerGetCompleteOrderData(t *testing.T) {
	manager := NewManager()
	chatID := int64(1)

	manager.SetState(chatID, AdminCompleteWaitLink, &flows.CompleteOrderFlowData{OrderID: 7})

	data, err := manager.GetCompleteOrderData(chatID)
	if err != nil {
		t.Fatalf("GetCompleteOrderData() error = %v", err)
	}
	if data.OrderID != 7 {
		t.Errorf("OrderID = %d, want 7", data.OrderID)
	}

	manager.SetState(chatID, CustomerOrderWaitDetails, &flows.OrderFlowData{})
	if _, err := manager.GetCompleteOrderData(chatID); err == nil {
		t.Error("GetCompleteOrderData() with order flow data should fail")
	}
}

func TestManagerIsolatesChats(t *testing.T) {
	manager := NewManager()

	manager.SetState(1, CustomerOrderWaitDetails, &flows.OrderFlowData{PackageKey: "basic"})
	manager.SetState(2, AdminCompleteWaitOrderID, &flows.CompleteOrderFlowData{})

	if got := manager.GetState(1); got != CustomerOrderWaitDetails {
		t.Errorf("chat 1 state = %s, want %s", got, CustomerOrderWaitDetails)
	}
	if got := manager.GetState(2); got != AdminCompleteWaitOrderID {
		t.Errorf("chat 2 state = %s, want %s", got, AdminCompleteWaitOrderID)
	}

	manager.Clear(1)

	if got := manager.GetState(2); got != AdminCompleteWaitOrderID {
		t.Errorf("chat 2 state after clearing chat 1 = %s, want %s", got, AdminCompleteWaitOrderID)
	}
}

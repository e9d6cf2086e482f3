package combat

import (
	"math"
	"testing"
)

// mockTarget is a test implementation of the Target interface.
type mockTarget struct {
	name    string
	x, y    float64
	hp      int
	stunned int
}

func (m *mockTarget) GetName() string              { return m.name }
func (m *mockTarget) IsAlive() bool                { return m.hp > 0 }
func (m *mockTarget) Position() (float64, float64) { return m.x, m.y }
func (m *mockTarget) Stun(ticks int)               { m.stunned = ticks }
func (m *mockTarget) Push(dx, dy float64)          { m.x += dx; m.y += dy }
func (m *mockTarget) TakeDamage(amount int) int {
	m.hp -= amount
	return amount
}

func TestArcCovers(t *testing.T) {
	arc := PlayerArc(10)

	tests := []struct {
		name   string
		angle  float64
		tx, ty float64
		want   bool
	}{
		{"straight ahead", 0, 2, 0, true},
		{"inside arc", 0, 2, 1.5, true},
		{"outside arc", 0, 0, 2, false},
		{"behind", 0, -1, 0, false},
		{"too far", 0, 3, 0, false},
		{"wraps past pi", math.Pi - 0.1, -2, -0.2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := arc.Covers(0, 0, tt.angle, tt.tx, tt.ty); got != tt.want {
				t.Errorf("Covers(angle=%v, target=%v,%v) = %v, want %v", tt.angle, tt.tx, tt.ty, got, tt.want)
			}
		})
	}
}

func TestSwingHitsOnlyCoveredTargets(t *testing.T) {
	front := &mockTarget{name: "front", x: 11.5, y: 10, hp: 30}
	behind := &mockTarget{name: "behind", x: 8.5, y: 10, hp: 30}
	dead := &mockTarget{name: "dead", x: 11, y: 10, hp: 0}

	hits := PlayerArc(10).Swing(10, 10, 0, []Target{front, behind, dead})

	if len(hits) != 1 || hits[0].Target != front {
		t.Fatalf("expected one hit on front, got %+v", hits)
	}
	if front.hp != 20 || front.stunned != 15 {
		t.Errorf("front after hit: hp=%d stunned=%d", front.hp, front.stunned)
	}
	if math.Abs(front.x-12.0) > 1e-9 {
		t.Errorf("front knocked back to %v, want 12", front.x)
	}
	if behind.hp != 30 {
		t.Error("target behind the swing was hit")
	}
	if hits[0].Killed {
		t.Error("front should survive one hit")
	}
}

func TestSwingReportsKill(t *testing.T) {
	weak := &mockTarget{name: "weak", x: 1, y: 0, hp: 5}
	hits := PlayerArc(10).Swing(0, 0, 0, []Target{weak})
	if len(hits) != 1 || !hits[0].Killed {
		t.Fatalf("expected a kill, got %+v", hits)
	}
}

func TestAdjacent(t *testing.T) {
	tests := []struct {
		ax, ay, bx, by float64
		want           bool
	}{
		{5.2, 5.2, 5.9, 5.9, true},  // same tile
		{5.5, 5.5, 6.5, 6.5, true},  // diagonal neighbor
		{5.5, 5.5, 7.5, 5.5, false}, // two tiles away
		{5.9, 5.5, 6.1, 5.5, true},
	}
	for _, tt := range tests {
		if got := Adjacent(tt.ax, tt.ay, tt.bx, tt.by); got != tt.want {
			t.Errorf("Adjacent(%v,%v,%v,%v) = %v, want %v", tt.ax, tt.ay, tt.bx, tt.by, got, tt.want)
		}
	}
}

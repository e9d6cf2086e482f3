package game

import (
	"context"
	"fmt"
	"slices"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/raycrawl/internal/combat"
	"github.com/samdwyer/raycrawl/internal/entity"
	"github.com/samdwyer/raycrawl/internal/gamedata"
	"github.com/samdwyer/raycrawl/internal/telemetry"
)

// mobDropChance is the chance a slain mob leaves loot behind.
const mobDropChance = 0.3

// handleCombat resolves the player's swing, then lets every mob in reach bite back.
func (s *Session) handleCombat(ctx context.Context, in Input) {
	p := s.player
	if in.Attack && p.AttackCooldown <= 0 {
		p.AttackCooldown = s.melee.Cooldown
		s.strike(ctx)
	}
	p.TickCooldown()

	for _, m := range s.mobs {
		if !m.IsAlive() {
			continue
		}
		if m.AttackCooldown > 0 {
			m.AttackCooldown--
			continue
		}
		if !combat.Adjacent(m.X, m.Y, p.X, p.Y) {
			continue
		}

		dealt := p.TakeDamage(m.Damage())
		m.AttackCooldown = m.Def.AttackCooldown
		s.messages.Add(fmt.Sprintf("Ouch! -%d HP", dealt), colorBad)
		if !p.IsAlive() {
			s.die()
			return
		}
	}
}

// strike swings the player's weapon along AttackAngle.
func (s *Session) strike(ctx context.Context) {
	tracer := telemetry.Tracer("combat")
	_, span := tracer.Start(ctx, "combat.strike")
	defer span.End()

	targets := make([]combat.Target, 0, len(s.mobs))
	for _, m := range s.mobs {
		if m.IsAlive() {
			targets = append(targets, m)
		}
	}

	p := s.player
	s.melee.Damage = p.Damage
	hits := s.melee.Swing(p.X, p.Y, p.AttackAngle, targets)

	kills := 0
	for _, h := range hits {
		if !h.Killed {
			continue
		}
		kills++
		s.messages.Add(h.Target.GetName()+" defeated!", colorGood)
		if s.rng.Float64() < mobDropChance {
			x, y := h.Target.Position()
			s.drops = append(s.drops, entity.LootDrop{
				X:    x,
				Y:    y,
				Kind: s.data.Loot.Roll(gamedata.TableMobDrop, s.rng),
			})
		}
	}
	s.mobs = slices.DeleteFunc(s.mobs, func(m *entity.Mob) bool {
		if m.IsAlive() {
			return false
		}
		s.log.Debug().Str("mob", m.ID()).Int("room", m.RoomIndex).Int("tick", s.tick).Msg("mob slain")
		return true
	})

	span.SetAttributes(
		attribute.Float64("attack.angle", p.AttackAngle),
		attribute.Int("hits", len(hits)),
		attribute.Int("kills", kills),
	)
	if len(hits) > 0 {
		s.log.Debug().Int("hits", len(hits)).Int("kills", kills).Int("tick", s.tick).Msg("strike landed")
	}
}

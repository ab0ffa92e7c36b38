package combat

import (
	"github.com/steaphangreene/acidmud-sub001/internal/skills"
	"github.com/steaphangreene/acidmud-sub001/internal/world"
)

var hitLocations = []string{
	"head", "neck", "chest", "back", "left arm", "right arm",
	"left hand", "right hand", "abdomen", "left leg", "right leg",
	"left foot", "right foot",
}

// weaponSkills: навык по значению WeaponType; 0 и неизвестные дают Punching.
var weaponSkills = []skills.Skill{
	skills.Punching,
	skills.ShortBlades,
	skills.ShortCleaves,
	skills.ShortCrushing,
	skills.ShortFlails,
	skills.ShortPiercing,
	skills.ShortStaves,
	skills.LongBlades,
	skills.LongCleaves,
	skills.LongCrushing,
	skills.LongFlails,
	skills.LongPiercing,
	skills.LongStaves,
	skills.TwoHandedBlades,
	skills.TwoHandedCleaves,
	skills.TwoHandedCrushing,
	skills.TwoHandedFlails,
	skills.TwoHandedPiercing,
	skills.TwoHandedStaves,
}

// WeaponSkill возвращает навык, которым владеют оружием типа wtype.
func WeaponSkill(wtype int32) skills.Skill {
	if wtype <= 0 || int(wtype) >= len(weaponSkills) {
		return skills.Punching
	}
	return weaponSkills[wtype]
}

// combatSkill: навык участника с текущим оружием.
func (e *Engine) combatSkill(n *world.Node) int32 {
	wtype := int32(0)
	if w := e.world.Get(n.ActTarg(world.ActWield)); w != nil {
		wtype = w.Skill(skills.WeaponType)
	}
	return n.Skill(WeaponSkill(wtype))
}

func (e *Engine) roll(skill int32) int32 {
	return skill + int32(e.dice.Intn(6)) + 1
}

// Round проводит один раунд и возвращает число проведённых атак.
func (e *Engine) Round() int {
	attacks := 0
	for _, id := range e.Fighting() {
		if e.attack(id) {
			attacks++
		}
	}
	return attacks
}

func (e *Engine) attack(id world.NodeID) bool {
	att := e.world.Get(id)
	if att == nil || e.Defeated(id) || !att.IsAct(world.ActFight) {
		return false
	}
	tid := att.ActTarg(world.ActFight)
	def := e.world.Get(tid)
	if def == nil || e.Defeated(tid) {
		_ = e.world.StopAct(id, world.ActFight)
		return false
	}
	// Уход цели из комнаты бой не прекращает: ждём, пока она вернётся.
	if !e.world.Colocated(id, tid) {
		return false
	}

	if !att.IsAct(world.ActWield) {
		e.draw(att)
	}

	a := e.roll(e.combatSkill(att))
	d := e.roll(e.combatSkill(def))
	if a <= d {
		e.say("%s misses %s.", e.name(id), e.name(tid))
		return true
	}

	loc := hitLocations[e.dice.Intn(len(hitLocations))]
	dmg := a - d
	if w := e.world.Get(att.ActTarg(world.ActWield)); w != nil {
		dmg += w.Skill(skills.WeaponForce)
	}
	if dmg < 1 {
		dmg = 1
	}
	total := def.AddSkill(skills.PhysDamage, dmg)
	if total >= e.cfg.MortalBase+def.Skill(skills.Body) {
		e.say("%s takes a mortal hit in the %s!", e.name(tid), loc)
		e.defeat(def)
		return true
	}
	e.say("%s hits %s in the %s.", e.name(id), e.name(tid), loc)
	return true
}

// draw вооружает участника первым подходящим предметом из инвентаря.
func (e *Engine) draw(n *world.Node) {
	for _, c := range n.Children() {
		item := e.world.Get(c)
		if item.Skill(skills.WeaponType) <= 0 || len(e.world.Touching(c)) > 0 {
			continue
		}
		if err := e.world.AddAct(n.ID(), world.ActWield, c); err != nil {
			e.log.Warn("⚠️ %s не может взять %s: %v", e.name(n.ID()), e.name(c), err)
			return
		}
		e.say("%s draws %s.", e.name(n.ID()), e.name(c))
		return
	}
}

// defeat выводит участника из боя: он падает и роняет оружие, все связи
// FIGHT с ним и от него снимаются.
func (e *Engine) defeat(n *world.Node) {
	id := n.ID()
	e.say("%s collapses!", e.name(id))

	for _, act := range []world.Act{world.ActWield, world.ActHold} {
		for _, item := range n.ActTargets(act) {
			e.say("%s drops %s.", e.name(id), e.name(item))
			_ = e.world.StopActOn(id, act, item)
			if n.Parent() != world.NoNode {
				_ = e.world.Travel(item, n.Parent())
			}
		}
	}

	_ = e.world.StopAct(id, world.ActFight)
	for _, src := range e.world.Touching(id) {
		_ = e.world.StopActOn(src, world.ActFight, id)
	}
	_ = e.world.AddAct(id, world.ActDying, world.NoNode)
	n.SetPosition(world.PosLie)
}

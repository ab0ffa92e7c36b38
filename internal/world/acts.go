package world

import "fmt"

// Act: роль узла по отношению к другому узлу (или флаг состояния без цели).
type Act uint8

const (
	ActNone Act = iota
	ActDead
	ActDying
	ActUnconscious
	ActSleep
	ActRest
	ActHeal
	ActPoint
	ActFollow
	ActFight
	ActOffer
	ActHold
	ActWield
	ActWearBack
	ActWearChest
	ActWearHead
	ActWearNeck
	ActWearCollar
	ActWearWaist
	ActWearShield
	ActWearLArm
	ActWearRArm
	ActWearLFinger
	ActWearRFinger
	ActWearLFoot
	ActWearRFoot
	ActWearLHand
	ActWearRHand
	ActWearLLeg
	ActWearRLeg
	ActWearLWrist
	ActWearRWrist
	ActWearLShoulder
	ActWearRShoulder
	ActWearLHip
	ActWearRHip
	ActWearFace
	ActSpecialMonitor
	ActSpecialMaster
	ActSpecialLinked
	ActSpecialHome
	ActSpecialWork
	ActSpecialOwner
	ActSpecialActee
	actCount
)

// Cascade: что происходит с партнёром при уничтожении одной стороны связи.
type Cascade uint8

const (
	// CascadeDetach: связь просто снимается.
	CascadeDetach Cascade = iota
	// CascadeDestroy: вторая сторона уничтожается вместе с первой.
	CascadeDestroy
)

type actInfo struct {
	name       string
	multi      bool
	cascade    Cascade
	reciprocal Act
}

var actTable = [actCount]actInfo{
	ActNone:          {name: "NONE"},
	ActDead:          {name: "DEAD"},
	ActDying:         {name: "DYING"},
	ActUnconscious:   {name: "UNCONSCIOUS"},
	ActSleep:         {name: "SLEEP"},
	ActRest:          {name: "REST"},
	ActHeal:          {name: "HEAL"},
	ActPoint:         {name: "POINT"},
	ActFollow:        {name: "FOLLOW"},
	ActFight:         {name: "FIGHT"},
	ActOffer:         {name: "OFFER"},
	ActHold:          {name: "HOLD"},
	ActWield:         {name: "WIELD"},
	ActWearBack:      {name: "WEAR_BACK"},
	ActWearChest:     {name: "WEAR_CHEST"},
	ActWearHead:      {name: "WEAR_HEAD"},
	ActWearNeck:      {name: "WEAR_NECK"},
	ActWearCollar:    {name: "WEAR_COLLAR"},
	ActWearWaist:     {name: "WEAR_WAIST"},
	ActWearShield:    {name: "WEAR_SHIELD"},
	ActWearLArm:      {name: "WEAR_LARM"},
	ActWearRArm:      {name: "WEAR_RARM"},
	ActWearLFinger:   {name: "WEAR_LFINGER"},
	ActWearRFinger:   {name: "WEAR_RFINGER"},
	ActWearLFoot:     {name: "WEAR_LFOOT"},
	ActWearRFoot:     {name: "WEAR_RFOOT"},
	ActWearLHand:     {name: "WEAR_LHAND"},
	ActWearRHand:     {name: "WEAR_RHAND"},
	ActWearLLeg:      {name: "WEAR_LLEG"},
	ActWearRLeg:      {name: "WEAR_RLEG"},
	ActWearLWrist:    {name: "WEAR_LWRIST"},
	ActWearRWrist:    {name: "WEAR_RWRIST"},
	ActWearLShoulder: {name: "WEAR_LSHOULDER"},
	ActWearRShoulder: {name: "WEAR_RSHOULDER"},
	ActWearLHip:      {name: "WEAR_LHIP"},
	ActWearRHip:      {name: "WEAR_RHIP"},
	ActWearFace:      {name: "WEAR_FACE"},

	ActSpecialMonitor: {name: "SPECIAL_MONITOR", multi: true},
	ActSpecialMaster:  {name: "SPECIAL_MASTER", cascade: CascadeDestroy, reciprocal: ActSpecialLinked},
	ActSpecialLinked:  {name: "SPECIAL_LINKED", cascade: CascadeDestroy, reciprocal: ActSpecialMaster},
	ActSpecialHome:    {name: "SPECIAL_HOME"},
	ActSpecialWork:    {name: "SPECIAL_WORK"},
	ActSpecialOwner:   {name: "SPECIAL_OWNER"},
	ActSpecialActee:   {name: "SPECIAL_ACTEE", multi: true},
}

var actByName = func() map[string]Act {
	m := make(map[string]Act, actCount)
	for a := Act(0); a < actCount; a++ {
		m[actTable[a].name] = a
	}
	return m
}()

// Valid сообщает, что роль из закрытого набора и не ActNone.
func (a Act) Valid() bool { return a > ActNone && a < actCount }

func (a Act) String() string {
	if a < actCount {
		return actTable[a].name
	}
	return fmt.Sprintf("Act(%d)", uint8(a))
}

// Multi: роль может указывать на несколько целей одновременно.
func (a Act) Multi() bool { return a < actCount && actTable[a].multi }

func (a Act) Cascade() Cascade {
	if a < actCount {
		return actTable[a].cascade
	}
	return CascadeDetach
}

// Reciprocal возвращает парную роль, которую автоматически получает цель,
// или ActNone.
func (a Act) Reciprocal() Act {
	if a < actCount {
		return actTable[a].reciprocal
	}
	return ActNone
}

// IsWear: роль одного из слотов одежды.
func (a Act) IsWear() bool { return a >= ActWearBack && a <= ActWearFace }

// ParseAct ищет роль по имени, под которым она сохраняется.
func ParseAct(name string) (Act, error) {
	a, ok := actByName[name]
	if !ok || a == ActNone {
		return ActNone, fmt.Errorf("%w: %q", ErrBadAct, name)
	}
	return a, nil
}

// Acts возвращает все роли по порядку.
func Acts() []Act {
	out := make([]Act, 0, actCount-1)
	for a := ActNone + 1; a < actCount; a++ {
		out = append(out, a)
	}
	return out
}

package tower

// State is the progress of an armed floor through its action's private state
// machine. Each action has its own state type, so a floor can never hold a
// sub-state that belongs to another action. A nil State is an inactive floor.
type State interface {
	// Action reports which FloorAction the state belongs to.
	Action() FloorAction
	isState()
}

// Arm returns the initial state of action.
func Arm(action FloorAction) State {
	switch action {
	case Proceed:
		return ProceedState{}
	case Radio2, Radio3, Radio4:
		return RadioState{Message: action}
	case Flash:
		return FlashState{Stage: FlashWatchEnd}
	case Lights:
		return LightsState{}
	case Trick1, Trick2:
		return TrickState{Variant: action}
	case Trap:
		return TrapState{Stage: TrapArmed}
	case Roar:
		return RoarState{}
	case Darkness:
		return DarknessState{Stage: DarknessArmed}
	default:
		return Dormant{For: action}
	}
}

// Dormant is the armed state of actions with no per-tick behavior (Steps,
// Run, Breath, Cell, Scp173, Lock).
type Dormant struct {
	For FloorAction
}

// ProceedState counts ticks until the opening radio call.
type ProceedState struct {
	Ticks int
}

// RadioState waits for the first tick on its floor.
type RadioState struct {
	Message FloorAction
}

type FlashStage uint8

const (
	// FlashWatchEnd waits for the player near the end of the corridor.
	FlashWatchEnd FlashStage = iota + 1
	// FlashWatchCenter waits for the player near the middle.
	FlashWatchCenter
	// FlashWatchStart waits for the player near the start.
	FlashWatchStart
	// FlashLinger counts down while the silhouette is visible.
	FlashLinger
)

type FlashState struct {
	Stage FlashStage
	Ticks int
}

type LightsState struct {
	Out bool
}

// TrickState is shared by Trick1 and Trick2; Variant selects the trigger
// offset.
type TrickState struct {
	Variant FloorAction
	Sprung  bool
}

type TrapStage uint8

const (
	// TrapArmed places the wall on the first tick.
	TrapArmed TrapStage = iota + 1
	// TrapSet waits for the player at the middle of the corridor.
	TrapSet
	TrapSprung
)

type TrapState struct {
	Stage TrapStage
}

// RoarState waits for the player near the corridor end, then shakes for a
// fixed number of ticks.
type RoarState struct {
	Shaking bool
	Ticks   int
}

type DarknessStage uint8

const (
	// DarknessArmed is the first tick on the floor. A player at the middle
	// of the corridor gets walled in; either way the countdown starts.
	DarknessArmed DarknessStage = iota + 1
	// DarknessCounting counts ticks until the enemy is released.
	DarknessCounting
	// DarknessHunted is terminal: the enemy has been released.
	DarknessHunted
)

type DarknessState struct {
	Stage DarknessStage
	Ticks int
	// Sealed reports whether the walls went up.
	Sealed bool
}

func (s Dormant) Action() FloorAction     { return s.For }
func (ProceedState) Action() FloorAction  { return Proceed }
func (s RadioState) Action() FloorAction  { return s.Message }
func (FlashState) Action() FloorAction    { return Flash }
func (LightsState) Action() FloorAction   { return Lights }
func (s TrickState) Action() FloorAction  { return s.Variant }
func (TrapState) Action() FloorAction     { return Trap }
func (RoarState) Action() FloorAction     { return Roar }
func (DarknessState) Action() FloorAction { return Darkness }
func (Dormant) isState()                  {}
func (ProceedState) isState()             {}
func (RadioState) isState()               {}
func (FlashState) isState()               {}
func (LightsState) isState()              {}
func (TrickState) isState()               {}
func (TrapState) isState()                {}
func (RoarState) isState()                {}
func (DarknessState) isState()            {}

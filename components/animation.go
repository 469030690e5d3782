package components

// Spritesheet names, one per loaded image
const (
	SheetCharacters = "characters"
	SheetAntifairy  = "antifairy"
	SheetInsect     = "insect"
	SheetBladeTrap  = "bladetrap"
)

// AnimationDef is a named run of frames on one spritesheet
type AnimationDef struct {
	Key        string
	Sheet      string
	Start, End int     // inclusive frame range
	FrameRate  float64 // frames per second
	Repeat     int     // extra plays after the first, -1 forever
}

// Frames returns the number of frames in the animation
func (d AnimationDef) Frames() int {
	return d.End - d.Start + 1
}

// Animations used by the actors
var (
	AnimPlayerWalk = AnimationDef{Key: "player-walk", Sheet: SheetCharacters, Start: 46, End: 49, FrameRate: 8, Repeat: -1}
	AnimKing       = AnimationDef{Key: "king", Sheet: SheetCharacters, Start: 23, End: 26, FrameRate: 8, Repeat: -1}
	AnimAntifairy  = AnimationDef{Key: "antifairy", Sheet: SheetAntifairy, Start: 0, End: 4, FrameRate: 15, Repeat: 1}
	AnimInsect     = AnimationDef{Key: "insect", Sheet: SheetInsect, Start: 0, End: 7, FrameRate: 15, Repeat: -1}

	// The blade trap is a single still image
	AnimBladeTrap = AnimationDef{Key: "bladetrap", Sheet: SheetBladeTrap, Start: 0, End: 0, FrameRate: 1, Repeat: 0}
)

// Player idle frame shown when the walk animation stops
const PlayerIdleFrame = 46

// AnimationComponent plays an AnimationDef
type AnimationComponent struct {
	Def     AnimationDef
	Frame   int // absolute frame on the sheet
	Playing bool
	elapsed float64
	plays   int
}

// NewAnimationComponent starts def from its first frame
func NewAnimationComponent(def AnimationDef) *AnimationComponent {
	a := &AnimationComponent{}
	a.Play(def)
	return a
}

// Play switches to def. Playing the current animation again does not restart it.
func (a *AnimationComponent) Play(def AnimationDef) {
	if a.Playing && a.Def.Key == def.Key {
		return
	}
	a.Def = def
	a.Frame = def.Start
	a.Playing = true
	a.elapsed = 0
	a.plays = 0
}

// Stop freezes the animation on frame
func (a *AnimationComponent) Stop(frame int) {
	a.Playing = false
	a.Frame = frame
}

// Advance steps the animation by dt seconds
func (a *AnimationComponent) Advance(dt float64) {
	if !a.Playing || a.Def.FrameRate <= 0 {
		return
	}

	a.elapsed += dt
	step := 1 / a.Def.FrameRate
	for a.elapsed >= step {
		a.elapsed -= step
		if a.Frame < a.Def.End {
			a.Frame++
			continue
		}

		// End of one play
		a.plays++
		if a.Def.Repeat >= 0 && a.plays > a.Def.Repeat {
			a.Playing = false
			return
		}
		a.Frame = a.Def.Start
	}
}

package quiz

import "math/rand/v2"

type CueKind string

const (
	CueSuccess        CueKind = "success"
	CueKeepPracticing CueKind = "keep-practicing"
)

// Cue names the media played when a lesson completes. Assets are resolved by
// the client.
type Cue struct {
	Kind  CueKind `json:"kind"`
	Asset string  `json:"asset"`
}

const (
	SoundCorrect   = "correct.wav"
	SoundIncorrect = "incorrect.wav"
)

var (
	SuccessVideos = []string{
		"complete/2a50feecb6.mp4",
		"complete/631ccb350a.mp4",
		"complete/667afef1d8.mp4",
		"complete/6dedcf6fcd.mp4",
		"complete/8d9ca9a8bd.mp4",
		"complete/aaad714948.mp4",
		"complete/abe56a53ab.mp4",
		"complete/e7f0082d25.mp4",
		"complete/f36ef244ae.mp4",
	}
	KeepPracticingClips = []string{
		"incomplete/efficient.mp3",
		"incomplete/OPTIMISED.mp3",
		"incomplete/BIG BRAIN.mp3",
		"incomplete/LETS GOO.mp3",
		"incomplete/STACKED.mp3",
		"incomplete/buffed.mp3",
		"incomplete/CRACKED.mp3",
		"incomplete/TOO GOOD.mp3",
		"incomplete/CLEAN.mp3",
	}
)

// CuePicker chooses an asset index. *rand.Rand satisfies it.
type CuePicker interface {
	IntN(n int) int
}

type globalPicker struct{}

func (globalPicker) IntN(n int) int { return rand.IntN(n) }

// PickCue returns the success video for a flawless run and a short clip
// otherwise.
func PickCue(mistakes int, p CuePicker) Cue {
	if p == nil {
		p = globalPicker{}
	}
	if mistakes == 0 {
		return Cue{Kind: CueSuccess, Asset: SuccessVideos[p.IntN(len(SuccessVideos))]}
	}
	return Cue{Kind: CueKeepPracticing, Asset: KeepPracticingClips[p.IntN(len(KeepPracticingClips))]}
}

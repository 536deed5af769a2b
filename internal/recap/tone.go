package recap

import "fmt"

// Tone selects the wording set applied to narrative generation. It never
// changes which teams win an award, only how the result is phrased.
type Tone string

const (
	ToneDefault  Tone = "default"
	ToneDramatic Tone = "dramatic"
	ToneSnarky   Tone = "snarky"
)

// ParseTone validates a user-supplied tone selector. An empty value maps to
// the default tone.
func ParseTone(raw string) (Tone, error) {
	switch Tone(raw) {
	case "", ToneDefault:
		return ToneDefault, nil
	case ToneDramatic:
		return ToneDramatic, nil
	case ToneSnarky:
		return ToneSnarky, nil
	default:
		return "", fmt.Errorf("unknown personality %q", raw)
	}
}

// wording holds the format strings for one tone. Verb arguments line up
// across tones so the composer stays tone-agnostic.
type wording struct {
	title string // week

	victory string // winner, loser, winner score, loser score, margin
	tie     string // home, away, shared score

	awardsHeading string

	topScorerSingle string // team, score
	topScorerShared string // teams, score
	largestMargin   string // winner, loser, margin, winner score, loser score
	smallestMargin  string // team A, team B, margin
	lowScorerSingle string // team, score
	lowScorerShared string // teams, score
}

var wordings = map[Tone]wording{
	ToneDefault: {
		title:           "Weekly recap for week %d.",
		victory:         "%s defeated %s with a final score of %s to %s, a margin of %s points.",
		tie:             "The matchup between %s and %s was a rare tie, with both teams scoring %s points.",
		awardsHeading:   "And now, the weekly awards.",
		topScorerSingle: "Manager of the Week goes to %s with an incredible %s points!",
		topScorerShared: "Manager of the Week is shared by %s, both putting up %s points!",
		largestMargin:   "Blowout of the Week: %s dominated %s by %s points, %s to %s!",
		smallestMargin:  "Nail-Biter of the Week: %s versus %s was decided by just %s points!",
		lowScorerSingle: "The Sad Trombone Award goes to %s with only %s points. Better luck next week!",
		lowScorerShared: "The Sad Trombone Award is shared by %s, each struggling to %s points.",
	},
	ToneDramatic: {
		title:           "Ladies and gentlemen, the week %d spectacular.",
		victory:         "In a stunning display of dominance, %s crushed %s, %s to %s, a gap of %s points that will echo through the ages.",
		tie:             "Against all odds, %s and %s battled to a dead-even draw, locked forever at %s points apiece.",
		awardsHeading:   "The moment you have all been waiting for: the weekly awards.",
		topScorerSingle: "Bow before %s, Manager of the Week, who unleashed a colossal %s points!",
		topScorerShared: "History is made: %s stand together as Managers of the Week at %s points!",
		largestMargin:   "The Blowout of the Week saw %s annihilate %s by a staggering %s points, %s to %s!",
		smallestMargin:  "The Nail-Biter of the Week: %s and %s, separated by a heart-stopping %s points!",
		lowScorerSingle: "And the Sad Trombone sounds for %s, who could only muster %s points. The agony!",
		lowScorerShared: "The Sad Trombone wails for %s, marooned together at %s points. Devastating!",
	},
	ToneSnarky: {
		title:           "Here's what passed for football in week %d.",
		victory:         "%s beat %s, %s to %s. A %s-point gap nobody will remember by Tuesday.",
		tie:             "%s and %s somehow both landed on exactly %s points. Riveting stuff.",
		awardsHeading:   "Time for the awards, since apparently we do those.",
		topScorerSingle: "Manager of the Week is %s with %s points. Yes, we checked the math.",
		topScorerShared: "Manager of the Week is a group project: %s, all at %s points.",
		largestMargin:   "Blowout of the Week: %s steamrolled %s by %s points, %s to %s. Someone forgot to set a lineup.",
		smallestMargin:  "Nail-Biter of the Week: %s against %s, decided by a whole %s points. Thrilling.",
		lowScorerSingle: "The Sad Trombone goes to %s and their %s points. We've seen bye weeks score more.",
		lowScorerShared: "The Sad Trombone is shared by %s, tied at a majestic %s points each.",
	},
}

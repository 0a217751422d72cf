package narration

import (
	"context"
	"math/rand"
	"strings"

	"coursecast/internal/script"
	"coursecast/internal/services"
	"coursecast/internal/services/polly"
	"coursecast/internal/textchunk"
)

// Pause lengths in milliseconds.
const (
	podcastLinePause    = 250
	podcastSectionPause = 800
	chunkPause          = 300
	sectionPause        = 900
)

// Synthesizer renders text or SSML into MP3 audio.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, voice string, textType polly.TextType) ([]byte, error)
}

// Options configures voice pools and chunking for a Narrator.
type Options struct {
	PodcastVoices   []string
	NarrationVoices []string
	MaxChars        int
}

// Narrator produces finished audio tracks from scripts.
type Narrator struct {
	synth Synthesizer
	opts  Options
	rng   *rand.Rand
}

// New constructs a Narrator. The rand source drives voice selection and
// must not be nil.
func New(synth Synthesizer, opts Options, rng *rand.Rand) *Narrator {
	return &Narrator{synth: synth, opts: opts, rng: rng}
}

// Podcast voices a two speaker dialogue. Speaker A and B each get a
// distinct voice from the podcast pool, lines are synthesized in script
// order, and the MP3 segments are concatenated. Any synthesis failure
// aborts the whole track.
func (n *Narrator) Podcast(ctx context.Context, lines []script.DialogueLine) ([]byte, error) {
	if len(lines) == 0 {
		return nil, services.Wrap(services.ErrInput, "narration", "podcast", "dialogue script has no lines", nil)
	}
	voiceA, voiceB, err := PickVoicePair(n.rng, n.opts.PodcastVoices)
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "narration", "podcast", "select voices", err)
	}

	var track []byte
	spoken := 0
	for i, line := range lines {
		if line.Break {
			continue
		}
		voice := voiceA
		if line.Speaker == script.SpeakerB {
			voice = voiceB
		}
		pause := podcastLinePause
		if i == len(lines)-1 || lines[i+1].Break {
			pause = podcastSectionPause
		}
		segment, err := n.synth.Synthesize(ctx, wrapSSML(line.Text, pause), voice, polly.TextTypeSSML)
		if err != nil {
			return nil, services.Wrap(services.ErrProvider, "narration", "podcast", "synthesize dialogue line", err)
		}
		track = append(track, segment...)
		spoken++
	}
	if spoken == 0 {
		return nil, services.Wrap(services.ErrInput, "narration", "podcast", "dialogue script has no spoken lines", nil)
	}
	return track, nil
}

// Narrate voices a single speaker script. Text is split on section
// breaks, each section chunked to the configured character limit, and
// every chunk synthesized with the same voice.
func (n *Narrator) Narrate(ctx context.Context, text string) ([]byte, error) {
	voice, err := PickVoice(n.rng, n.opts.NarrationVoices)
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "narration", "narrate", "select voice", err)
	}
	sections := splitSections(text)
	if len(sections) == 0 {
		return nil, services.Wrap(services.ErrInput, "narration", "narrate", "script is empty", nil)
	}

	var track []byte
	for si, section := range sections {
		chunks := textchunk.Chunk(section, n.opts.MaxChars)
		for ci, chunk := range chunks {
			pause := chunkPause
			if ci == len(chunks)-1 && si < len(sections)-1 {
				pause = sectionPause
			}
			segment, err := n.synth.Synthesize(ctx, wrapSSML(chunk, pause), voice, polly.TextTypeSSML)
			if err != nil {
				return nil, services.Wrap(services.ErrProvider, "narration", "narrate", "synthesize chunk", err)
			}
			track = append(track, segment...)
		}
	}
	return track, nil
}

// SceneVoice picks the voice used for every scene of a video job so the
// narrator stays consistent across scenes.
func (n *Narrator) SceneVoice() (string, error) {
	voice, err := PickVoice(n.rng, n.opts.NarrationVoices)
	if err != nil {
		return "", services.Wrap(services.ErrConfiguration, "narration", "scene voice", "select voice", err)
	}
	return voice, nil
}

// Speak voices one passage with a fixed voice, chunking when it exceeds
// the character limit.
func (n *Narrator) Speak(ctx context.Context, text, voice string) ([]byte, error) {
	chunks := textchunk.Chunk(text, n.opts.MaxChars)
	if len(chunks) == 0 {
		return nil, services.Wrap(services.ErrInput, "narration", "speak", "passage is empty", nil)
	}
	var track []byte
	for _, chunk := range chunks {
		segment, err := n.synth.Synthesize(ctx, wrapSSML(chunk, 0), voice, polly.TextTypeSSML)
		if err != nil {
			return nil, services.Wrap(services.ErrProvider, "narration", "speak", "synthesize chunk", err)
		}
		track = append(track, segment...)
	}
	return track, nil
}

// splitSections divides a script on section break tokens, dropping
// blank sections.
func splitSections(text string) []string {
	var sections []string
	for _, part := range strings.Split(text, script.SectionBreak) {
		part = strings.TrimSpace(part)
		if part != "" {
			sections = append(sections, part)
		}
	}
	return sections
}

package main

import (
	"encoding/binary"
	"fmt"
	"io"
	"sync"

	"github.com/ebitengine/oto/v3"

	"github.com/bbxsynth/chipvoice/pkg/effect"
	"github.com/bbxsynth/chipvoice/pkg/instrument"
	"github.com/bbxsynth/chipvoice/pkg/param"
	"github.com/bbxsynth/chipvoice/pkg/queue"
	"github.com/bbxsynth/chipvoice/pkg/state"
	"github.com/bbxsynth/chipvoice/pkg/synth"
	"github.com/bbxsynth/chipvoice/pkg/voice"
)

// Runner owns the instrument and its parameter surface for one preview
// session, independent of whichever UI or script feeds it events. It
// exercises exactly the block pipeline the CLAP plugin drives
// (Instrument.Process), just from a terminal process instead of a host.
type Runner struct {
	Instrument *instrument.Instrument
	Params     *param.Manager
	fm         *synth.FMCore
	paramIn    *queue.Ring // parameter edits from the TUI or script

	mu    sync.Mutex // guards the pending note queue only
	notes []instrument.NoteEvent
}

// NewRunner builds the FM core / effect chain / instrument wiring for a
// preview session, registering its parameter surface directly against
// a bare param.Manager since a terminal session has no PluginBase/CLAP
// builder underneath.
func NewRunner(sampleRate float64) *Runner {
	fm := synth.NewFMCore(sampleRate)
	chain := effect.NewChain(sampleRate)
	inst := instrument.New(fm, chain, sampleRate)
	params := param.NewManager()
	registerParams(params)

	return &Runner{
		Instrument: inst,
		Params:     params,
		fm:         fm,
		paramIn:    queue.New(),
	}
}

// registerParams registers the preview's parameter surface: volume,
// pan, the FM core's table, and one on/off switch per effect module.
func registerParams(params *param.Manager) {
	fmAlgoLabels := make([]string, synth.FMAlgorithmCount)
	for i := range fmAlgoLabels {
		fmAlgoLabels[i] = fmt.Sprintf("Algorithm %d", i+1)
	}
	fmFeedbackOpLabels := []string{"Op 1", "Op 2", "Op 3", "Op 4"}

	fmTable := param.SliceTable{
		synth.FMParamAlgorithm: param.NewBuilder("fm_algo", "Algorithm").
			Group("FM").Enum(fmAlgoLabels...).MustBuild(),
		synth.FMParamFreq0:   param.NewBuilder("fm_freq0", "Op 1 Ratio").Group("FM").Range(0, 16, 4).MustBuild(),
		synth.FMParamVolume0: param.NewBuilder("fm_vol0", "Op 1 Level").Group("FM").Range(0, 1, 1.0).MustBuild(),
		synth.FMParamFreq1:   param.NewBuilder("fm_freq1", "Op 2 Ratio").Group("FM").Range(0, 16, 4).MustBuild(),
		synth.FMParamVolume1: param.NewBuilder("fm_vol1", "Op 2 Level").Group("FM").Range(0, 1, 0).MustBuild(),
		synth.FMParamFreq2:   param.NewBuilder("fm_freq2", "Op 3 Ratio").Group("FM").Range(0, 16, 4).MustBuild(),
		synth.FMParamVolume2: param.NewBuilder("fm_vol2", "Op 3 Level").Group("FM").Range(0, 1, 0).MustBuild(),
		synth.FMParamFreq3:   param.NewBuilder("fm_freq3", "Op 4 Ratio").Group("FM").Range(0, 16, 4).MustBuild(),
		synth.FMParamVolume3: param.NewBuilder("fm_vol3", "Op 4 Level").Group("FM").Range(0, 1, 0).MustBuild(),
		synth.FMParamFeedbackType: param.NewBuilder("fm_fbtype", "Feedback Op").
			Group("FM").Enum(fmFeedbackOpLabels...).MustBuild(),
		synth.FMParamFeedbackVolume: param.NewBuilder("fm_fbvol", "Feedback Amount").Group("FM").Range(0, 1, 0).MustBuild(),
	}

	effectEnableTable := func(shortID, label string) param.SliceTable {
		return param.SliceTable{param.NewBuilder(shortID, label).Group("Effect").Enum("Off", "On").MustBuild()}
	}

	must := func(err error) {
		if err != nil {
			panic(err) // static registration; a failure here is a programming error
		}
	}
	must(params.Register(param.GlobalID(param.ModuleVolume, 0),
		param.NewBuilder("volume", "Volume").Group("Output").Range(0, 1, 0.8).MustBuild()))
	must(params.Register(param.GlobalID(param.ModulePanning, 0),
		param.NewBuilder("pan", "Pan").Group("Output").Range(-1, 1, 0).MustBuild()))
	must(params.RegisterTable(param.ModuleSynth, fmTable))
	must(params.RegisterTable(param.ModuleDistortion, effectEnableTable("fx_dist_on", "Distortion")))
	must(params.RegisterTable(param.ModuleBitcrusher, effectEnableTable("fx_bit_on", "Bitcrusher")))
	must(params.RegisterTable(param.ModuleChorus, effectEnableTable("fx_chorus_on", "Chorus")))
	must(params.RegisterTable(param.ModuleEcho, effectEnableTable("fx_echo_on", "Echo")))
	must(params.RegisterTable(param.ModuleReverb, effectEnableTable("fx_reverb_on", "Reverb")))
}

// Trigger queues a fixed-length note: a begin event whose LengthTicks
// tells the synth to release it on its own after lengthTicks ticks,
// the shape a step sequencer or a terminal's key-down-only input needs
// instead of a live begin/end pair.
func (r *Runner) Trigger(key int16, velocity float64, lengthTicks int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notes = append(r.notes, instrument.NoteEvent{
		Begin: true, Identity: voice.Identity{NoteID: -1, Key: key}, Velocity: velocity, LengthTicks: lengthTicks,
	})
}

// NoteOn queues a live, host-controlled key-down; pairs with NoteOff.
func (r *Runner) NoteOn(key int16, velocity float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notes = append(r.notes, instrument.NoteEvent{
		Begin: true, Identity: voice.Identity{NoteID: -1, Key: key}, Velocity: velocity, LengthTicks: -1,
	})
}

// NoteOff queues a key-up for a note started with NoteOn.
func (r *Runner) NoteOff(key int16) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notes = append(r.notes, instrument.NoteEvent{
		Begin: false, Identity: voice.Identity{NoteID: -1, Key: key},
	})
}

// QueueParam pushes a parameter edit across the same SPSC ring the
// plugin's inbox uses, keeping the gui->audio discipline intact even
// though both sides of this ring live in the same process here.
func (r *Runner) QueueParam(globalID uint32, value float64) {
	r.paramIn.Push(instrument.ParamEvent{Kind: instrument.ParamChange, ParamID: globalID, Value: value})
}

// applyParam fans a resolved parameter value out to whichever live object reads it directly
// rather than through Params.Get.
func (r *Runner) applyParam(globalID uint32, value float64) {
	module, local := param.SplitGlobalID(globalID)
	inst := r.Instrument
	switch module {
	case param.ModuleSynth:
		r.fm.SetParam(int(local), value)
	case param.ModuleVolume:
		inst.GainDb = (value - 1.0) * 60.0
	case param.ModulePanning:
		inst.Chain.Panning.Position = value
	case param.ModuleDistortion:
		inst.SetEffectActive(&inst.UseDistortion, inst.Chain.Distortion, value >= 0.5)
	case param.ModuleBitcrusher:
		inst.SetEffectActive(&inst.UseBitcrusher, inst.Chain.Bitcrusher, value >= 0.5)
	case param.ModuleChorus:
		inst.SetEffectActive(&inst.UseChorus, inst.Chain.Chorus, value >= 0.5)
	case param.ModuleEcho:
		inst.SetEffectActive(&inst.UseEcho, inst.Chain.Echo, value >= 0.5)
	case param.ModuleReverb:
		inst.SetEffectActive(&inst.UseReverb, inst.Chain.Reverb, value >= 0.5)
	}
}

// RenderBlock drains pending parameter and note events and renders
// frameCount stereo samples, advancing the runner's sample clock.
func (r *Runner) RenderBlock(outL, outR []float64, frameCount int) {
	r.paramIn.Drain(func(ev instrument.ParamEvent) {
		if ev.Kind != instrument.ParamChange {
			return
		}
		if v, err := r.Params.Set(ev.ParamID, ev.Value); err == nil {
			r.applyParam(ev.ParamID, v)
		}
	})

	r.mu.Lock()
	events := r.notes
	r.notes = nil
	r.mu.Unlock()

	r.Instrument.Process(outL, outR, frameCount, events, func(synth.NoteEnd) {})
}

// SaveState and LoadState persist the runner's parameters and envelope
// list through the same state.Codec the plugin's PluginBase uses,
// against a plain file instead of a CLAP stream.
func (r *Runner) SaveState(codec *state.Codec, w io.Writer) error {
	return codec.Save(w, r.Params, r.Instrument.Envelopes())
}

func (r *Runner) LoadState(codec *state.Codec, rd io.Reader) error {
	envelopes, err := codec.Load(rd, r.Params)
	if err != nil {
		return err
	}
	r.Instrument.SetEnvelopes(envelopes)
	r.Params.ForEach(func(globalID uint32, _ param.Descriptor, value float64) {
		r.applyParam(globalID, value)
	})
	return nil
}

// otoStream adapts Runner's block rendering to oto's io.Reader-based
// player, converting the instrument's float64 stereo output to
// interleaved signed 16-bit PCM the way oisee-abytetracker's realtime
// output stage does.
type otoStream struct {
	runner   *Runner
	scratchL []float64
	scratchR []float64
}

func newOtoStream(r *Runner) *otoStream {
	return &otoStream{runner: r}
}

func (s *otoStream) Read(buf []byte) (int, error) {
	frames := len(buf) / 4 // stereo, 16-bit: 4 bytes/frame
	if cap(s.scratchL) < frames {
		s.scratchL = make([]float64, frames)
		s.scratchR = make([]float64, frames)
	}
	outL, outR := s.scratchL[:frames], s.scratchR[:frames]
	s.runner.RenderBlock(outL, outR, frames)

	for i := 0; i < frames; i++ {
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(clampSample(outL[i])))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(clampSample(outR[i])))
	}
	return frames * 4, nil
}

func clampSample(v float64) int16 {
	if v > 1.0 {
		v = 1.0
	}
	if v < -1.0 {
		v = -1.0
	}
	return int16(v * 32767)
}

// AudioSink opens an oto playback context against the runner and
// starts it; Close stops playback.
type AudioSink struct {
	ctx    *oto.Context
	player *oto.Player
}

// NewAudioSink opens the oto context at sampleRate and begins pulling
// blocks from runner immediately.
func NewAudioSink(runner *Runner, sampleRate float64) (*AudioSink, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   int(sampleRate),
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, err
	}
	<-ready

	player := ctx.NewPlayer(newOtoStream(runner))
	player.SetBufferSize(int(sampleRate) / 10)
	player.Play()

	return &AudioSink{ctx: ctx, player: player}, nil
}

// Close stops audio playback.
func (s *AudioSink) Close() {
	if s.player != nil {
		s.player.Close()
	}
}

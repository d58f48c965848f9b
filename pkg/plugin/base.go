package plugin

import (
	"fmt"
	"unsafe"

	"github.com/bbxsynth/chipvoice/pkg/controls"
	hostpkg "github.com/bbxsynth/chipvoice/pkg/host"
	"github.com/bbxsynth/chipvoice/pkg/instrument"
	"github.com/bbxsynth/chipvoice/pkg/param"
	"github.com/bbxsynth/chipvoice/pkg/queue"
	"github.com/bbxsynth/chipvoice/pkg/state"
	"github.com/bbxsynth/chipvoice/pkg/thread"
)

// State contexts a host may request a save/load under, mirrored from
// the CLAP state-context extension.
const (
	StateContextForPreset    uint32 = 1
	StateContextForDuplicate uint32 = 2
	StateContextForProject   uint32 = 3
)

// PluginBase provides comprehensive base functionality for all plugins
type PluginBase struct {
	// Core plugin state
	Host         unsafe.Pointer
	SampleRate   float64
	IsActivated  bool
	IsProcessing bool

	// Managers
	ParamManager *param.Manager
	Instrument   *instrument.Instrument
	StateCodec   *state.Codec
	Logger       *hostpkg.Logger

	// Extensions
	ThreadCheck *thread.Checker
	TrackInfo   *hostpkg.TrackInfoProvider

	// Plugin info
	Info Info

	// Diagnostics
	PoolDiagnostics queue.Diagnostics
}

// NewPluginBase creates a new plugin base with common initialization.
// Instrument and StateCodec are left nil; a concrete plugin sets them
// once it knows which synth core and instrument type it wraps (see
// WithInstrument / WithStateCodec).
func NewPluginBase(info Info) *PluginBase {
	return &PluginBase{
		SampleRate:   44100.0,
		IsActivated:  false,
		IsProcessing: false,
		ParamManager: param.NewManager(),
		Info:         info,
	}
}

// InitWithHost initializes host-dependent features
func (b *PluginBase) InitWithHost(host unsafe.Pointer) {
	b.Host = host
	b.Logger = hostpkg.NewLogger(host)
	
	if host != nil {
		// Initialize thread checker
		b.ThreadCheck = thread.NewChecker(host)
		if b.ThreadCheck.IsAvailable() && b.Logger != nil {
			b.Logger.Info("Thread Check extension available - thread safety validation enabled")
		}
		
		// Initialize track info
		b.TrackInfo = hostpkg.NewTrackInfoProvider(host)
	}
}

// CommonInit performs common initialization
func (b *PluginBase) CommonInit() bool {
	// Mark main thread for debug builds
	thread.SetMainThread()
	
	if b.Logger != nil {
		b.Logger.Info(fmt.Sprintf("[%s] Plugin initialized", b.Info.Name))
		b.Logger.Debug(fmt.Sprintf("[%s] Plugin ID: %s, Version: %s", b.Info.Name, b.Info.ID, b.Info.Version))
	}
	
	return true
}

// CommonDestroy performs common cleanup
func (b *PluginBase) CommonDestroy() {
	// Assert main thread
	thread.AssertMainThread("Plugin.Destroy")
	if b.ThreadCheck != nil {
		b.ThreadCheck.AssertMainThread("Plugin.Destroy")
	}
	
	if b.Logger != nil {
		b.Logger.Info(fmt.Sprintf("[%s] Plugin destroyed", b.Info.Name))
	}
}

// CommonActivate performs common activation
func (b *PluginBase) CommonActivate(sampleRate float64, minFrames, maxFrames uint32) bool {
	// Assert main thread
	thread.AssertMainThread("Plugin.Activate")
	if b.ThreadCheck != nil {
		b.ThreadCheck.AssertMainThread("Plugin.Activate")
	}
	
	b.SampleRate = sampleRate
	b.IsActivated = true
	
	if b.Logger != nil {
		b.Logger.Info(fmt.Sprintf("[%s] Plugin activated - Sample rate: %.0f Hz, Frame range: %d-%d", 
			b.Info.Name, sampleRate, minFrames, maxFrames))
	}
	
	return true
}

// CommonDeactivate performs common deactivation
func (b *PluginBase) CommonDeactivate() {
	// Assert main thread
	thread.AssertMainThread("Plugin.Deactivate")
	if b.ThreadCheck != nil {
		b.ThreadCheck.AssertMainThread("Plugin.Deactivate")
	}
	
	b.IsActivated = false
	
	if b.Logger != nil {
		b.Logger.Info(fmt.Sprintf("[%s] Plugin deactivated", b.Info.Name))
	}
}

// CommonStartProcessing prepares for audio processing
func (b *PluginBase) CommonStartProcessing() bool {
	if !b.IsActivated {
		if b.Logger != nil {
			b.Logger.Warning(fmt.Sprintf("[%s] Cannot start processing - plugin not activated", b.Info.Name))
		}
		return false
	}
	
	b.IsProcessing = true
	
	if b.Logger != nil {
		b.Logger.Info(fmt.Sprintf("[%s] Started audio processing", b.Info.Name))
	}
	
	return true
}

// CommonStopProcessing stops audio processing
func (b *PluginBase) CommonStopProcessing() {
	b.IsProcessing = false
	
	if b.Logger != nil {
		b.Logger.Info(fmt.Sprintf("[%s] Stopped audio processing", b.Info.Name))
	}
}

// CommonReset resets plugin state
func (b *PluginBase) CommonReset() {
	if b.Logger != nil {
		b.Logger.Debug("Plugin reset")
	}
}

// GetPluginInfo returns the plugin's descriptor.
func (b *PluginBase) GetPluginInfo() Info {
	return b.Info
}

// GetPluginID returns the plugin ID
func (b *PluginBase) GetPluginID() string {
	return b.Info.ID
}

// GetLatency returns 0 by default (no latency)
func (b *PluginBase) GetLatency() uint32 {
	thread.AssertMainThread("PluginBase.GetLatency")
	return 0
}

// GetTail returns 0 by default (no tail)
func (b *PluginBase) GetTail() uint32 {
	return 0
}

// OnTimer does nothing by default
func (b *PluginBase) OnTimer(timerID uint64) {
	// Default implementation does nothing
}

// OnMainThread does nothing by default
func (b *PluginBase) OnMainThread() {
	// Default implementation does nothing
}

// LoadPresetFromLocation returns false by default (no preset loading)
func (b *PluginBase) LoadPresetFromLocation(locationKind uint32, location string, loadKey string) bool {
	return false
}

// GetParamInfo gets parameter info by index - can be used directly by plugins
func (b *PluginBase) GetParamInfo(index uint32, info unsafe.Pointer) bool {
	if info == nil {
		return false
	}

	globalID, desc, ok := b.ParamManager.InfoByIndex(int(index))
	if !ok {
		return false
	}

	param.InfoToC(globalID, desc, info)

	return true
}




// OnTrackInfoChanged provides default track info change handling with logging
func (b *PluginBase) OnTrackInfoChanged() {
	if b.TrackInfo == nil {
		return
	}
	
	// Get the new track information
	info, ok := b.TrackInfo.Get()
	if !ok {
		if b.Logger != nil {
			b.Logger.Warning("Failed to get track info")
		}
		return
	}

	// Log the track information
	if b.Logger != nil {
		b.Logger.Info("Track info changed:")
		if info.Flags&hostpkg.TrackInfoHasTrackName != 0 {
			b.Logger.Info(fmt.Sprintf("  Track name: %s", info.Name))
		}
		if info.Flags&hostpkg.TrackInfoHasTrackColor != 0 {
			b.Logger.Info(fmt.Sprintf("  Track color: R=%d G=%d B=%d A=%d",
				info.Color.Red, info.Color.Green, info.Color.Blue, info.Color.Alpha))
		}
		if info.Flags&hostpkg.TrackInfoHasAudioChannel != 0 {
			b.Logger.Info(fmt.Sprintf("  Audio channels: %d, port type: %s",
				info.AudioChannelCount, info.AudioPortType))
		}
		if info.Flags&hostpkg.TrackInfoIsForReturnTrack != 0 {
			b.Logger.Info("  This is a return track")
		}
		if info.Flags&hostpkg.TrackInfoIsForBus != 0 {
			b.Logger.Info("  This is a bus track")
		}
		if info.Flags&hostpkg.TrackInfoIsForMaster != 0 {
			b.Logger.Info("  This is the master track")
		}
	}
}

// SaveState writes the current parameter values and envelope list to
// a CLAP output stream using StateCodec. Both StateCodec and Instrument
// must already be set (a concrete plugin does this at construction
// time via WithStateCodec / WithInstrument).
func (b *PluginBase) SaveState(stream unsafe.Pointer) bool {
	if b.StateCodec == nil || b.Instrument == nil {
		if b.Logger != nil {
			b.Logger.Error("SaveState called with no state codec or instrument configured")
		}
		return false
	}

	out := state.NewClapOutputStream(stream)
	if err := b.StateCodec.Save(out, b.ParamManager, b.Instrument.Envelopes()); err != nil {
		if b.Logger != nil {
			b.Logger.Error(fmt.Sprintf("Failed to save state: %v", err))
		}
		return false
	}

	if b.Logger != nil {
		b.Logger.Debug("State saved successfully")
	}

	return true
}

// LoadState reads a stream written by SaveState, applying every
// parameter through ParamManager.Set and replacing the instrument's
// envelope list.
func (b *PluginBase) LoadState(stream unsafe.Pointer) bool {
	if b.StateCodec == nil || b.Instrument == nil {
		if b.Logger != nil {
			b.Logger.Error("LoadState called with no state codec or instrument configured")
		}
		return false
	}

	in := state.NewClapInputStream(stream)
	envelopes, err := b.StateCodec.Load(in, b.ParamManager)
	if err != nil {
		if b.Logger != nil {
			b.Logger.Error(fmt.Sprintf("Failed to load state: %v", err))
		}
		return false
	}
	b.Instrument.SetEnvelopes(envelopes)

	if b.Logger != nil {
		b.Logger.Debug(fmt.Sprintf("State loaded successfully (%d envelopes)", len(envelopes)))
	}

	return true
}

// OnParamMappingSet provides default parameter mapping indication with logging
func (b *PluginBase) OnParamMappingSet(paramID uint32, hasMapping bool, color *hostpkg.Color, label string, description string) {
	// Check main thread (param indication is always on main thread)
	thread.AssertMainThread("PluginBase.OnParamMappingSet")
	
	// Log the mapping change
	if b.Logger != nil {
		if hasMapping {
			b.Logger.Info(fmt.Sprintf("Parameter %d mapped to %s: %s", paramID, label, description))
			if color != nil {
				b.Logger.Info(fmt.Sprintf("  Color: R=%d G=%d B=%d A=%d", color.Red, color.Green, color.Blue, color.Alpha))
			}
		} else {
			b.Logger.Info(fmt.Sprintf("Parameter %d mapping cleared", paramID))
		}
	}
}

// OnParamAutomationSet provides default parameter automation indication with logging
func (b *PluginBase) OnParamAutomationSet(paramID uint32, automationState uint32, color *hostpkg.Color) {
	// Check main thread (param indication is always on main thread)
	thread.AssertMainThread("PluginBase.OnParamAutomationSet")
	
	// Log the automation state change
	if b.Logger != nil {
		var stateStr string
		switch automationState {
		case param.IndicationAutomationNone:
			stateStr = "None"
		case param.IndicationAutomationPresent:
			stateStr = "Present"
		case param.IndicationAutomationPlaying:
			stateStr = "Playing"
		case param.IndicationAutomationRecording:
			stateStr = "Recording"
		case param.IndicationAutomationOverriding:
			stateStr = "Overriding"
		default:
			stateStr = "Unknown"
		}
		
		b.Logger.Info(fmt.Sprintf("Parameter %d automation state: %s", paramID, stateStr))
		if color != nil {
			b.Logger.Info(fmt.Sprintf("  Color: R=%d G=%d B=%d A=%d", color.Red, color.Green, color.Blue, color.Alpha))
		}
	}
}

// GetRemoteControlsPageCount returns 0 by default (no remote controls)
func (b *PluginBase) GetRemoteControlsPageCount() uint32 {
	return 0
}

// GetRemoteControlsPage returns nil by default
func (b *PluginBase) GetRemoteControlsPage(pageIndex uint32) (*controls.RemoteControlsPage, bool) {
	return nil, false
}

// GetExtension returns nil by default (no extensions)
// Override this to provide plugin-specific extensions
func (b *PluginBase) GetExtension(id string) unsafe.Pointer {
	// Most extensions are handled by the C bridge
	// Only override for Go-implemented extensions
	return nil
}

// SaveStateWithContext provides default implementation that logs context and calls SaveState
func (b *PluginBase) SaveStateWithContext(stream unsafe.Pointer, contextType uint32) bool {
	// Log the context type
	if b.Logger != nil {
		switch contextType {
		case StateContextForPreset:
			b.Logger.Info("Saving state for preset")
		case StateContextForDuplicate:
			b.Logger.Info("Saving state for duplicate")
		case StateContextForProject:
			b.Logger.Info("Saving state for project")
		default:
			b.Logger.Info(fmt.Sprintf("Saving state with unknown context: %d", contextType))
		}
	}
	
	return b.SaveState(stream)
}

// LoadStateWithContext provides default implementation that logs context and calls LoadState
func (b *PluginBase) LoadStateWithContext(stream unsafe.Pointer, contextType uint32) bool {
	// Log the context type
	if b.Logger != nil {
		switch contextType {
		case StateContextForPreset:
			b.Logger.Info("Loading state for preset")
		case StateContextForDuplicate:
			b.Logger.Info("Loading state for duplicate")
		case StateContextForProject:
			b.Logger.Info("Loading state for project")
		default:
			b.Logger.Info(fmt.Sprintf("Loading state with unknown context: %d", contextType))
		}
	}
	
	return b.LoadState(stream)
}

// Init delegates to CommonInit
func (b *PluginBase) Init() bool {
	return b.CommonInit()
}

// Destroy delegates to CommonDestroy
func (b *PluginBase) Destroy() {
	b.CommonDestroy()
}

// Activate delegates to CommonActivate
func (b *PluginBase) Activate(sampleRate float64, minFrames, maxFrames uint32) bool {
	return b.CommonActivate(sampleRate, minFrames, maxFrames)
}

// Deactivate delegates to CommonDeactivate
func (b *PluginBase) Deactivate() {
	b.CommonDeactivate()
}

// StopProcessing delegates to CommonStopProcessing
func (b *PluginBase) StopProcessing() {
	b.CommonStopProcessing()
}

// StartProcessing delegates to CommonStartProcessing
func (b *PluginBase) StartProcessing() bool {
	return b.CommonStartProcessing()
}

// Reset delegates to CommonReset
func (b *PluginBase) Reset() {
	b.CommonReset()
}
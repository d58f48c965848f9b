package main

/*
#include <stdint.h>
#include <stdbool.h>
#include "../../../include/clap/include/clap/clap.h"

// Forward declarations of the functions we'll implement in Go
uint32_t GetPluginCount();
const struct clap_plugin_descriptor *GetPluginInfo(uint32_t index);
void* CreatePlugin(const struct clap_host *host, const char *plugin_id);
bool GetVersion(uint32_t *major, uint32_t *minor, uint32_t *patch);

// Plugin lifecycle functions
bool GoInit(void *plugin);
void GoDestroy(void *plugin);
bool GoActivate(void *plugin, double sample_rate, uint32_t min_frames, uint32_t max_frames);
void GoDeactivate(void *plugin);
bool GoStartProcessing(void *plugin);
void GoStopProcessing(void *plugin);
void GoReset(void *plugin);
int32_t GoProcess(void *plugin, const struct clap_process *process);
const void *GoGetExtension(void *plugin, const char *id);
void GoOnMainThread(void *plugin);
*/
import "C"

import (
	"unsafe"

	"github.com/bbxsynth/chipvoice/src/goclap"
)

//export GetPluginCount
func GetPluginCount() C.uint32_t {
	return C.uint32_t(0) // Placeholder, will be implemented later
}

//export GetPluginInfo
func GetPluginInfo(index C.uint32_t) *C.struct_clap_plugin_descriptor {
	return nil // Placeholder, will be implemented later
}

//export CreatePlugin
func CreatePlugin(host *C.struct_clap_host, pluginID *C.char) unsafe.Pointer {
	return nil // Placeholder, will be implemented later
}

//export GetVersion
func GetVersion(major, minor, patch *C.uint32_t) C.bool {
	if major != nil {
		*major = C.uint32_t(goclap.APIVersionMajor)
	}
	if minor != nil {
		*minor = C.uint32_t(goclap.APIVersionMinor)
	}
	if patch != nil {
		*patch = C.uint32_t(goclap.APIVersionPatch)
	}
	return C.bool(true)
}

//export GoInit
func GoInit(plugin unsafe.Pointer) C.bool {
	return C.bool(false) // Placeholder, will be implemented later
}

//export GoDestroy
func GoDestroy(plugin unsafe.Pointer) {
	// Placeholder, will be implemented later
}

//export GoActivate
func GoActivate(plugin unsafe.Pointer, sampleRate C.double, minFrames, maxFrames C.uint32_t) C.bool {
	return C.bool(false) // Placeholder, will be implemented later
}

//export GoDeactivate
func GoDeactivate(plugin unsafe.Pointer) {
	// Placeholder, will be implemented later
}

//export GoStartProcessing
func GoStartProcessing(plugin unsafe.Pointer) C.bool {
	return C.bool(false) // Placeholder, will be implemented later
}

//export GoStopProcessing
func GoStopProcessing(plugin unsafe.Pointer) {
	// Placeholder, will be implemented later
}

//export GoReset
func GoReset(plugin unsafe.Pointer) {
	// Placeholder, will be implemented later
}

//export GoProcess
func GoProcess(plugin unsafe.Pointer, process *C.struct_clap_process) C.int32_t {
	return C.int32_t(0) // Placeholder, will be implemented later
}

//export GoGetExtension
func GoGetExtension(plugin unsafe.Pointer, id *C.char) unsafe.Pointer {
	return nil // Placeholder, will be implemented later
}

//export GoOnMainThread
func GoOnMainThread(plugin unsafe.Pointer) {
	// Placeholder, will be implemented later
}

func main() {
	// This function is required for building a shared library
	// but is not used when the library is loaded
}


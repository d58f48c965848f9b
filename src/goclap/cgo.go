package goclap

// #include <stdlib.h>
// #include <stdint.h>
// #include "../../include/clap/include/clap/clap.h"
// #include "../../include/clap/include/clap/ext/params.h"
// #include "../../include/clap/include/clap/ext/state.h"
// #include "../../include/clap/include/clap/ext/gui.h"
import "C"
import (
	"fmt"
	"runtime/cgo"
	"unsafe"
)

// getProcessorFromHandle retrieves the AudioProcessor from a cgo.Handle
func getProcessorFromHandle(handlePtr unsafe.Pointer) AudioProcessor {
	if handlePtr == nil {
		return nil
	}

	// Convert the opaque pointer back to a handle
	handle := cgo.Handle(uintptr(handlePtr))
	
	// Get the processor from the handle
	value := handle.Value()
	
	// Try to cast to AudioProcessor
	processor, ok := value.(AudioProcessor)
	if !ok {
		fmt.Println("Error: Failed to cast handle value to AudioProcessor")
		return nil
	}
	
	return processor
}

// Convert a Go plugin instance to a cgo.Handle for C code
func createPluginHandle(plugin AudioProcessor) unsafe.Pointer {
	handle := cgo.NewHandle(plugin)
	return unsafe.Pointer(uintptr(handle))
}

// Create a ParamsExtension wrapper
func createParamsExtension(plugin *PluginParamsExtension) unsafe.Pointer {
	if plugin == nil {
		return nil
	}
	
	// Create a handle for the plugin
	handle := cgo.NewHandle(plugin)
	
	// Pass the handle directly - this is a simplification
	// In a real implementation, we'd store this in a plugin field and use it in callbacks
	return unsafe.Pointer(uintptr(handle))
}

// Create a StateExtension wrapper
func createStateExtension(plugin *PluginStateExtension) unsafe.Pointer {
	if plugin == nil {
		return nil
	}
	
	// Create a handle for the plugin
	handle := cgo.NewHandle(plugin)
	
	// Pass the handle directly - this is a simplification
	// In a real implementation, we'd store this in a plugin field and use it in callbacks
	return unsafe.Pointer(uintptr(handle))
}

// Process entry point from C
func processPlugin(pluginPtr unsafe.Pointer, processPtr *C.clap_process_t) C.clap_process_status {
	// Get the processor
	processor := getProcessorFromHandle(pluginPtr)
	if processor == nil {
		return C.CLAP_PROCESS_ERROR
	}
	
	// This is a placeholder implementation
	// In a real implementation, we would extract audio data and events
	
	// Return a success status
	return C.CLAP_PROCESS_CONTINUE
}
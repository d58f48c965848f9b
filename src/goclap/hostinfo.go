package goclap

// #include <stdlib.h>
// #include "../../include/clap/include/clap/clap.h"
import "C"
import (
	"unsafe"
)

// Host represents a CLAP host
type Host struct {
	ptr unsafe.Pointer // Pointer to clap_host
}

// NewHost creates a Host object from a C host pointer
func NewHost(hostPtr unsafe.Pointer) *Host {
	if hostPtr == nil {
		return nil
	}
	
	return &Host{
		ptr: hostPtr,
	}
}

// GetName retrieves the host name
func (h *Host) GetName() string {
	if h.ptr == nil {
		return ""
	}
	
	host := (*C.clap_host_t)(h.ptr)
	return C.GoString(host.name)
}

// GetVendor retrieves the host vendor
func (h *Host) GetVendor() string {
	if h.ptr == nil {
		return ""
	}
	
	host := (*C.clap_host_t)(h.ptr)
	return C.GoString(host.vendor)
}

// GetURL retrieves the host URL
func (h *Host) GetURL() string {
	if h.ptr == nil {
		return ""
	}
	
	host := (*C.clap_host_t)(h.ptr)
	return C.GoString(host.url)
}

// GetVersion retrieves the host version
func (h *Host) GetVersion() string {
	if h.ptr == nil {
		return ""
	}
	
	host := (*C.clap_host_t)(h.ptr)
	return C.GoString(host.version)
}

// RequestRestart requests a plugin restart from the host
func (h *Host) RequestRestart() {
	if h.ptr == nil {
		return
	}
	
	// In a real implementation, we'd create a C wrapper function
	// to call this function pointer
	// For prototype purposes, we don't do anything
}

// RequestProcess requests the host to start processing
func (h *Host) RequestProcess() {
	if h.ptr == nil {
		return
	}
	
	// In a real implementation, we'd create a C wrapper function
	// to call this function pointer
	// For prototype purposes, we don't do anything
}

// RequestCallback requests a callback on the main thread
func (h *Host) RequestCallback() {
	if h.ptr == nil {
		return
	}
	
	// In a real implementation, we'd create a C wrapper function
	// to call this function pointer
	// For prototype purposes, we don't do anything
}

// GetExtension retrieves a host extension
func (h *Host) GetExtension(id string) unsafe.Pointer {
	if h.ptr == nil {
		return nil
	}
	
	// In a real implementation, we'd create a C wrapper function
	// to call this function pointer
	// For prototype purposes, we return nil
	return nil
}
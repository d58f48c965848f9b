package param

// #include "../../include/clap/include/clap/clap.h"
import "C"
import (
	"unsafe"
)

// CLAP parameter flag bits used by InfoToC.
const (
	clapParamIsStepped     = C.CLAP_PARAM_IS_STEPPED
	clapParamIsEnum        = C.CLAP_PARAM_IS_ENUM
	clapParamIsAutomatable = C.CLAP_PARAM_IS_AUTOMATABLE
)

// InfoToC fills a clap_param_info_t for the parameter at globalID,
// mapping the descriptor's Flag bits and Module tag onto the CLAP
// parameter info struct the host reads during get_info/param_info.
func InfoToC(globalID uint32, d Descriptor, cInfo unsafe.Pointer) {
	clapInfo := (*C.clap_param_info_t)(cInfo)

	clapInfo.id = C.clap_id(globalID)
	clapInfo.flags = 0

	if d.Flags&FlagAutomatable != 0 && d.Flags&FlagNoAutomation == 0 {
		clapInfo.flags |= clapParamIsAutomatable
	}
	if d.Flags&FlagStepped != 0 {
		clapInfo.flags |= clapParamIsStepped
	}
	if d.Flags&FlagEnum != 0 {
		clapInfo.flags |= clapParamIsEnum
	}

	clapInfo.cookie = nil

	copyStringToCBuffer(d.Name, unsafe.Pointer(&clapInfo.name[0]), C.CLAP_NAME_SIZE)
	if d.Group != "" {
		copyStringToCBuffer(d.Group, unsafe.Pointer(&clapInfo.module[0]), C.CLAP_PATH_SIZE)
	} else {
		clapInfo.module[0] = 0
	}

	clapInfo.min_value = C.double(d.Min)
	clapInfo.max_value = C.double(d.Max)
	clapInfo.default_value = C.double(d.Default)
}

// copyStringToCBuffer copies a Go string into a fixed C char buffer,
// truncating and null-terminating to fit.
func copyStringToCBuffer(str string, buffer unsafe.Pointer, maxSize int) {
	bytes := []byte(str)
	if len(bytes) >= maxSize {
		bytes = bytes[:maxSize-1]
	}
	for i, b := range bytes {
		*(*C.char)(unsafe.Add(buffer, i)) = C.char(b)
	}
	*(*C.char)(unsafe.Add(buffer, len(bytes))) = 0
}

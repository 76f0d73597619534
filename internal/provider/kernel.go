package provider

import "strings"

// Kernel event classes of the NT Kernel Logger. Events of these classes
// carry MOF payloads whose layout depends on the event version and opcode.
//
// See: https://docs.microsoft.com/en-us/windows/win32/etw/nt-kernel-logger-constants
var (
	EventTrace = GUID{0x68fdd900, 0x4a3e, 0x11d1, [8]byte{0x84, 0xf4, 0x00, 0x00, 0xf8, 0x04, 0x64, 0xe3}}
	Image      = GUID{0x2cb15d1d, 0x5fc1, 0x11d2, [8]byte{0xab, 0xe1, 0x00, 0xa0, 0xc9, 0x11, 0xf5, 0x18}}
	PerfInfo   = GUID{0xce1dbfb4, 0x137e, 0x4da6, [8]byte{0x87, 0xb0, 0x3f, 0x59, 0xaa, 0x10, 0x2c, 0xbc}}
	Process    = GUID{0x3d6fa8d0, 0xfe05, 0x11d0, [8]byte{0x9d, 0xda, 0x00, 0xc0, 0x4f, 0xd7, 0xba, 0x7c}}
	Thread     = GUID{0x3d6fa8d1, 0xfe05, 0x11d0, [8]byte{0x9d, 0xda, 0x00, 0xc0, 0x4f, 0xd7, 0xba, 0x7c}}
	TcpIP      = GUID{0x9a280ac0, 0xc8e0, 0x11d1, [8]byte{0x84, 0xe2, 0x00, 0xc0, 0x4f, 0xb9, 0x98, 0xa2}}
	Registry   = GUID{0xae53722e, 0xc863, 0x11d2, [8]byte{0x86, 0x59, 0x00, 0xc0, 0x4f, 0xa3, 0x21, 0xa1}}
	FileIO     = GUID{0x90cbdc39, 0x4a3e, 0x11d1, [8]byte{0x84, 0xf4, 0x00, 0x00, 0xf8, 0x04, 0x64, 0xe3}}
	DiskIO     = GUID{0x3d6fa8d4, 0xfe05, 0x11d0, [8]byte{0x9d, 0xda, 0x00, 0xc0, 0x4f, 0xd7, 0xba, 0x7c}}
	StackWalk  = GUID{0xdef2fe46, 0x7bd6, 0x4b80, [8]byte{0xbd, 0x94, 0xf5, 0x7f, 0xe2, 0x0d, 0x0c, 0xe3}}
	PageFault  = GUID{0x3d6fa8d3, 0xfe05, 0x11d0, [8]byte{0x9d, 0xda, 0x00, 0xc0, 0x4f, 0xd7, 0xba, 0x7c}}
)

// Info describes a known kernel provider.
type Info struct {
	Name        string
	GUID        GUID
	Description string
}

// Kernel lists the kernel providers with decodable payloads.
//
//nolint:gochecknoglobals
var Kernel = []Info{
	{"EventTrace", EventTrace, "trace session header and extension"},
	{"Image", Image, "image load, unload and rundown"},
	{"PerfInfo", PerfInfo, "sampled profile, interrupts, DPCs and system calls"},
	{"Process", Process, "process lifetime and counters"},
	{"Thread", Thread, "thread lifetime, context switches and priorities"},
	{"TcpIp", TcpIP, "IPv4 TCP send, receive and connection events"},
	{"Registry", Registry, "registry key operations"},
	{"FileIO", FileIO, "file names and file operations"},
	{"DiskIO", DiskIO, "physical disk requests"},
	{"StackWalk", StackWalk, "call stacks attached to other events"},
	{"PageFault", PageFault, "page faults and virtual memory"},
}

// LookupName finds a kernel provider by name, ignoring case.
func LookupName(name string) (Info, bool) {
	for _, p := range Kernel {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Info{}, false
}

// LookupGUID finds a kernel provider by guid.
func LookupGUID(g GUID) (Info, bool) {
	for _, p := range Kernel {
		if p.GUID == g {
			return p, true
		}
	}
	return Info{}, false
}

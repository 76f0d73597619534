//go:build windows

package provider

import "golang.org/x/sys/windows"

// FromWindows converts a windows.GUID, as found in EVENT_HEADER.ProviderId.
func FromWindows(g windows.GUID) GUID {
	return GUID{Data1: g.Data1, Data2: g.Data2, Data3: g.Data3, Data4: g.Data4}
}

// Windows converts g back for use with windows API calls.
func (g GUID) Windows() windows.GUID {
	return windows.GUID{Data1: g.Data1, Data2: g.Data2, Data3: g.Data3, Data4: g.Data4}
}

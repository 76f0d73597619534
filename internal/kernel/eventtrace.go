package kernel

import "github.com/tarusov/etwkernel/internal/provider"

// TRACE_LOGFILE_HEADER as written at the start of every kernel trace.
var traceHeaderV2 = layout{
	u32("BufferSize"),
	u32("Version"),
	u32("ProviderVersion"),
	u32("NumberOfProcessors"),
	u64("EndTime"),
	u32("TimerResolution"),
	u32("MaxFileSize"),
	u32("LogFileMode"),
	u32("BuffersWritten"),
	u32("StartBuffers"),
	u32("PointerSize"),
	u32("EventsLost"),
	u32("CPUSpeed"),
	ptr("LoggerName"),
	ptr("LogFileName"),
	tzi("TimeZoneInformation"),
	u32("Padding"),
	u64("BootTime"),
	u64("PerfFreq"),
	u64("StartTime"),
	u32("ReservedFlags"),
	u32("BuffersLost"),
	wstr("SessionNameString"),
	wstr("LogFileNameString"),
}

var traceExtensionV2 = layout{
	u32("GroupMask1"),
	u32("GroupMask2"),
	u32("GroupMask3"),
	u32("GroupMask4"),
	u32("GroupMask5"),
	u32("GroupMask6"),
	u32("GroupMask7"),
	u32("GroupMask8"),
	u32("KernelEventVersion"),
}

var eventTraceEvents = newFamily("EventTraceEvent", provider.EventTrace).
	op(0, "Header", versions{2: traceHeaderV2}).
	op(5, "Extension", versions{2: traceExtensionV2})

package kernel

import "github.com/tarusov/etwkernel/internal/provider"

var (
	processV1 = layout{
		ptr("PageDirectoryBase"),
		u32("ProcessId"),
		u32("ParentId"),
		u32("SessionId"),
		i32("ExitStatus"),
		sid("UserSID"),
		str("ImageFileName"),
	}
	processV2 = layout{
		ptr("UniqueProcessKey"),
		u32("ProcessId"),
		u32("ParentId"),
		u32("SessionId"),
		i32("ExitStatus"),
		sid("UserSID"),
		str("ImageFileName"),
		wstr("CommandLine"),
	}
	processV3 = layout{
		ptr("UniqueProcessKey"),
		u32("ProcessId"),
		u32("ParentId"),
		u32("SessionId"),
		i32("ExitStatus"),
		ptr("DirectoryTableBase"),
		sid("UserSID"),
		str("ImageFileName"),
		wstr("CommandLine"),
	}
	processV4 = layout{
		ptr("UniqueProcessKey"),
		u32("ProcessId"),
		u32("ParentId"),
		u32("SessionId"),
		i32("ExitStatus"),
		ptr("DirectoryTableBase"),
		u32("Flags"),
		sid("UserSID"),
		str("ImageFileName"),
		wstr("CommandLine"),
		wstr("PackageFullName"),
		wstr("ApplicationId"),
	}
	processV5 = processV4.then(u64("ExitTime"))

	processLifetime = versions{1: processV1, 2: processV2, 3: processV3, 4: processV4, 5: processV5}

	processCountersV2 = layout{
		u32("ProcessId"),
		u32("PageFaultCount"),
		u32("HandleCount"),
		u32("Reserved"),
		ptr("PeakVirtualSize"),
		ptr("PeakWorkingSetSize"),
		ptr("PeakPagefileUsage"),
		ptr("QuotaPeakPagedPoolUsage"),
		ptr("QuotaPeakNonPagedPoolUsage"),
		ptr("VirtualSize"),
		ptr("WorkingSetSize"),
		ptr("PagefileUsage"),
		ptr("QuotaPagedPoolUsage"),
		ptr("QuotaNonPagedPoolUsage"),
		ptr("PrivatePageCount"),
	}
)

var processEvents = newFamily("Process", provider.Process).
	op(1, "Start", processLifetime).
	op(2, "End", processLifetime).
	op(3, "DCStart", processLifetime).
	op(4, "DCEnd", processLifetime).
	op(11, "Terminate", versions{2: {u32("ProcessId")}}).
	op(32, "PerfCtr", versions{2: processCountersV2}).
	op(33, "PerfCtrRundown", versions{2: processCountersV2}).
	op(39, "Defunct", processLifetime)

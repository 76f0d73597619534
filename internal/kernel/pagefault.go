package kernel

import "github.com/tarusov/etwkernel/internal/provider"

var (
	pageFaultV2 = versions{2: {
		ptr("VirtualAddress"),
		ptr("ProgramCounter"),
	}}
	virtualAllocV2 = versions{2: {
		ptr("BaseAddress"),
		ptr("RegionSize"),
		u32("ProcessId"),
		u32("Flags"),
	}}
)

var pageFaultEvents = newFamily("PageFault", provider.PageFault).
	op(10, "TransitionFault", pageFaultV2).
	op(11, "DemandZeroFault", pageFaultV2).
	op(12, "CopyOnWrite", pageFaultV2).
	op(13, "GuardPageFault", pageFaultV2).
	op(14, "HardPageFault", pageFaultV2).
	op(15, "AccessViolation", pageFaultV2).
	op(32, "HardFault", versions{2: {
		u64("InitialTime"),
		u64("ReadOffset"),
		ptr("VirtualAddress"),
		ptr("FileObject"),
		u32("TThreadId"),
		u32("ByteCount"),
	}}).
	op(98, "VirtualAlloc", virtualAllocV2).
	op(99, "VirtualFree", virtualAllocV2)

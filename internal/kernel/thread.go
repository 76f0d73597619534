package kernel

import "github.com/tarusov/etwkernel/internal/provider"

var (
	threadStartV1 = layout{
		u32("ProcessId"),
		u32("TThreadId"),
		ptr("StackBase"),
		ptr("StackLimit"),
		ptr("UserStackBase"),
		ptr("UserStackLimit"),
		ptr("StartAddr"),
		ptr("Win32StartAddr"),
		i8("WaitMode"),
	}
	threadEndV1 = layout{
		u32("ProcessId"),
		u32("TThreadId"),
	}
	threadV2 = layout{
		u32("ProcessId"),
		u32("TThreadId"),
		ptr("StackBase"),
		ptr("StackLimit"),
		ptr("UserStackBase"),
		ptr("UserStackLimit"),
		ptr("StartAddr"),
		ptr("Win32StartAddr"),
		ptr("TebBase"),
		u32("SubProcessTag"),
	}
	// Version 3 reports the affinity where earlier versions had StartAddr.
	threadV3 = layout{
		u32("ProcessId"),
		u32("TThreadId"),
		ptr("StackBase"),
		ptr("StackLimit"),
		ptr("UserStackBase"),
		ptr("UserStackLimit"),
		ptr("Affinity"),
		ptr("Win32StartAddr"),
		ptr("TebBase"),
		u32("SubProcessTag"),
		u8("BasePriority"),
		u8("PagePriority"),
		u8("IoPriority"),
		u8("ThreadFlags"),
	}

	threadRundown = versions{2: threadV2, 3: threadV3}

	cSwitchV2 = layout{
		u32("NewThreadId"),
		u32("OldThreadId"),
		i8("NewThreadPriority"),
		i8("OldThreadPriority"),
		u8("PreviousCState"),
		i8("SpareByte"),
		i8("OldThreadWaitReason"),
		i8("OldThreadWaitMode"),
		i8("OldThreadState"),
		i8("OldThreadWaitIdealProcessor"),
		u32("NewThreadWaitTime"),
		u32("Reserved"),
	}
	spinLockV2 = layout{
		ptr("SpinLockAddress"),
		ptr("CallerAddress"),
		u64("AcquireTime"),
		u64("ReleaseTime"),
		u32("WaitTimeInCycles"),
		u32("SpinCount"),
		u32("ThreadId"),
		u32("InterruptCount"),
		u8("Irql"),
		u8("AcquireDepth"),
		u8("Flag"),
		raw("Reserved", 5),
	}
	priorityV3 = layout{
		u32("ThreadId"),
		u8("OldPriority"),
		u8("NewPriority"),
		u16("Reserved"),
	}
	readyThreadV2 = layout{
		u32("TThreadId"),
		i8("AdjustReason"),
		i8("AdjustIncrement"),
		i8("Flag"),
		i8("Reserved"),
	}
)

var threadEvents = newFamily("Thread", provider.Thread).
	op(1, "Start", versions{1: threadStartV1, 2: threadV2, 3: threadV3}).
	op(2, "End", versions{1: threadEndV1, 2: threadV2, 3: threadV3}).
	op(3, "DCStart", threadRundown).
	op(4, "DCEnd", threadRundown).
	op(36, "CSwitch", versions{2: cSwitchV2}).
	op(41, "SpinLock", versions{2: spinLockV2}).
	op(48, "SetPriority", versions{3: priorityV3}).
	op(49, "SetBasePriority", versions{3: priorityV3}).
	op(50, "ReadyThread", versions{2: readyThreadV2}).
	op(51, "SetPagePriority", versions{3: priorityV3}).
	op(52, "SetIoPriority", versions{3: priorityV3}).
	op(66, "AutoBoostSetFloor", versions{2: {
		ptr("Lock"),
		u32("ThreadId"),
		u8("NewCpuPriorityFloor"),
		u8("OldCpuPriority"),
		u8("IoPriorities"),
		u8("BoostFlags"),
	}}).
	op(67, "AutoBoostClearFloor", versions{2: {
		ptr("LockAddress"),
		u32("ThreadId"),
		u16("BoostBitmap"),
		u16("Reserved"),
	}}).
	op(68, "AutoBoostEntryExhaustion", versions{2: {
		ptr("LockAddress"),
		u32("ThreadId"),
	}})

package kernel

import "github.com/tarusov/etwkernel/internal/provider"

var (
	dpcV2 = layout{
		u64("InitialTime"),
		ptr("Routine"),
	}
	isrV2 = layout{
		u64("InitialTime"),
		ptr("Routine"),
		u8("ReturnValue"),
		u16("Vector"),
		u8("Reserved"),
	}

	collectionV2 = layout{
		u32("Source"),
		u32("NewInterval"),
		u32("OldInterval"),
	}
	collection = versions{
		2: collectionV2,
		3: collectionV2.then(wstr("SourceName")),
	}

	spinLockConfigV3 = layout{
		u32("SpinLockSpinThreshold"),
		u32("SpinLockContentionSampleRate"),
		u32("SpinLockAcquireSampleRate"),
		u32("SpinLockHoldThreshold"),
	}
)

var perfInfoEvents = newFamily("PerfInfo", provider.PerfInfo).
	op(46, "SampleProf", versions{2: {
		ptr("InstructionPointer"),
		u32("ThreadId"),
		u16("Count"),
		u16("Reserved"),
	}}).
	op(50, "ISR-MSI", versions{2: isrV2.then(u32("MessageNumber"))}).
	op(51, "SysClEnter", versions{2: {ptr("SysCallAddress")}}).
	op(52, "SysClExit", versions{2: {u32("SysCallNtStatus")}}).
	op(58, "DebuggerEnabled", versions{2: {}}).
	op(66, "ThreadedDPC", versions{2: dpcV2}).
	op(67, "ISR", versions{2: isrV2}).
	op(68, "DPC", versions{2: dpcV2}).
	op(69, "TimerDPC", versions{2: dpcV2}).
	op(73, "CollectionStart", collection).
	op(74, "CollectionEnd", collection).
	op(75, "CollectionStart", versions{3: spinLockConfigV3}).
	op(76, "CollectionEnd", versions{3: spinLockConfigV3})

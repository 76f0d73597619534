package kernel

import "github.com/tarusov/etwkernel/internal/provider"

// Version 3 of every DiskIO event appends the issuing thread.
var (
	diskReadWriteV2 = layout{
		u32("DiskNumber"),
		u32("IrpFlags"),
		u32("TransferSize"),
		u32("Reserved"),
		u64("ByteOffset"),
		ptr("FileObject"),
		ptr("Irp"),
		u64("HighResResponseTime"),
	}
	diskInitV2         = layout{ptr("Irp")}
	diskFlushBuffersV2 = layout{
		u32("DiskNumber"),
		u32("IrpFlags"),
		u64("HighResResponseTime"),
		ptr("Irp"),
	}
)

func withIssuingThread(v2 layout) versions {
	return versions{2: v2, 3: v2.then(u32("IssuingThreadId"))}
}

var diskIOEvents = newFamily("DiskIO", provider.DiskIO).
	op(10, "Read", withIssuingThread(diskReadWriteV2)).
	op(11, "Write", withIssuingThread(diskReadWriteV2)).
	op(12, "ReadInit", withIssuingThread(diskInitV2)).
	op(13, "WriteInit", withIssuingThread(diskInitV2)).
	op(14, "FlushBuffers", withIssuingThread(diskFlushBuffersV2)).
	op(15, "FlushInit", withIssuingThread(diskInitV2))

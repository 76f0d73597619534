package kernel

import "github.com/tarusov/etwkernel/internal/provider"

var (
	imageV0 = layout{
		ptr("BaseAddress"),
		u32("ModuleSize"),
		wstr("ImageFileName"),
	}
	imageV1 = layout{
		ptr("BaseAddress"),
		ptr("ModuleSize"),
		u32("ProcessId"),
		wstr("ImageFileName"),
	}
	imageV2 = layout{
		ptr("BaseAddress"),
		ptr("ModuleSize"),
		u32("ProcessId"),
		u32("ImageCheckSum"),
		u32("TimeDateStamp"),
		u32("Reserved0"),
		ptr("DefaultBase"),
		u32("Reserved1"),
		u32("Reserved2"),
		u32("Reserved3"),
		u32("Reserved4"),
		wstr("ImageFileName"),
	}
	// Version 3 splits the first reserved word into signature fields.
	imageV3 = layout{
		ptr("BaseAddress"),
		ptr("ModuleSize"),
		u32("ProcessId"),
		u32("ImageCheckSum"),
		u32("TimeDateStamp"),
		u8("SignatureLevel"),
		u8("SignatureType"),
		u16("Reserved0"),
		ptr("DefaultBase"),
		u32("Reserved1"),
		u32("Reserved2"),
		u32("Reserved3"),
		u32("Reserved4"),
		wstr("ImageFileName"),
	}

	imageLoad = versions{0: imageV0, 1: imageV1, 2: imageV2, 3: imageV3}
)

var imageEvents = newFamily("Image", provider.Image).
	op(2, "Unload", imageLoad).
	op(3, "DCStart", imageLoad).
	op(4, "DCEnd", imageLoad).
	op(10, "Load", imageLoad).
	op(33, "KernelBase", versions{2: {ptr("BaseAddress")}})
